package entity

import (
	"strings"
	"unicode/utf8"

	"oficina/internal/core/langpack"
)

// Extractor runs the pack's entity rules over raw text.
// Rules fire in pack order; within a type, values keep first-seen order and
// exact duplicates collapse. Matching runs on the original text so casing
// sensitive rules (person names) and value echo stay intact
type Extractor struct {
	pack *langpack.Pack
}

// NewExtractor creates an Extractor over a compiled pack
func NewExtractor(p *langpack.Pack) *Extractor {
	if p == nil {
		panic("entity.Extractor requires a non nil pack")
	}
	return &Extractor{pack: p}
}

// Extract returns every entity found in text. Empty or invalid UTF-8 input
// yields an empty map; extraction never errors
func (x *Extractor) Extract(text string) Entities {
	out := make(Entities)
	if strings.TrimSpace(text) == "" || !utf8.ValidString(text) {
		return out
	}

	seen := make(map[Type]map[string]struct{})
	for i, rule := range x.pack.Rules {
		re := x.pack.Compiled[i]
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			val := m[0]
			if rule.Group > 0 && rule.Group < len(m) {
				val = m[rule.Group]
			}
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			t := Type(rule.Type)
			if seen[t] == nil {
				seen[t] = make(map[string]struct{})
			}
			if _, dup := seen[t][val]; dup {
				continue
			}
			seen[t][val] = struct{}{}
			out[t] = append(out[t], val)
		}
	}
	return out
}
