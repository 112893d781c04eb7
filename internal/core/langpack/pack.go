// Package langpack loads and compiles the embedded rules.json.
// It prepares intent keyword sets, entity regex rules and canned reply text
// for the classifier, the extractor and the dispatcher
package langpack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"oficina/internal/core/normalize"
)

//go:embed rules.json
var embedded []byte

type rawIntent struct {
	Name     string   `json:"name"`
	Weight   float64  `json:"weight"`
	Keywords []string `json:"keywords"`
}

type rawEntityRule struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
	Group   int    `json:"group"`
}

type rawPack struct {
	Version     int                 `json:"version"`
	Meta        map[string]string   `json:"meta"`
	Intents     []rawIntent         `json:"intents"`
	Entities    []rawEntityRule     `json:"entities"`
	Suggestions map[string][]string `json:"suggestions"`
	Replies     map[string]string   `json:"replies"`
}

// IntentSpec is one intent category: a keyword list and its scalar weight.
// Keywords are stored folded (lowercased, diacritics stripped) and deduped
type IntentSpec struct {
	Name     string
	Weight   float64
	Keywords []string
}

// EntityRule is one declarative extraction row. Rules are evaluated in file
// order; Group selects the capture to keep (0 = whole match)
type EntityRule struct {
	Type    string
	Pattern string
	Group   int
}

// Pack represents a compiled rule pack
type Pack struct {
	Version int
	Meta    map[string]string

	Intents []IntentSpec

	// Entity rules, 1:1 with Compiled
	Rules    []EntityRule
	Compiled []*regexp.Regexp

	Suggestions map[string][]string
	Replies     map[string]string
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("langpack: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("langpack: unsupported rules.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:     rp.Version,
		Meta:        rp.Meta,
		Suggestions: rp.Suggestions,
		Replies:     rp.Replies,
	}

	folder := normalize.New()

	// Intents: fold keywords for containment matching, dedupe preserving order
	for _, in := range rp.Intents {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("langpack: intent with empty name")
		}
		seen := make(map[string]struct{}, len(in.Keywords))
		kws := make([]string, 0, len(in.Keywords))
		for _, kw := range in.Keywords {
			kw = folder.Fold(kw)
			if kw == "" {
				continue
			}
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			kws = append(kws, kw)
		}
		if len(kws) == 0 {
			return nil, fmt.Errorf("langpack: intent %q has no usable keywords", name)
		}
		p.Intents = append(p.Intents, IntentSpec{Name: name, Weight: in.Weight, Keywords: kws})
	}

	// Entity rules: compile in file order (order is part of the contract)
	for _, r := range rp.Entities {
		if strings.TrimSpace(r.Type) == "" {
			return nil, fmt.Errorf("langpack: entity rule with empty type (pattern %q)", r.Pattern)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("langpack: compile %q: %w", r.Pattern, err)
		}
		if r.Group < 0 || r.Group > re.NumSubexp() {
			return nil, fmt.Errorf("langpack: rule %q group %d out of range", r.Pattern, r.Group)
		}
		p.Rules = append(p.Rules, EntityRule(r))
		p.Compiled = append(p.Compiled, re)
	}

	return p, nil
}

// Intent returns the spec for name, if present
func (p *Pack) Intent(name string) (IntentSpec, bool) {
	for _, in := range p.Intents {
		if in.Name == name {
			return in, true
		}
	}
	return IntentSpec{}, false
}

// Suggest returns the named suggestion list, or nil
func (p *Pack) Suggest(key string) []string { return p.Suggestions[key] }

// Reply returns the named canned reply, or "" when missing
func (p *Pack) Reply(key string) string { return p.Replies[key] }
