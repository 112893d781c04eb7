package intent

import (
	"sort"
	"strings"
	"sync"

	"oficina/internal/core/langpack"
	"oficina/internal/core/normalize"
)

// DefaultWeight is used for categories created at runtime via AddPatterns
const DefaultWeight = 5

// Classifier scores folded utterances against weighted keyword sets.
// The pack is immutable; runtime additions live in a per-instance overlay so
// separate classifiers (e.g. per tenant) can hold distinct keyword sets over
// one shared pack
type Classifier struct {
	pack   *langpack.Pack
	folder *normalize.Folder

	mu      sync.RWMutex
	overlay map[string]*langpack.IntentSpec // name -> extra/new category, append-only
}

// New creates a Classifier over a compiled pack
func New(p *langpack.Pack) *Classifier {
	if p == nil {
		panic("intent.Classifier requires a non nil pack")
	}
	return &Classifier{
		pack:    p,
		folder:  normalize.New(),
		overlay: make(map[string]*langpack.IntentSpec),
	}
}

// AddPatterns appends keywords to an existing or newly created category.
// Purely additive; keywords are folded and deduped against the category
func (c *Classifier) AddPatterns(name string, keywords ...string) {
	name = strings.TrimSpace(name)
	if name == "" || len(keywords) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	spec := c.overlay[name]
	if spec == nil {
		weight := float64(DefaultWeight)
		if base, ok := c.pack.Intent(name); ok {
			weight = base.Weight
		}
		spec = &langpack.IntentSpec{Name: name, Weight: weight}
		c.overlay[name] = spec
	}

	known := make(map[string]struct{}, len(spec.Keywords))
	for _, kw := range spec.Keywords {
		known[kw] = struct{}{}
	}
	if base, ok := c.pack.Intent(name); ok {
		for _, kw := range base.Keywords {
			known[kw] = struct{}{}
		}
	}
	for _, kw := range keywords {
		kw = c.folder.Fold(kw)
		if kw == "" {
			continue
		}
		if _, ok := known[kw]; ok {
			continue
		}
		known[kw] = struct{}{}
		spec.Keywords = append(spec.Keywords, kw)
	}
}

// categories returns a merged snapshot of pack intents plus the overlay
func (c *Classifier) categories() []langpack.IntentSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]langpack.IntentSpec, 0, len(c.pack.Intents)+len(c.overlay))
	seen := make(map[string]struct{}, len(c.pack.Intents))
	for _, base := range c.pack.Intents {
		merged := base
		if extra := c.overlay[base.Name]; extra != nil && len(extra.Keywords) > 0 {
			kws := make([]string, 0, len(base.Keywords)+len(extra.Keywords))
			kws = append(kws, base.Keywords...)
			kws = append(kws, extra.Keywords...)
			merged.Keywords = kws
		}
		out = append(out, merged)
		seen[base.Name] = struct{}{}
	}
	// runtime-only categories, sorted for determinism
	names := make([]string, 0, len(c.overlay))
	for name := range c.overlay {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		spec := c.overlay[name]
		kws := append([]string(nil), spec.Keywords...)
		out = append(out, langpack.IntentSpec{Name: name, Weight: spec.Weight, Keywords: kws})
	}
	return out
}

// Classify scores text against every category and returns the ranked result.
// Invalid or empty input degrades to Unknown with zero confidence; it never
// errors and never panics
func (c *Classifier) Classify(text string) Result {
	unknown := Result{Intent: Unknown, Confidence: 0, Alternatives: []Alternative{}}

	folded := c.folder.Fold(text)
	if folded == "" {
		return unknown
	}

	type scored struct {
		name string
		raw  float64
	}
	var ranked []scored

	for _, spec := range c.categories() {
		score := 0.0
		matches := 0
		for _, kw := range spec.Keywords {
			if strings.Contains(folded, kw) {
				score += spec.Weight
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		normalized := score / float64(len(spec.Keywords))
		ranked = append(ranked, scored{name: spec.Name, raw: normalized * float64(matches)})
	}
	if len(ranked) == 0 {
		return unknown
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].raw == ranked[j].raw {
			return ranked[i].name < ranked[j].name
		}
		return ranked[i].raw > ranked[j].raw
	})

	conf := ranked[0].raw
	if conf > 1.0 {
		conf = 1.0
	}

	// runners-up keep the raw score; rank order is the compatibility contract
	alts := make([]Alternative, 0, 2)
	for _, s := range ranked[1:] {
		if len(alts) == 2 {
			break
		}
		alts = append(alts, Alternative{Intent: Intent(s.name), Confidence: s.raw})
	}

	return Result{Intent: Intent(ranked[0].name), Confidence: conf, Alternatives: alts}
}

// DetectMultiple reuses Classify and additionally returns the alternatives
// strong enough (> 0.3) to be treated as blended requests in one utterance
func (c *Classifier) DetectMultiple(text string) (Result, []Alternative) {
	res := c.Classify(text)
	var blended []Alternative
	for _, a := range res.Alternatives {
		if a.Confidence > 0.3 {
			blended = append(blended, a)
		}
	}
	return res, blended
}
