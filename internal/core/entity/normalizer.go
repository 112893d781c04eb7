package entity

import (
	"fmt"
	"strings"
	"unicode"
)

// Report holds the outcome of validating a set of entities.
// Errors collects every failure instead of stopping at the first
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Normalizer rewrites extracted values into canonical storage form and
// validates the shapes that have one
type Normalizer struct{}

// NewNormalizer creates a Normalizer
func NewNormalizer() *Normalizer { return &Normalizer{} }

// Normalize returns a copy of e with canonical values: phones and tax ids
// keep digits only, plates go uppercase without separators, services fold to
// lowercase and vehicle models get a leading capital. The input is not
// mutated
func (n *Normalizer) Normalize(e Entities) Entities {
	if e == nil {
		return nil
	}
	out := make(Entities, len(e))
	for t, vs := range e {
		canon := make([]string, 0, len(vs))
		for _, v := range vs {
			canon = append(canon, n.normalizeOne(t, v))
		}
		out[t] = canon
	}
	return out
}

func (n *Normalizer) normalizeOne(t Type, v string) string {
	switch t {
	case Phone, TaxID:
		return digitsOnly(v)
	case Plate:
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToUpper(r)
			}
			return -1
		}, v)
	case Service:
		return strings.ToLower(v)
	case VehicleModel:
		return capitalizeFirst(v)
	default:
		return v
	}
}

// Validate checks every value that has a canonical shape and collects all
// failures. Types without a shape rule always pass
func (n *Normalizer) Validate(e Entities) Report {
	var errs []string
	for t, vs := range e {
		for _, v := range vs {
			switch t {
			case TaxID:
				if len(digitsOnly(v)) != 11 {
					errs = append(errs, fmt.Sprintf("tax_id %q must have 11 digits", v))
				}
			case Phone:
				if d := len(digitsOnly(v)); d < 10 || d > 11 {
					errs = append(errs, fmt.Sprintf("phone %q must have 10 or 11 digits", v))
				}
			case Plate:
				if !validPlate(v) {
					errs = append(errs, fmt.Sprintf("plate %q must have 7 letters and digits", v))
				}
			}
		}
	}
	return Report{Valid: len(errs) == 0, Errors: errs}
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// validPlate counts letters and digits only; separators and any other
// punctuation are ignored
func validPlate(s string) bool {
	count := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return count == 7
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
