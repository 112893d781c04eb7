// Package entity extracts, normalizes and validates typed values from free
// text using the ordered regex rules of a langpack.
package entity

import (
	"encoding/json"
	"sort"
)

// Type names one extractable entity kind
type Type string

const (
	Service      Type = "service"
	Plate        Type = "plate"
	TaxID        Type = "tax_id"
	Phone        Type = "phone"
	CaseNumber   Type = "case_number"
	RelativeDate Type = "relative_date"
	TimeOfDay    Type = "time_of_day"
	PersonName   Type = "person_name"
	VehicleModel Type = "vehicle_model"
)

// Entities maps a type to the values found, in extraction order.
// Types with no hits are absent from the map
type Entities map[Type][]string

// First returns the first value for t, or "" when absent
func (e Entities) First(t Type) string {
	if vs := e[t]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Has reports whether at least one value of t was found
func (e Entities) Has(t Type) bool { return len(e[t]) > 0 }

// Clone returns a deep copy. A nil receiver clones to nil
func (e Entities) Clone() Entities {
	if e == nil {
		return nil
	}
	out := make(Entities, len(e))
	for t, vs := range e {
		out[t] = append([]string(nil), vs...)
	}
	return out
}

// MarshalJSON keeps the compact wire shape: a type with a single value
// serializes as a bare string, multiple values as an array. Keys are sorted
// so payloads are stable across runs
func (e Entities) MarshalJSON() ([]byte, error) {
	types := make([]string, 0, len(e))
	for t := range e {
		types = append(types, string(t))
	}
	sort.Strings(types)

	shaped := make(map[string]any, len(e))
	for _, t := range types {
		vs := e[Type(t)]
		if len(vs) == 1 {
			shaped[t] = vs[0]
			continue
		}
		shaped[t] = vs
	}
	return json.Marshal(shaped)
}

// UnmarshalJSON accepts both wire shapes produced by MarshalJSON
func (e *Entities) UnmarshalJSON(data []byte) error {
	var shaped map[string]json.RawMessage
	if err := json.Unmarshal(data, &shaped); err != nil {
		return err
	}
	out := make(Entities, len(shaped))
	for t, raw := range shaped {
		var one string
		if err := json.Unmarshal(raw, &one); err == nil {
			out[Type(t)] = []string{one}
			continue
		}
		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return err
		}
		out[Type(t)] = many
	}
	*e = out
	return nil
}
