package entity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMarshalJSON_ScalarOrArray(t *testing.T) {
	e := Entities{
		Service: {"troca de óleo"},
		Plate:   {"ABC1D23", "XYZ1234"},
	}

	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var shaped map[string]any
	if err := json.Unmarshal(raw, &shaped); err != nil {
		t.Fatalf("unmarshal probe: %v", err)
	}
	if _, ok := shaped["service"].(string); !ok {
		t.Fatalf("single value should be a bare string, got %T", shaped["service"])
	}
	if _, ok := shaped["plate"].([]any); !ok {
		t.Fatalf("multiple values should be an array, got %T", shaped["plate"])
	}
}

func TestUnmarshalJSON_AcceptsBothShapes(t *testing.T) {
	var e Entities
	payload := `{"service":"troca de óleo","plate":["ABC1D23","XYZ1234"]}`
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Entities{
		Service: {"troca de óleo"},
		Plate:   {"ABC1D23", "XYZ1234"},
	}
	if !reflect.DeepEqual(e, want) {
		t.Fatalf("got %v, want %v", e, want)
	}
}

func TestEntities_Helpers(t *testing.T) {
	e := Entities{Service: {"revisão", "freios"}}

	if e.First(Service) != "revisão" {
		t.Fatalf("First = %q", e.First(Service))
	}
	if e.First(Plate) != "" {
		t.Fatalf("First on absent type = %q", e.First(Plate))
	}
	if !e.Has(Service) || e.Has(Plate) {
		t.Fatalf("Has misreported")
	}

	c := e.Clone()
	c[Service][0] = "changed"
	if e.First(Service) != "revisão" {
		t.Fatalf("clone shares backing array")
	}

	var nilEnt Entities
	if nilEnt.Clone() != nil {
		t.Fatalf("nil clone should stay nil")
	}
}

func TestMarshalJSON_EmptyMap(t *testing.T) {
	raw, err := json.Marshal(Entities{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("empty map = %s", raw)
	}
}
