package jsonvalue

import "testing"

func TestParse_Kinds(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"b":"s","c":true,"d":null,"e":[1,2],"f":{}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if v.Kind() != KindObject {
		t.Fatalf("expected object, got %s", v.Kind())
	}
	entries := v.ObjectEntries()
	wantKeys := []string{"a", "b", "c", "d", "e", "f"}
	if len(entries) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantKeys))
	}
	for i, k := range wantKeys {
		if entries[i].Key != k {
			t.Errorf("entry %d: got key %q, want %q (order must be preserved)", i, entries[i].Key, k)
		}
	}
	kinds := map[string]Kind{"a": KindNumber, "b": KindString, "c": KindBool, "d": KindNull, "e": KindArray, "f": KindObject}
	for _, e := range entries {
		if got := e.Value.Kind(); got != kinds[e.Key] {
			t.Errorf("%s: got kind %s, want %s", e.Key, got, kinds[e.Key])
		}
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	if err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestArrayElements_Order(t *testing.T) {
	v, err := Parse([]byte(`[10,20,30]`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	elems := v.ArrayElements()
	want := []float64{10, 20, 30}
	if len(elems) != len(want) {
		t.Fatalf("got %d elements", len(elems))
	}
	for i, w := range want {
		if got := elems[i].Number(); got != w {
			t.Errorf("element %d: got %v, want %v", i, got, w)
		}
	}
}

func TestDepth(t *testing.T) {
	cases := []struct {
		json string
		want int
	}{
		{`1`, 1},
		{`[]`, 1},
		{`{}`, 1},
		{`[1,2,3]`, 2},
		{`{"a":{"b":{"c":1}}}`, 4},
		{`{"a":[1,[2,[3]]]}`, 5},
	}
	for _, c := range cases {
		v, err := Parse([]byte(c.json))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.json, err)
		}
		if got := v.Depth(); got != c.want {
			t.Errorf("Depth(%q) = %d, want %d", c.json, got, c.want)
		}
	}
}

func TestObjectEntries_NonObjectReturnsNil(t *testing.T) {
	v, _ := Parse([]byte(`[1,2]`))
	if v.ObjectEntries() != nil {
		t.Fatalf("expected nil for non-object")
	}
}

func TestArrayElements_NonArrayReturnsNil(t *testing.T) {
	v, _ := Parse([]byte(`{"a":1}`))
	if v.ArrayElements() != nil {
		t.Fatalf("expected nil for non-array")
	}
}
