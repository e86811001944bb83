package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("w", "Width", 64)}},
		{Name: "B", Params: []Parameter{FloatParam("g", "Gravity", 0.1)}},
	}}
	p, ok := snap.Lookup("g")
	if !ok || p.Value != "0.1" || p.Type != ParamTypeFloat {
		t.Fatalf("lookup g = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
}

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if c.Clamp(-2) != 0 || c.Clamp(3) != 1 || c.Clamp(0.25) != 0.25 {
		t.Fatal("clamp did not respect bounds")
	}
}
