package mix

import (
	"testing"

	"github.com/mibohl/cloning-calculator/config"
)

func TestReactionPlan(t *testing.T) {
	r := &Reaction{
		Fragments: []Fragment{
			{Name: "backbone", Length: 5.0, Conc: 100.0},
			{Name: "gfp", Length: 1.0, Conc: 150.0},
		},
		Ratio: 2.0,
		Total: 0.5,
	}

	results, err := r.Plan()
	if err != nil {
		t.Fatalf("Plan() err = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Plan() returned %d results, want 2", len(results))
	}

	if results[0].Name != "backbone" || results[1].Name != "gfp" {
		t.Errorf("Plan() reordered fragments: %v", results)
	}
	if !approx(results[0].Volume, 5.5) {
		t.Errorf("backbone volume = %f, want 5.5", results[0].Volume)
	}
	if !approx(results[1].Mass, 220.0) {
		t.Errorf("insert mass = %f, want 220.0", results[1].Mass)
	}
	if !approx(results[0].Moles+results[1].Moles, 0.5) {
		t.Errorf("moles don't sum to the total: %v", results)
	}
}

// a bp molar mass from settings overrides the 660 g/mol default
func TestReactionPlanBpMass(t *testing.T) {
	r := &Reaction{
		Fragments: []Fragment{
			{Name: "backbone", Length: 5.0, Conc: 100.0},
		},
		Ratio:  2.0,
		Total:  0.5,
		BpMass: 650.0,
	}

	results, err := r.Plan()
	if err != nil {
		t.Fatalf("Plan() err = %v", err)
	}
	if !approx(results[0].Mass, 0.5*650.0*5.0) {
		t.Errorf("mass = %f, want %f", results[0].Mass, 0.5*650.0*5.0)
	}
}

func TestNewReaction(t *testing.T) {
	conf := config.New()

	r := NewReaction([]float64{5.0, 1.0, 2.0}, []float64{100.0, 150.0, 80.0}, 2.0, 0.5, conf)

	wantNames := []string{"backbone", "insert 1", "insert 2"}
	for i, f := range r.Fragments {
		if f.Name != wantNames[i] {
			t.Errorf("fragment %d name = %s, want %s", i, f.Name, wantNames[i])
		}
	}
	if r.BpMass != conf.BpMass {
		t.Errorf("BpMass = %f, want %f", r.BpMass, conf.BpMass)
	}
}
