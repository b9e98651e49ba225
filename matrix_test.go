package markovrps

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewWeightMatrixUniform(t *testing.T) {
	m := NewWeightMatrix()
	for i := range m {
		for j := range m[i] {
			if m[i][j] != 1.0/NumStates {
				t.Errorf("cell [%d][%d] = %v, expected %v", i, j, m[i][j], 1.0/NumStates)
			}
		}
	}
}

func TestReinforceNetEffect(t *testing.T) {
	cfg := DefaultConfig()
	m := NewWeightMatrix()
	m.reinforce(0, 4, cfg)

	for j, w := range m[0] {
		expected := 1.0/NumStates - cfg.DecreaseValue
		if j == 4 {
			expected += cfg.IncreaseValue
		}
		if math.Abs(w-expected) > 1e-12 {
			t.Errorf("cell [0][%d] = %v, expected %v", j, w, expected)
		}
	}

	// Other rows must be untouched.
	for i := 1; i < NumStates; i++ {
		for j, w := range m[i] {
			if w != 1.0/NumStates {
				t.Errorf("cell [%d][%d] = %v, expected untouched uniform", i, j, w)
			}
		}
	}
}

// Repeated reinforcement of the same transition grows that cell while
// draining the rest of the row, until a boundary freezes the whole row.
func TestReinforceBoundaryFreeze(t *testing.T) {
	cfg := DefaultConfig()
	m := NewWeightMatrix()

	prev := 1.0 / NumStates
	updates := 0
	for round := 0; round < 50; round++ {
		m.reinforce(0, 0, cfg)
		w := m[0][0]
		if w > prev {
			if prev > cfg.UpperLimit() {
				t.Errorf("update happened with cell at %v, above upper limit %v", prev, cfg.UpperLimit())
			}
			updates++
			prev = w
		} else if w != prev {
			t.Errorf("cell decreased from %v to %v", prev, w)
		}
	}

	// With the stock rates the 10th update would push the cell past
	// the upper limit, so exactly 9 updates land.
	if updates != 9 {
		t.Errorf("got %d successful updates, expected 9", updates)
	}
	expected := 1.0/NumStates + 9*(cfg.IncreaseValue-cfg.DecreaseValue)
	if math.Abs(m[0][0]-expected) > 1e-12 {
		t.Errorf("frozen cell = %v, expected %v", m[0][0], expected)
	}

	// The freeze is per observed cell: reinforcing the saturated cell
	// again is a no-op, but the guard only checks the observed cell
	// against the upper limit, so a different transition in the same
	// row still updates.
	frozen := m.Row(0)
	m.reinforce(0, 0, cfg)
	if m.Row(0) != frozen {
		t.Errorf("saturated cell updated: %v -> %v", frozen, m.Row(0))
	}

	m.reinforce(0, 3, cfg)
	for j, w := range m[0] {
		expected := frozen[j] - cfg.DecreaseValue
		if j == 3 {
			expected += cfg.IncreaseValue
		}
		if math.Abs(w-expected) > 1e-12 {
			t.Errorf("cell [0][%d] = %v after reinforcing another transition, expected %v", j, w, expected)
		}
	}
}

// A drained cell halts updates for the entire row, not just itself.
func TestReinforceBottomLimitFreezesRow(t *testing.T) {
	cfg := DefaultConfig()
	m := NewWeightMatrix()
	m[0][8] = cfg.BottomLimit() - 0.001

	before := m.Row(0)
	m.reinforce(0, 0, cfg)
	if m.Row(0) != before {
		t.Errorf("row with drained cell changed: %v -> %v", before, m.Row(0))
	}
}

func TestReinforceCellBoundsInvariant(t *testing.T) {
	cfg := DefaultConfig()
	m := NewWeightMatrix()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100000; i++ {
		m.reinforce(rng.Intn(NumStates), rng.Intn(NumStates), cfg)
	}

	for i := range m {
		for j, w := range m[i] {
			if w < 0 || w > 1 {
				t.Errorf("cell [%d][%d] = %v escaped [0, 1]", i, j, w)
			}
		}
	}
}

func TestConfigLimits(t *testing.T) {
	cfg := DefaultConfig()
	if math.Abs(cfg.UpperLimit()-0.91) > 1e-12 {
		t.Errorf("upper limit = %v, expected 0.91", cfg.UpperLimit())
	}
	if math.Abs(cfg.BottomLimit()-0.01) > 1e-12 {
		t.Errorf("bottom limit = %v, expected 0.01", cfg.BottomLimit())
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if err := (Config{DecreaseValue: 0, IncreaseValue: 0.1}).Validate(); err == nil {
		t.Error("zero decrease_value should not validate")
	}
	if err := (Config{DecreaseValue: 0.1, IncreaseValue: 0.05}).Validate(); err == nil {
		t.Error("increase_value below decrease_value should not validate")
	}
}
