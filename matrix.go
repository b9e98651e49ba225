package markovrps

// WeightMatrix accumulates evidence about which state tends to follow
// which: one row per previous state, one column per next state. It is a
// bounded weight table, not a stochastic matrix; rows are never
// renormalized, so row sums drift as reinforcement accumulates while
// individual cells stay within [0, 1].
type WeightMatrix [NumStates][NumStates]float64

// NewWeightMatrix returns a matrix with every cell at the uniform 1/9.
func NewWeightMatrix() WeightMatrix {
	var m WeightMatrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = 1.0 / NumStates
		}
	}
	return m
}

// Row returns a copy of the row for the given previous-state index.
func (m *WeightMatrix) Row(i int) [NumStates]float64 {
	return m[i]
}

// reinforce nudges the row for prev toward the observed transition.
// The whole row is left untouched if the observed cell has already
// reached the upper limit, or if any cell in the row has drained to
// the bottom limit: a single violated cell halts the entire row for
// this round. This is a numeric safety stop, not an error.
func (m *WeightMatrix) reinforce(prev, observed int, cfg Config) {
	row := &m[prev]

	if row[observed] > cfg.UpperLimit() {
		return
	}
	min := row[0]
	for _, w := range row[1:] {
		if w < min {
			min = w
		}
	}
	if min < cfg.BottomLimit() {
		return
	}

	for j := range row {
		row[j] -= cfg.DecreaseValue
	}
	row[observed] += cfg.IncreaseValue
}
