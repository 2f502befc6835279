package constraint

// Model is a pseudo-boolean feasibility model: a conjunction of Linear
// constraints over the binary variables 0 .. NbVars-1.
//
// A Model carries no objective; an assignment either satisfies every
// constraint or the model is infeasible.
type Model struct {
	NbVars      int
	Constraints []Linear
}

// NewModel returns an empty model over nbVars binary variables. capacity is
// a hint sizing the underlying constraint slice.
func NewModel(nbVars, capacity int) *Model {
	return &Model{
		NbVars:      nbVars,
		Constraints: make([]Linear, 0, capacity),
	}
}

// AddConstraint appends c to the model
func (m *Model) AddConstraint(c Linear) {
	m.Constraints = append(m.Constraints, c)
}

// AddEq appends the constraint l = k
func (m *Model) AddEq(l LinearExpression, k int) {
	m.AddConstraint(Linear{L: l, Sense: Eq, K: k})
}

// AddAtMost appends the constraint l <= k
func (m *Model) AddAtMost(l LinearExpression, k int) {
	m.AddConstraint(Linear{L: l, Sense: AtMost, K: k})
}

// AddAtLeast appends the constraint l >= k
func (m *Model) AddAtLeast(l LinearExpression, k int) {
	m.AddConstraint(Linear{L: l, Sense: AtLeast, K: k})
}

// NbConstraints returns the number of constraints in the model
func (m *Model) NbConstraints() int {
	return len(m.Constraints)
}

// Satisfied reports whether assignment, indexed by variable id, satisfies
// every constraint of the model.
func (m *Model) Satisfied(assignment []bool) bool {
	if len(assignment) < m.NbVars {
		return false
	}
	for _, c := range m.Constraints {
		v := 0
		for _, t := range c.L {
			if assignment[t.Var] {
				v += t.Coeff
			}
		}
		switch c.Sense {
		case Eq:
			if v != c.K {
				return false
			}
		case AtMost:
			if v > c.K {
				return false
			}
		case AtLeast:
			if v < c.K {
				return false
			}
		}
	}
	return true
}
