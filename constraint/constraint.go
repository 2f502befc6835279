package constraint

import (
	"strconv"
	"strings"
)

// Term represents a coeff * variable in a linear constraint. Variables are
// binary; they take the value 0 or 1 in any assignment.
type Term struct {
	Coeff int
	Var   uint32
}

// A LinearExpression is a sum of Term
type LinearExpression []Term

// Clone returns a copy of the underlying slice
func (l LinearExpression) Clone() LinearExpression {
	res := make(LinearExpression, len(l))
	copy(res, l)
	return res
}

// Sense is the comparison direction of a Linear constraint
type Sense uint8

const (
	Eq Sense = iota
	AtMost
	AtLeast
)

func (s Sense) String() string {
	switch s {
	case Eq:
		return "="
	case AtMost:
		return "<="
	case AtLeast:
		return ">="
	default:
		return "unknown"
	}
}

// Linear is a constraint of the form L (Sense) K, for example
// x0 + x1 - x2 <= 1
type Linear struct {
	L     LinearExpression
	Sense Sense
	K     int
}

func (c Linear) String() string {
	var sbb strings.Builder
	if len(c.L) == 0 {
		sbb.WriteByte('0')
	}
	for i, t := range c.L {
		switch {
		case i == 0 && t.Coeff < 0:
			sbb.WriteByte('-')
		case i > 0 && t.Coeff < 0:
			sbb.WriteString(" - ")
		case i > 0:
			sbb.WriteString(" + ")
		}
		if a := abs(t.Coeff); a != 1 {
			sbb.WriteString(strconv.Itoa(a))
			sbb.WriteByte('*')
		}
		sbb.WriteByte('x')
		sbb.WriteString(strconv.FormatUint(uint64(t.Var), 10))
	}
	sbb.WriteByte(' ')
	sbb.WriteString(c.Sense.String())
	sbb.WriteByte(' ')
	sbb.WriteString(strconv.Itoa(c.K))
	return sbb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
