package table

// Tribool is Kleene three-valued logic: comparisons that touch a missing
// value yield Unknown, never a definite answer.
type Tribool uint8

const (
	Unknown Tribool = iota
	False
	True
)

func (tri Tribool) And(other Tribool) Tribool {
	if tri == False || other == False {
		return False
	}
	if tri == Unknown || other == Unknown {
		return Unknown
	}
	return True
}

func (tri Tribool) Or(other Tribool) Tribool {
	if tri == True || other == True {
		return True
	}
	if tri == Unknown || other == Unknown {
		return Unknown
	}
	return False
}

func (tri Tribool) Not() Tribool {
	switch tri {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

// IsTrue reports a definite yes. Unknown is not true.
func (tri Tribool) IsTrue() bool {
	return tri == True
}

func (tri Tribool) String() string {
	switch tri {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Equal compares two values under three-valued logic. Any Absent operand
// makes the answer Unknown. Values of different kinds are never equal (no
// coercion), and NaN is equal to nothing, itself included.
func Equal(a, b Value) Tribool {
	if a.IsAbsent() || b.IsAbsent() {
		return Unknown
	}
	if a.kind != b.kind {
		return False
	}
	switch a.kind {
	case KindNumber:
		if a.num == b.num {
			return True
		}
		return False
	case KindText, KindCategory:
		if a.text == b.text {
			return True
		}
		return False
	case KindBool:
		if a.truth == b.truth {
			return True
		}
		return False
	default:
		return False
	}
}
