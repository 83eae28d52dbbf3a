package state

// Tri is a three-valued boolean used by accessors that may not be able to
// answer from the available tracking data. It keeps "false" and "don't know"
// from conflating at call sites.
type Tri int

const (
	// TriUnknown means the underlying tracking cannot decide the question.
	TriUnknown Tri = iota
	// TriFalse means the question is definitely false.
	TriFalse
	// TriTrue means the question is definitely true.
	TriTrue
)

// String returns the string representation of the tri-state value.
func (t Tri) String() string {
	switch t {
	case TriTrue:
		return "TRUE"
	case TriFalse:
		return "FALSE"
	default:
		return "UNKNOWN"
	}
}

// TriOf converts a fully-known boolean into a Tri.
func TriOf(b bool) Tri {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Known reports whether the value is decided either way.
func (t Tri) Known() bool {
	return t == TriTrue || t == TriFalse
}

// True reports whether the value is definitely true.
func (t Tri) True() bool {
	return t == TriTrue
}

// False reports whether the value is definitely false.
func (t Tri) False() bool {
	return t == TriFalse
}

// Not negates the value; unknown stays unknown.
func (t Tri) Not() Tri {
	switch t {
	case TriTrue:
		return TriFalse
	case TriFalse:
		return TriTrue
	default:
		return TriUnknown
	}
}

// And combines two tri-state values with three-valued conjunction:
// any false wins, otherwise any unknown wins.
func (t Tri) And(other Tri) Tri {
	if t == TriFalse || other == TriFalse {
		return TriFalse
	}
	if t == TriUnknown || other == TriUnknown {
		return TriUnknown
	}
	return TriTrue
}

// Or combines two tri-state values with three-valued disjunction:
// any true wins, otherwise any unknown wins.
func (t Tri) Or(other Tri) Tri {
	if t == TriTrue || other == TriTrue {
		return TriTrue
	}
	if t == TriUnknown || other == TriUnknown {
		return TriUnknown
	}
	return TriFalse
}
