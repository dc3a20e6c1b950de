package arc

// Marker is an arrow end decoration.
type Marker string

const (
	MarkerNone  Marker = "none"
	MarkerFull  Marker = "full"
	MarkerEmpty Marker = "empty"
)

// Style holds presentation hints for an arc type. Head decorates the target
// end, Tail the source end.
type Style struct {
	Color  string
	Dashed bool
	Head   Marker
	Tail   Marker
}

// Style returns the presentation hints for t. Init arcs are red and
// undecorated; arcs with a median endpoint use empty markers, and arcs with a
// below-median endpoint are dashed.
func (t Type) Style() Style {
	s := Style{Color: "black", Head: MarkerNone, Tail: MarkerNone}
	switch t {
	case Init:
		s.Color = "red"
	case ForwardStrong:
		s.Head = MarkerFull
	case BackwardStrong:
		s.Tail = MarkerFull
	case SymmetricStrong:
		s.Head, s.Tail = MarkerFull, MarkerFull
	case ForwardSoft:
		s.Head, s.Tail = MarkerFull, MarkerEmpty
	case BackwardSoft:
		s.Head, s.Tail = MarkerEmpty, MarkerFull
	case ForwardDottedSoft:
		s.Tail, s.Dashed = MarkerEmpty, true
	case BackwardDottedSoft:
		s.Head, s.Dashed = MarkerEmpty, true
	case SymmetricNeutral:
		s.Head, s.Tail, s.Dashed = MarkerEmpty, MarkerEmpty, true
	}
	return s
}
