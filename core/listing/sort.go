package listing

import "strings"

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// ParseDirection accepts "asc" or "desc" in any case; anything else is Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Sort orders a listing by one column.
type Sort struct {
	Column    string
	Direction Direction
}

// String renders the backend's "column,direction" form.
func (s Sort) String() string {
	if s.Column == "" {
		return ""
	}
	dir := s.Direction
	if dir == "" {
		dir = Asc
	}
	return s.Column + "," + string(dir)
}

// ParseSort reads "column,direction".
func ParseSort(s string) Sort {
	col, dir, _ := strings.Cut(s, ",")
	return Sort{Column: strings.TrimSpace(col), Direction: ParseDirection(dir)}
}
