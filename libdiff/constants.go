package libdiff

// Op is the kind of an edit or change.
type Op int

const (
	Keep Op = iota
	Insert
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Keep:
		return "keep"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<op>"
}

// Sign is the marker used for o when rendering.
func (o Op) Sign() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return " "
}
