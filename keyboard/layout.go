package keyboard

// Definition describes one key of a layout template before it is
// materialized for a locale.
type Definition struct {
	Code       int
	Label      string
	ShiftCode  int
	ShiftLabel string
}

// Layout is a registered keyboard layout template: the rows of key
// definitions a Keyboard is materialized from.
type Layout struct {
	Kind LayoutKind
	Rows [][]Definition
}

// KeyCount returns the number of keys across all rows.
func (l Layout) KeyCount() int {
	n := 0
	for _, row := range l.Rows {
		n += len(row)
	}
	return n
}

// HasKey reports whether any key in the layout produces code.
func (l Layout) HasKey(code int) bool {
	for _, row := range l.Rows {
		for _, d := range row {
			if d.Code == code {
				return true
			}
		}
	}
	return false
}
