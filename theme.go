package marky

// Theme defines semantic color mappings for the terminal renderer and the
// table style used for every table in a document. Colors default to ANSI
// indices (0-15) so the user's terminal theme decides the actual RGB
// values.
type Theme struct {
	Heading Color // Headlines
	Link    Color // Link text and URLs
	Code    Color // Inline code and code blocks
	Muted   Color // Code gutters, quote bars, list markers, rule
	Table   TableStyle
}

// DefaultTheme returns the default ANSI color mapping with a fully outlined
// table.
func DefaultTheme() Theme {
	border := Divider{Thickness: 1, Color: ANSI(8)}
	return Theme{
		Heading: ANSI(5),
		Link:    ANSI(4),
		Code:    ANSI(3),
		Muted:   ANSI(8),
		Table: TableStyle{
			CellMinWidth:   3,
			CellMaxWidth:   40,
			CellMinHeight:  1,
			CellMaxHeight:  Unbounded,
			Left:           border,
			Top:            border,
			Right:          border,
			Bottom:         border,
			Header:         border,
			BodyHorizontal: Divider{},
			BodyVertical:   border,
		},
	}
}
