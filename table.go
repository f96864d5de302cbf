package marky

// Alignment is the horizontal alignment of a table column.
type Alignment string

const (
	AlignStart  Alignment = "start"
	AlignCenter Alignment = "center"
	AlignEnd    Alignment = "end"
)

// TableRow is one row of cells. Rows of the same table may hold different
// cell counts when the source is ragged.
type TableRow struct {
	Cells []TableCell
}

// TableCell is a single cell of inline content.
type TableCell struct {
	Children  []Annotated
	Alignment Alignment
}
