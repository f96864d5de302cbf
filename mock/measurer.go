// Package mock provides test doubles for marky interfaces using function
// fields.
package mock

import "github.com/fwojciec/marky"

// Interface compliance checks.
var _ marky.CellMeasurer = (*Measurer)(nil)

// Measurer is a test double for marky.CellMeasurer.
// Set MeasureCellFn before calling MeasureCell.
type Measurer struct {
	MeasureCellFn func(cell marky.TableCell, c marky.Constraints) marky.Size
}

// MeasureCell delegates to MeasureCellFn.
func (m *Measurer) MeasureCell(cell marky.TableCell, c marky.Constraints) marky.Size {
	return m.MeasureCellFn(cell, c)
}
