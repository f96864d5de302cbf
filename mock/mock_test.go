package mock_test

import (
	"testing"

	"github.com/fwojciec/marky"
	"github.com/fwojciec/marky/mock"
	"github.com/stretchr/testify/assert"
)

func TestMeasurer(t *testing.T) {
	t.Parallel()

	var got marky.Constraints
	m := &mock.Measurer{
		MeasureCellFn: func(_ marky.TableCell, c marky.Constraints) marky.Size {
			got = c
			return marky.Size{Width: 3, Height: 1}
		},
	}
	c := marky.Constraints{MaxWidth: 10, MaxHeight: 2}
	size := m.MeasureCell(marky.TableCell{}, c)

	assert.Equal(t, marky.Size{Width: 3, Height: 1}, size)
	assert.Equal(t, c, got)
}
