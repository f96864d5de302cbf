package marky

import "fmt"

// Validate checks that cell bounds are non-negative and ordered and that no
// divider has a negative thickness. A zero maximum is unbounded.
func (s TableStyle) Validate() error {
	ranges := []struct {
		name     string
		min, max int
	}{
		{"cell width", s.CellMinWidth, s.CellMaxWidth},
		{"cell height", s.CellMinHeight, s.CellMaxHeight},
	}
	for _, b := range ranges {
		if b.max == 0 {
			b.max = Unbounded
		}
		if b.min < 0 || b.max < 0 {
			return fmt.Errorf("%s bounds must be non-negative, got [%d, %d]: %w", b.name, b.min, b.max, ErrValidation)
		}
		if b.min > b.max {
			return fmt.Errorf("%s min %d exceeds max %d: %w", b.name, b.min, b.max, ErrValidation)
		}
	}

	dividers := []struct {
		name string
		d    Divider
	}{
		{"left outline", s.Left},
		{"top outline", s.Top},
		{"right outline", s.Right},
		{"bottom outline", s.Bottom},
		{"header divider", s.Header},
		{"body horizontal divider", s.BodyHorizontal},
		{"body vertical divider", s.BodyVertical},
	}
	for _, d := range dividers {
		if d.d.Thickness < 0 {
			return fmt.Errorf("%s thickness must be non-negative, got %d: %w", d.name, d.d.Thickness, ErrValidation)
		}
	}
	return nil
}
