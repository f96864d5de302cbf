package marky_test

import (
	"testing"

	"github.com/fwojciec/marky"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := marky.DefaultTheme()

	assert.Equal(t, marky.Color("5"), theme.Heading)
	assert.Equal(t, marky.Color("4"), theme.Link)
	assert.Equal(t, marky.Color("3"), theme.Code)
	assert.Equal(t, marky.Color("8"), theme.Muted)
	assert.NoError(t, theme.Table.Validate())
	assert.True(t, theme.Table.Left.Visible())
	assert.False(t, theme.Table.BodyHorizontal.Visible())
}

func TestANSI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, marky.Color("12"), marky.ANSI(12))
	assert.Equal(t, marky.NoColor, marky.ANSI(-1))
	assert.True(t, marky.ANSI(-1).Transparent())
}
