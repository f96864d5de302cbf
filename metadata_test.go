package marky_test

import (
	"testing"

	"github.com/fwojciec/marky"
	"github.com/stretchr/testify/assert"
)

func TestNodeMetadata(t *testing.T) {
	t.Parallel()

	t.Run("zero value is root level", func(t *testing.T) {
		t.Parallel()
		assert.True(t, marky.NodeMetadata{}.IsRootLevel())
	})

	t.Run("every increment raises level", func(t *testing.T) {
		t.Parallel()
		var m marky.NodeMetadata
		m = m.IncLevel().IncQuoteLevel().IncListLevel().IncParagraphLevel()
		assert.Equal(t, marky.NodeMetadata{Level: 4, QuoteLevel: 1, ListLevel: 1, ParagraphLevel: 1}, m)
		assert.False(t, m.IsRootLevel())
	})

	t.Run("increments only touch their own counter", func(t *testing.T) {
		t.Parallel()
		base := marky.NodeMetadata{Level: 2, QuoteLevel: 1}
		assert.Equal(t, marky.NodeMetadata{Level: 3, QuoteLevel: 2}, base.IncQuoteLevel())
		assert.Equal(t, marky.NodeMetadata{Level: 3, QuoteLevel: 1, ListLevel: 1}, base.IncListLevel())
		assert.Equal(t, marky.NodeMetadata{Level: 3, QuoteLevel: 1, ParagraphLevel: 1}, base.IncParagraphLevel())
		assert.Equal(t, marky.NodeMetadata{Level: 3, QuoteLevel: 1}, base.IncLevel())
	})

	t.Run("receiver is never mutated", func(t *testing.T) {
		t.Parallel()
		base := marky.NodeMetadata{Level: 1}
		_ = base.IncQuoteLevel()
		_ = base.IncListLevel()
		assert.Equal(t, marky.NodeMetadata{Level: 1}, base)
	})
}
