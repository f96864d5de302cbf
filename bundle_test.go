package marky_test

import (
	"testing"

	"github.com/fwojciec/marky"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) marky.TextNode {
	return marky.TextNode{Node: marky.PlainText{Text: s}}
}

func TestBundle(t *testing.T) {
	t.Parallel()

	meta := marky.NodeMetadata{Level: 1, ParagraphLevel: 1}

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, marky.Bundle(nil, meta))
	})

	t.Run("single text node passes through", func(t *testing.T) {
		t.Parallel()
		in := []marky.Composable{text("a")}
		assert.Equal(t, in, marky.Bundle(in, meta))
	})

	t.Run("adjacent text nodes merge in order", func(t *testing.T) {
		t.Parallel()
		in := []marky.Composable{
			text("a"),
			marky.TextNode{Node: marky.Bold{Children: []marky.Annotated{marky.PlainText{Text: "b"}}}},
			text("c"),
		}
		out := marky.Bundle(in, meta)
		require.Len(t, out, 1)
		tn, ok := out[0].(marky.TextNode)
		require.True(t, ok)
		pt, ok := tn.Node.(marky.ParagraphText)
		require.True(t, ok)
		assert.Equal(t, meta, pt.Metadata)
		assert.Equal(t, meta, tn.Metadata)
		require.Len(t, pt.Children, 3)
		assert.Equal(t, "abc", marky.PlainString(pt.Children))
	})

	t.Run("non-text nodes split runs", func(t *testing.T) {
		t.Parallel()
		in := []marky.Composable{
			text("a"), text("b"),
			marky.Rule{},
			text("c"),
			marky.Image{URL: "x.png"},
			text("d"), text("e"),
		}
		out := marky.Bundle(in, meta)
		require.Len(t, out, 5)
		assert.IsType(t, marky.TextNode{}, out[0])
		assert.Equal(t, marky.Rule{}, out[1])
		assert.Equal(t, text("c"), out[2])
		assert.Equal(t, marky.Image{URL: "x.png"}, out[3])
		assert.IsType(t, marky.TextNode{}, out[4])
	})

	t.Run("idempotent and minimal", func(t *testing.T) {
		t.Parallel()
		inputs := [][]marky.Composable{
			{text("a"), text("b"), text("c")},
			{marky.Rule{}, text("a"), marky.Rule{}, text("b"), text("c")},
			{text("a"), marky.Paragraph{}, text("b"), text("c"), text("d"), marky.Rule{}},
			{marky.Rule{}, marky.Rule{}},
		}
		for _, in := range inputs {
			once := marky.Bundle(in, meta)
			twice := marky.Bundle(once, meta)
			assert.Equal(t, once, twice)
			for i := 1; i < len(once); i++ {
				_, prev := once[i-1].(marky.TextNode)
				_, curr := once[i].(marky.TextNode)
				assert.False(t, prev && curr, "adjacent text nodes at %d", i)
			}
		}
	})

	t.Run("merged groups are flattened", func(t *testing.T) {
		t.Parallel()
		grouped := marky.Bundle([]marky.Composable{text("a"), text("b")}, meta)
		out := marky.Bundle(append(grouped, text("c")), meta)
		require.Len(t, out, 1)
		pt := out[0].(marky.TextNode).Node.(marky.ParagraphText)
		assert.Len(t, pt.Children, 3)
	})
}
