package goldmark_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/marky"
	"github.com/fwojciec/marky/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, src string) []marky.Composable {
	t.Helper()
	nodes, err := goldmark.Convert(context.Background(), src)
	require.NoError(t, err)
	return nodes
}

// paragraphText returns the unstyled text of a Paragraph node.
func paragraphText(t *testing.T, node marky.Composable) string {
	t.Helper()
	p, ok := node.(marky.Paragraph)
	require.True(t, ok, "expected Paragraph, got %T", node)
	var runs []marky.Annotated
	for _, c := range p.Children {
		tn, ok := c.(marky.TextNode)
		require.True(t, ok, "expected TextNode, got %T", c)
		runs = append(runs, tn.Node)
	}
	return marky.PlainString(runs)
}

// collect returns every annotated node of type T below nodes.
func collect[T marky.Annotated](nodes []marky.Annotated) []T {
	var out []T
	for _, n := range nodes {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
		out = append(out, collect[T](marky.AnnotatedChildren(n))...)
	}
	return out
}

func paragraphRuns(t *testing.T, node marky.Composable) []marky.Annotated {
	t.Helper()
	p, ok := node.(marky.Paragraph)
	require.True(t, ok, "expected Paragraph, got %T", node)
	var runs []marky.Annotated
	for _, c := range p.Children {
		runs = append(runs, c.(marky.TextNode).Node)
	}
	return runs
}

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields no nodes", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, convert(t, ""))
	})

	t.Run("heading levels map one to one", func(t *testing.T) {
		t.Parallel()
		for level := 1; level <= 6; level++ {
			nodes := convert(t, strings.Repeat("#", level)+" Title")
			require.Len(t, nodes, 1)
			h, ok := nodes[0].(marky.Headline)
			require.True(t, ok)
			assert.Equal(t, level, h.Level)
			assert.Equal(t, "Title", marky.PlainString(h.Children))
		}
	})

	t.Run("thematic break becomes rule", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "a\n\n---\n\nb")
		require.Len(t, nodes, 3)
		assert.Equal(t, marky.Rule{}, nodes[1])
	})

	t.Run("paragraph runs are bundled into one text node", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "hello **bold** and *italic* `code`")
		require.Len(t, nodes, 1)
		p := nodes[0].(marky.Paragraph)
		require.Len(t, p.Children, 1)
		tn := p.Children[0].(marky.TextNode)
		pt, ok := tn.Node.(marky.ParagraphText)
		require.True(t, ok)
		assert.Equal(t, "hello bold and italic code", marky.PlainString(pt.Children))
		assert.Len(t, collect[marky.Bold](pt.Children), 1)
		assert.Len(t, collect[marky.Italic](pt.Children), 1)
		assert.Len(t, collect[marky.InlineCode](pt.Children), 1)
		assert.Equal(t, 1, pt.Metadata.ParagraphLevel)
		assert.True(t, p.Metadata.IsRootLevel())
	})

	t.Run("bold italic nests", func(t *testing.T) {
		t.Parallel()
		runs := paragraphRuns(t, convert(t, "***both***")[0])
		assert.Len(t, collect[marky.Bold](runs), 1)
		assert.Len(t, collect[marky.Italic](runs), 1)
		assert.Equal(t, "both", marky.PlainString(runs))
	})

	t.Run("links keep url and title", func(t *testing.T) {
		t.Parallel()
		runs := paragraphRuns(t, convert(t, `[click](https://example.com "Example")`)[0])
		links := collect[marky.Link](runs)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com", links[0].URL)
		assert.Equal(t, "Example", links[0].Title)
		assert.Equal(t, "click", marky.PlainString(links[0].Children))
	})

	t.Run("bare urls become links", func(t *testing.T) {
		t.Parallel()
		runs := paragraphRuns(t, convert(t, "see https://example.com now")[0])
		links := collect[marky.Link](runs)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com", links[0].URL)
		assert.Equal(t, "https://example.com", marky.PlainString(links[0].Children))
	})

	t.Run("strikethrough subscript and superscript", func(t *testing.T) {
		t.Parallel()
		runs := paragraphRuns(t, convert(t, "H~2~O and x^2^ and ~~gone~~")[0])
		subs := collect[marky.Subscript](runs)
		sups := collect[marky.Superscript](runs)
		strikes := collect[marky.Strikethrough](runs)
		require.Len(t, subs, 1)
		require.Len(t, sups, 1)
		require.Len(t, strikes, 1)
		assert.Equal(t, "2", marky.PlainString(subs[0].Children))
		assert.Equal(t, "2", marky.PlainString(sups[0].Children))
		assert.Equal(t, "gone", marky.PlainString(strikes[0].Children))
	})

	t.Run("single tildes and carets do not span whitespace", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{
			"~/path and a~b",
			"takes ~5 min and ~10 min",
			"2^10 and 2^20 bytes",
		} {
			runs := paragraphRuns(t, convert(t, src)[0])
			assert.Empty(t, collect[marky.Subscript](runs), src)
			assert.Empty(t, collect[marky.Superscript](runs), src)
			assert.Equal(t, src, marky.PlainString(runs))
		}
	})

	t.Run("image inside heading becomes alt text", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "# ![logo](x.png) Title")
		require.Len(t, nodes, 1)
		h := nodes[0].(marky.Headline)
		assert.Contains(t, marky.PlainString(h.Children), "logo")
		assert.Contains(t, marky.PlainString(h.Children), "Title")
	})

	t.Run("html blocks produce nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, convert(t, "<div>\nhi\n</div>"))
	})
}

func TestConvert_SplitOnImage(t *testing.T) {
	t.Parallel()

	t.Run("lone image", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, `![alt text](pic.png "Title")`)
		require.Len(t, nodes, 1)
		assert.Equal(t, marky.Image{URL: "pic.png", AltText: "alt text", Title: "Title"}, nodes[0])
	})

	t.Run("missing alt and title are empty", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "![](pic.png)")
		require.Len(t, nodes, 1)
		assert.Equal(t, marky.Image{URL: "pic.png"}, nodes[0])
	})

	t.Run("images interleaved with text", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "before ![one](1.png) middle **bold** ![two](2.png) after")
		require.Len(t, nodes, 5)
		assert.Equal(t, "before", strings.TrimSpace(paragraphText(t, nodes[0])))
		assert.Equal(t, marky.Image{URL: "1.png", AltText: "one"}, nodes[1])
		assert.Equal(t, "middle bold", strings.TrimSpace(paragraphText(t, nodes[2])))
		assert.Equal(t, marky.Image{URL: "2.png", AltText: "two"}, nodes[3])
		assert.Equal(t, "after", strings.TrimSpace(paragraphText(t, nodes[4])))
	})

	t.Run("k images produce k image nodes", func(t *testing.T) {
		t.Parallel()
		for k := 0; k <= 4; k++ {
			var b strings.Builder
			for i := 0; i < k; i++ {
				b.WriteString("t ![i](x.png) ")
			}
			b.WriteString("end")
			var images int
			var text strings.Builder
			for _, n := range convert(t, b.String()) {
				switch n.(type) {
				case marky.Image:
					images++
				case marky.Paragraph:
					text.WriteString(paragraphText(t, n))
				default:
					t.Fatalf("unexpected node %T", n)
				}
			}
			assert.Equal(t, k, images)
			assert.Equal(t, strings.Repeat("t ", k)+"end", strings.Join(strings.Fields(text.String()), " "))
		}
	})
}

func TestConvert_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("fenced block keeps language and leading whitespace", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "```go\n  x := 1\n    y := 2   \n\n```")
		require.Len(t, nodes, 1)
		assert.Equal(t, marky.CodeBlock{Content: "  x := 1\n    y := 2", Language: "go"}, nodes[0])
	})

	t.Run("fenced block keeps the whole info string", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "```go title=main.go\nx\n```")
		require.Len(t, nodes, 1)
		assert.Equal(t, marky.CodeBlock{Content: "x", Language: "go title=main.go"}, nodes[0])
	})

	t.Run("fenced block without info string has no language", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "```\nplain\n```")
		require.Len(t, nodes, 1)
		assert.Equal(t, marky.CodeBlock{Content: "plain"}, nodes[0])
	})

	t.Run("indented block is dedented", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "    a\n        b\n")
		require.Len(t, nodes, 1)
		assert.Equal(t, marky.CodeBlock{Content: "a\n    b"}, nodes[0])
	})

	t.Run("indented block inside a quote", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, ">     a\n>         b\n")
		require.Len(t, nodes, 1)
		q := nodes[0].(marky.BlockQuote)
		require.Len(t, q.Children, 1)
		code := q.Children[0].(marky.CodeBlock)
		assert.Equal(t, "a\n    b", code.Content)
	})
}

func TestDedent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\n    b", goldmark.Dedent("a\n        b"))
	assert.Equal(t, "a\nb\n  c", goldmark.Dedent("a\n\tb\n\t  c"))
	assert.Equal(t, "  a\nb\n", goldmark.Dedent("  a\n  b\n"))
	assert.Equal(t, "a\n\tb", goldmark.Dedent("a\n    \tb"))
}

func TestConvert_BlockQuote(t *testing.T) {
	t.Parallel()

	for depth := 1; depth <= 5; depth++ {
		nodes := convert(t, strings.Repeat("> ", depth)+"deep")
		require.Len(t, nodes, 1)
		node := nodes[0]
		for i := 0; i < depth; i++ {
			q, ok := node.(marky.BlockQuote)
			require.True(t, ok, "depth %d: expected BlockQuote at %d, got %T", depth, i, node)
			assert.Equal(t, i, q.Metadata.QuoteLevel)
			require.Len(t, q.Children, 1)
			node = q.Children[0]
		}
		p, ok := node.(marky.Paragraph)
		require.True(t, ok)
		assert.Equal(t, depth, p.Metadata.QuoteLevel)
		assert.GreaterOrEqual(t, p.Metadata.Level, depth)
		for _, c := range p.Children {
			assert.Equal(t, depth, c.Meta().QuoteLevel)
			assert.GreaterOrEqual(t, c.Meta().Level, depth)
		}
	}
}

func TestConvert_Table(t *testing.T) {
	t.Parallel()

	t.Run("alignment applies to head and body", func(t *testing.T) {
		t.Parallel()
		src := "| a | b | c |\n|:---:|---:|---|\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\n"
		nodes := convert(t, src)
		require.Len(t, nodes, 1)
		table, ok := nodes[0].(marky.TableBlock)
		require.True(t, ok)
		require.Len(t, table.Body, 2)
		for _, row := range table.Rows() {
			require.Len(t, row.Cells, 3)
			assert.Equal(t, marky.AlignCenter, row.Cells[0].Alignment)
			assert.Equal(t, marky.AlignEnd, row.Cells[1].Alignment)
			assert.Equal(t, marky.AlignStart, row.Cells[2].Alignment)
		}
		assert.Equal(t, "a", marky.PlainString(table.Head.Cells[0].Children))
		assert.Equal(t, "6", marky.PlainString(table.Body[1].Cells[2].Children))
	})

	t.Run("left marker maps to start", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "| a |\n|:---|\n| 1 |\n")
		table := nodes[0].(marky.TableBlock)
		assert.Equal(t, marky.AlignStart, table.Head.Cells[0].Alignment)
		assert.Equal(t, marky.AlignStart, table.Body[0].Cells[0].Alignment)
	})

	t.Run("cells keep inline styling", func(t *testing.T) {
		t.Parallel()
		nodes := convert(t, "| **a** | [b](u) |\n|---|---|\n")
		table := nodes[0].(marky.TableBlock)
		assert.Empty(t, table.Body)
		assert.Len(t, collect[marky.Bold](table.Head.Cells[0].Children), 1)
		assert.Len(t, collect[marky.Link](table.Head.Cells[1].Children), 1)
	})
}

func TestConvert_List(t *testing.T) {
	t.Parallel()

	t.Run("ordered indices ignore source numerals", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{"1. A\n2. B\n", "3. A\n7. B\n", "1. A\n1. B\n"} {
			nodes := convert(t, src)
			require.Len(t, nodes, 1)
			list := nodes[0].(marky.ListBlock)
			require.Len(t, list.Entries, 2)
			a := list.Entries[0].(marky.ListItem)
			b := list.Entries[1].(marky.ListItem)
			assert.Equal(t, marky.Ordered{Index: 1}, a.Type)
			assert.Equal(t, marky.Ordered{Index: 2}, b.Type)
			assert.Equal(t, "A", marky.PlainString(a.Children))
			assert.Equal(t, "B", marky.PlainString(b.Children))
		}
	})

	t.Run("bullet items are unordered", func(t *testing.T) {
		t.Parallel()
		list := convert(t, "- one\n- two\n")[0].(marky.ListBlock)
		require.Len(t, list.Entries, 2)
		for _, e := range list.Entries {
			assert.Equal(t, marky.Unordered{}, e.(marky.ListItem).Type)
		}
	})

	t.Run("task items", func(t *testing.T) {
		t.Parallel()
		list := convert(t, "- [x] done\n- [ ] todo\n")[0].(marky.ListBlock)
		require.Len(t, list.Entries, 2)
		done := list.Entries[0].(marky.ListItem)
		todo := list.Entries[1].(marky.ListItem)
		assert.Equal(t, marky.Task{Completed: true}, done.Type)
		assert.Equal(t, marky.Task{Completed: false}, todo.Type)
		assert.Equal(t, "done", strings.TrimSpace(marky.PlainString(done.Children)))
		assert.Equal(t, "todo", strings.TrimSpace(marky.PlainString(todo.Children)))
	})

	t.Run("nested list raises list level", func(t *testing.T) {
		t.Parallel()
		list := convert(t, "- outer\n  - inner one\n  - inner two\n")[0].(marky.ListBlock)
		require.Len(t, list.Entries, 2)
		assert.IsType(t, marky.ListItem{}, list.Entries[0])
		node, ok := list.Entries[1].(marky.ListNode)
		require.True(t, ok)
		inner, ok := node.Node.(marky.ListBlock)
		require.True(t, ok)
		assert.Equal(t, 1, inner.Metadata.ListLevel)
		assert.Equal(t, 1, inner.Metadata.Level)
		require.Len(t, inner.Entries, 2)
		assert.Equal(t, "inner two", marky.PlainString(inner.Entries[1].(marky.ListItem).Children))
	})

	t.Run("other blocks in an item raise level only", func(t *testing.T) {
		t.Parallel()
		list := convert(t, "- item\n\n  continued\n\n  > quoted\n")[0].(marky.ListBlock)
		require.Len(t, list.Entries, 3)
		assert.IsType(t, marky.ListItem{}, list.Entries[0])
		p := list.Entries[1].(marky.ListNode).Node.(marky.Paragraph)
		assert.Equal(t, marky.NodeMetadata{Level: 1}, p.Metadata)
		q := list.Entries[2].(marky.ListNode).Node.(marky.BlockQuote)
		assert.Equal(t, 0, q.Metadata.ListLevel)
	})

	t.Run("empty items are dropped", func(t *testing.T) {
		t.Parallel()
		list := convert(t, "- a\n-\n- c\n")[0].(marky.ListBlock)
		require.Len(t, list.Entries, 2)
		assert.Equal(t, "a", marky.PlainString(list.Entries[0].(marky.ListItem).Children))
		assert.Equal(t, "c", marky.PlainString(list.Entries[1].(marky.ListItem).Children))
	})

	t.Run("first entry of every item is a list item", func(t *testing.T) {
		t.Parallel()
		src := "- a\n  - b\n    1. c\n    2. d\n  ```\n  code\n  ```\n- e\n\n  para\n"
		var check func(list marky.ListBlock)
		check = func(list marky.ListBlock) {
			require.NotEmpty(t, list.Entries)
			assert.IsType(t, marky.ListItem{}, list.Entries[0])
			for _, e := range list.Entries {
				if n, ok := e.(marky.ListNode); ok {
					if inner, ok := n.Node.(marky.ListBlock); ok {
						check(inner)
					}
				}
			}
		}
		check(convert(t, src)[0].(marky.ListBlock))
	})
}

func TestConverter_Concurrency(t *testing.T) {
	t.Parallel()

	src := "# T\n\n- a\n  - b\n\n| x | y |\n|---|---|\n| 1 | 2 |\n\n> q\n\npara ![i](i.png) text\n"
	want, err := goldmark.New().Convert(context.Background(), []byte(src))
	require.NoError(t, err)
	got, err := goldmark.New(goldmark.WithConcurrency(1)).Convert(context.Background(), []byte(src))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConverter_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := goldmark.New().Convert(ctx, []byte("# hi\n\ntext"))
	assert.ErrorIs(t, err, context.Canceled)
}
