package goldmark

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/text"
)

const tabWidth = 4

// Dedent removes one tab width of leading whitespace, either a single tab
// or up to four spaces, from every line of content except the first.
func Dedent(content string) string {
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = dedentLine(lines[i])
	}
	return strings.Join(lines, "\n")
}

func dedentLine(line string) string {
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}
	n := 0
	for n < tabWidth && n < len(line) && line[n] == ' ' {
		n++
	}
	return line[n:]
}

func joinLines(lines *text.Segments, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

// indentedLines rebuilds an indented code block the way it reads before
// dedenting: the first line as the parser left it and every later line
// with its code indentation restored from source.
func indentedLines(lines *text.Segments, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		if i > 0 {
			buf.WriteString(leadingIndent(source, line.Start))
		}
		buf.Write(line.Value(source))
	}
	return buf.String()
}

// leadingIndent returns at most one tab width of whitespace immediately
// before pos on the same line.
func leadingIndent(source []byte, pos int) string {
	start := pos
	width := 0
	for start > 0 && width < tabWidth {
		switch source[start-1] {
		case ' ':
			width++
			start--
			continue
		case '\t':
			if width == 0 {
				return "\t"
			}
		}
		break
	}
	return string(source[start:pos])
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
