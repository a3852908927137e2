package tview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Segment is a run of text in one style.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is a row of styled segments.
type Line []Segment

// Text returns the line's text without styles.
func (l Line) Text() string {
	var b strings.Builder
	for _, segment := range l {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// Width returns the number of cells the line takes.
func (l Line) Width() int {
	width := 0
	for _, segment := range l {
		width += uniseg.StringWidth(segment.Text)
	}
	return width
}

// push appends text, merging it into the last segment if the styles match.
func (l Line) push(text string, style tcell.Style) Line {
	if text == "" {
		return l
	}
	if n := len(l); n > 0 && l[n-1].Style == style {
		l[n-1].Text += text
		return l
	}
	return append(l, Segment{Text: text, Style: style})
}

// LineBuilder turns styled writes into lines, starting a new line at every
// newline.
type LineBuilder struct {
	lines   []Line
	current Line
}

func NewLineBuilder() *LineBuilder {
	return &LineBuilder{}
}

// Write appends text in style.
func (b *LineBuilder) Write(text string, style tcell.Style) {
	for {
		head, tail, found := strings.Cut(text, "\n")
		b.current = b.current.push(head, style)
		if !found {
			return
		}
		b.NewLine()
		text = tail
	}
}

// NewLine ends the current line.
func (b *LineBuilder) NewLine() {
	b.lines = append(b.lines, b.current)
	b.current = nil
}

// Finish returns the lines written so far. The result has at least one line.
func (b *LineBuilder) Finish() []Line {
	if len(b.current) > 0 || len(b.lines) == 0 {
		b.NewLine()
	}
	return b.lines
}

// WordWrap breaks text into lines of at most width cells, preferring the
// break opportunities of the Unicode line breaking algorithm. Words longer
// than width are cut. Mandatory breaks end a line and are removed.
func WordWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var (
		lines      []string
		start      int // byte offset of the current line
		lineWidth  int
		breakAt    int // byte offset of the last break opportunity, 0 if none
		breakWidth int
	)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, to := g.Positions()
		w := g.Width()

		if lineWidth+w > width && from > start {
			if breakAt > start {
				lines = append(lines, text[start:breakAt])
				lineWidth -= breakWidth
				start = breakAt
			} else {
				lines = append(lines, text[start:from])
				lineWidth = 0
				start = from
			}
			breakAt, breakWidth = 0, 0
		}
		lineWidth += w

		switch g.LineBreak() {
		case uniseg.LineCanBreak:
			breakAt, breakWidth = to, lineWidth
		case uniseg.LineMustBreak:
			if to < len(text) || strings.ContainsAny(text[from:to], "\r\n") {
				lines = append(lines, strings.TrimRight(text[start:to], "\r\n"))
				start, lineWidth = to, 0
				breakAt, breakWidth = 0, 0
			}
		}
	}
	if start < len(text) || len(lines) == 0 {
		lines = append(lines, text[start:])
	}
	return lines
}

// WrapLine word-wraps a styled line to width, keeping each segment's style.
// It always returns at least one line.
func WrapLine(line Line, width int) []Line {
	text := line.Text()
	if width <= 0 || uniseg.StringWidth(text) <= width {
		return []Line{line}
	}

	out := make([]Line, 0, 2)
	segment, offset := 0, 0
	for _, chunk := range WordWrap(text, width) {
		var wrapped Line
		for need := len(chunk); need > 0 && segment < len(line); {
			s := line[segment]
			n := min(len(s.Text)-offset, need)
			wrapped = wrapped.push(s.Text[offset:offset+n], s.Style)
			offset += n
			need -= n
			if offset == len(s.Text) {
				segment, offset = segment+1, 0
			}
		}
		out = append(out, wrapped)
	}
	return out
}
