package nfont

import "strings"

// A line produced by the word wrapping algorithm. Lines from wrapped
// paragraphs keep a trailing space after each word.
type wrapLine struct {
	text string
	start int // byte offset in the source text
	span int  // source bytes accounted for, including the separator
	          // after the line (space or line break)
}

// Splits the text into paragraphs and greedily wraps each paragraph to
// the given width. A paragraph that fits is kept as a single line. Else,
// words are added one by one, and when adding the next word would exceed
// the width, the current line is flushed and a new one starts with that
// word. Single words wider than the width are never split.
//
// This is the only wrapping algorithm: drawing and measuring all go
// through it.
func (self *Font) wrapLines(text string, width float32) []wrapLine {
	lines := make([]wrapLine, 0, 4)
	offset := 0
	for _, paragraph := range strings.Split(text, "\n") {
		start := offset
		offset += len(paragraph) + 1
		if self.measureLine(paragraph) <= width {
			lines = append(lines, wrapLine{ text: paragraph, start: start, span: len(paragraph) + 1 })
			continue
		}

		words := strings.Split(paragraph, " ")
		line := words[0] + " "
		for _, word := range words[1:] {
			if self.measureLine(line + word) > width {
				lines = append(lines, wrapLine{ text: line, start: start, span: len(line) })
				start += len(line)
				line = word + " "
			} else {
				line += word + " "
			}
		}
		lines = append(lines, wrapLine{ text: line, start: start, span: len(line) })
	}
	return lines
}
