package buffer

import "github.com/riverfjs/tgentities/internal/util"

// TextBuffer accumulates message text and tracks its length in UTF-16 code
// units alongside the UTF-8 bytes.
type TextBuffer struct {
	buf         []byte
	utf16Offset int
}

// New creates an empty TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.buf = append(tb.buf, text...)
	tb.utf16Offset += util.UTF16Len(text)
}

// Insert places text at byte position pos, which must fall on a character
// boundary.
func (tb *TextBuffer) Insert(pos int, text string) {
	tb.buf = append(tb.buf[:pos], append([]byte(text), tb.buf[pos:]...)...)
	tb.utf16Offset += util.UTF16Len(text)
}

// UTF16Offset returns the current length in UTF-16 code units.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// ByteOffset returns the current length in bytes.
func (tb *TextBuffer) ByteOffset() int {
	return len(tb.buf)
}

// TrailingBlankCount counts the spaces, carriage returns and newlines at the
// end of the buffer. Each of them is one UTF-16 code unit.
func TrailingBlankCount(text []byte) int {
	n := 0
	for i := len(text) - 1; i >= 0; i-- {
		switch text[i] {
		case ' ', '\r', '\n':
			n++
		default:
			return n
		}
	}
	return n
}

// TrailingBlankCount counts the blanks at the end of the buffer.
func (tb *TextBuffer) TrailingBlankCount() int {
	return TrailingBlankCount(tb.buf)
}

// SpanLength returns the length of a span opened at UTF-16 offset start and
// closed at the current end of the buffer, not counting trailing blanks.
// The result is zero or negative when nothing but blanks was written.
func (tb *TextBuffer) SpanLength(start int) int {
	return tb.utf16Offset - start - tb.TrailingBlankCount()
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return string(tb.buf)
}
