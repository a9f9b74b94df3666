package util

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/riverfjs/tgentities/internal/types"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Invalid UTF-8 counts one unit per bad byte, the width of the U+FFFD that
// Encode substitutes for it.
func UTF16Len(text string) int {
	n := 0
	for i := 0; i < len(text); {
		if text[i] < utf8.RuneSelf {
			n++
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		n += utf16.RuneLen(r)
		i += size
	}
	return n
}

// Units is a string encoded as UTF-16 code units.
type Units []uint16

// Encode converts text to UTF-16. Invalid UTF-8 becomes U+FFFD.
func Encode(text string) Units {
	return utf16.Encode([]rune(text))
}

// Slice decodes the code units in [from, to) back to UTF-8. A boundary that
// cuts a surrogate pair leaves a lone surrogate, which decodes to U+FFFD.
func (u Units) Slice(from, to int) string {
	return string(utf16.Decode(u[from:to]))
}

// ToEnd as a Substr length selects everything after the offset.
const ToEnd = -1

// Substr returns the part of text spanning [offset, offset+length) in
// UTF-16 code units. A negative length means "to the end".
//
// Requests reaching outside the text fail with a *types.RangeError instead
// of being clamped; an offset equal to the length yields "".
func Substr(text string, offset, length int) (string, error) {
	u := Encode(text)
	if offset < 0 || offset > len(u) {
		return "", &types.RangeError{Offset: offset, Length: length, Size: len(u)}
	}
	end := len(u)
	if length >= 0 {
		end = offset + length
		if end > len(u) {
			return "", &types.RangeError{Offset: offset, Length: length, Size: len(u)}
		}
	}
	return u.Slice(offset, end), nil
}

// Split cuts text into consecutive chunks of at most size UTF-16 code units.
// Surrogate pairs are never divided: a pair that does not fit in the current
// chunk starts the next one, and a chunk may exceed size only when a single
// pair is wider than size.
func Split(text string, size int) ([]string, error) {
	if size <= 0 {
		return nil, &types.RangeError{Offset: 0, Length: size, Size: UTF16Len(text)}
	}
	var chunks []string
	start, width := 0, 0
	for i, r := range text {
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if width > 0 && width+w > size {
			chunks = append(chunks, text[start:i])
			start, width = i, 0
		}
		width += w
	}
	if start < len(text) {
		chunks = append(chunks, text[start:])
	}
	return chunks, nil
}

// OffsetTable returns the cumulative UTF-16 offset for every byte position
// of text; table[len(text)] is the total length. Positions inside a
// multi-byte sequence carry the offset of the sequence start.
func OffsetTable(text string) []int {
	table := make([]int, len(text)+1)
	cum := 0
	prev := 0
	for i, r := range text {
		for j := prev; j < i; j++ {
			table[j] = table[prev]
		}
		table[i] = cum
		prev = i
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
	}
	for j := prev + 1; j < len(text); j++ {
		table[j] = table[prev]
	}
	table[len(text)] = cum
	return table
}
