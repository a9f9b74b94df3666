package tgentities

import (
	"unicode/utf8"

	"github.com/riverfjs/tgentities/internal/types"
	"github.com/riverfjs/tgentities/internal/util"
)

// Exported aliases of the entity model.
type (
	Entity     = types.Entity
	EntityType = types.EntityType
)

// Entity types styled by the converters.
const (
	Bold          = types.Bold
	Italic        = types.Italic
	Code          = types.Code
	Pre           = types.Pre
	Strikethrough = types.Strikethrough
	Underline     = types.Underline
	BlockQuote    = types.BlockQuote
	URL           = types.URL
	Email         = types.Email
	Phone         = types.Phone
	Spoiler       = types.Spoiler
	Mention       = types.Mention
	TextLink      = types.TextLink
	TextMention   = types.TextMention
	CustomEmoji   = types.CustomEmoji
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures entity offsets and lengths in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP take 2 UTF-16
// code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// SubstrUTF16 returns length UTF-16 code units of text starting at offset.
// A negative length selects the rest of the text. Out-of-range requests fail
// with *RangeError.
func SubstrUTF16(text string, offset, length int) (string, error) {
	return util.Substr(text, offset, length)
}

// SplitUTF16 cuts text into chunks of at most size UTF-16 code units without
// dividing surrogate pairs.
func SplitUTF16(text string, size int) ([]string, error) {
	return util.Split(text, size)
}

// TextChunk represents a chunk of text with its entities.
type TextChunk struct {
	Text     string
	Entities []Entity
}

// SplitEntities splits (text, entities) into chunks not exceeding
// maxUTF16Len UTF-16 code units.
//
// Chunks end right after a newline whenever one fits; otherwise the text is
// cut at the last character that fits. Entities that span a split boundary
// are clipped into every chunk they overlap.
func SplitEntities(text string, entities []Entity, maxUTF16Len int) []TextChunk {
	if maxUTF16Len <= 0 || UTF16Len(text) <= maxUTF16Len {
		return []TextChunk{{Text: text, Entities: entities}}
	}

	offsets := util.OffsetTable(text)
	var chunks []TextChunk
	for start := 0; start < len(text); {
		end := splitPoint(text, offsets, start, offsets[start]+maxUTF16Len)
		chunks = append(chunks, TextChunk{
			Text:     text[start:end],
			Entities: util.ClipEntities(entities, offsets[start], offsets[end]-offsets[start]),
		})
		start = end
	}
	return chunks
}

// splitPoint returns the byte position where the chunk starting at start
// ends, given the UTF-16 offset limit it must not pass.
func splitPoint(text string, offsets []int, start, limit int) int {
	if offsets[len(text)] <= limit {
		return len(text)
	}

	end := start
	newline := -1
	for i := start; i < len(text); {
		_, w := utf8.DecodeRuneInString(text[i:])
		if offsets[i+w] > limit {
			break
		}
		if text[i] == '\n' {
			newline = i + w
		}
		i += w
		end = i
	}
	if newline > start {
		return newline
	}
	if end == start {
		// a single character wider than the budget
		_, w := utf8.DecodeRuneInString(text[start:])
		end = start + w
	}
	return end
}

// TrimSpace removes leading and trailing whitespace while adjusting entities.
func TrimSpace(text string, entities []Entity) (string, []Entity) {
	return util.TrimMessage(text, entities)
}
