// Package render serializes a message and its entities back to HTML.
package render

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/riverfjs/tgentities/internal/types"
	"github.com/riverfjs/tgentities/internal/util"
)

// HTML renders message with entities as HTML markup.
//
// Opening tags sharing an offset are emitted in entity order; closing tags
// sharing an offset in reverse entity order, and before any opening tag at
// that offset. Entities are first stably sorted by offset, longer spans
// first, so properly nested entities always produce properly nested tags.
// Empty entities, entity types without a tag mapping, and protocol-specific
// types when allowProtocolTags is false contribute no markup.
//
// An entity reaching outside the message fails with *types.RangeError.
func HTML(message string, entities []types.Entity, allowProtocolTags bool) (string, error) {
	units := util.Encode(message)
	size := len(units)

	sorted := slices.Clone(entities)
	slices.SortStableFunc(sorted, func(a, b types.Entity) int {
		if a.Offset != b.Offset {
			return a.Offset - b.Offset
		}
		return b.Length - a.Length
	})

	opening := make(map[int]string)
	closing := make(map[int]string)
	for _, ent := range sorted {
		if ent.Offset < 0 || ent.Length < 0 || ent.End() > size {
			return "", &types.RangeError{Offset: ent.Offset, Length: ent.Length, Size: size}
		}
		if ent.Length == 0 || !ent.Type.Known() {
			continue
		}
		openTag, closeTag := tags(ent, units, allowProtocolTags)
		opening[ent.Offset] += openTag
		closing[ent.End()] = closeTag + closing[ent.End()]
	}

	offsets := slices.Collect(maps.Keys(opening))
	for off := range closing {
		if _, dup := opening[off]; !dup {
			offsets = append(offsets, off)
		}
	}
	slices.Sort(offsets)

	var sb strings.Builder
	pos := 0
	for _, off := range offsets {
		sb.WriteString(util.EscapeHTML(units.Slice(pos, off)))
		sb.WriteString(closing[off])
		sb.WriteString(opening[off])
		pos = off
	}
	sb.WriteString(util.EscapeHTML(units.Slice(pos, size)))
	return strings.ReplaceAll(sb.String(), "\n", "<br>"), nil
}

// tags returns the opening and closing markup of ent. Hrefs of url, email,
// phone and mention entities derive from the text they cover.
func tags(ent types.Entity, units util.Units, allowProtocolTags bool) (string, string) {
	covered := func(skip int) string {
		return util.EscapeHTML(units.Slice(ent.Offset+skip, ent.End()))
	}
	switch ent.Type {
	case types.Bold:
		return "<b>", "</b>"
	case types.Italic:
		return "<i>", "</i>"
	case types.Code:
		return "<code>", "</code>"
	case types.Pre:
		if ent.Language != "" {
			return `<pre language="` + util.EscapeHTML(ent.Language) + `">`, "</pre>"
		}
		return "<pre>", "</pre>"
	case types.Strikethrough:
		return "<s>", "</s>"
	case types.Underline:
		return "<u>", "</u>"
	case types.BlockQuote:
		return "<blockquote>", "</blockquote>"
	case types.TextLink:
		return `<a href="` + util.EscapeHTML(ent.URL) + `">`, "</a>"
	case types.URL:
		return `<a href="` + covered(0) + `">`, "</a>"
	case types.Email:
		return `<a href="mailto:` + covered(0) + `">`, "</a>"
	case types.Phone:
		return `<a href="phone:` + covered(0) + `">`, "</a>"
	case types.Mention:
		// drop the leading @
		return `<a href="https://t.me/` + covered(1) + `">`, "</a>"
	case types.Spoiler:
		if allowProtocolTags {
			return "<tg-spoiler>", "</tg-spoiler>"
		}
		return `<span class="tg-spoiler">`, "</span>"
	case types.CustomEmoji:
		if allowProtocolTags {
			return `<tg-emoji emoji-id="` + strconv.FormatInt(ent.CustomEmojiID, 10) + `">`, "</tg-emoji>"
		}
	case types.TextMention:
		if allowProtocolTags {
			return `<a href="tg://user?id=` + strconv.FormatInt(ent.UserID, 10) + `">`, "</a>"
		}
	}
	return "", ""
}
