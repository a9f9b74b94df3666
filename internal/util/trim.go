package util

import (
	"strings"

	"github.com/riverfjs/tgentities/internal/types"
)

// TrimCutset is the set of characters stripped from both ends of a
// converted message.
const TrimCutset = " \t\n\r\x00\x0B"

// TrimMessage strips TrimCutset from both ends of text and shifts and clips
// entities so they keep covering the same characters. Entities left empty
// are dropped.
func TrimMessage(text string, entities []types.Entity) (string, []types.Entity) {
	trimmed := strings.Trim(text, TrimCutset)
	if trimmed == text {
		return text, entities
	}
	lead := len(text) - len(strings.TrimLeft(text, TrimCutset))
	return trimmed, ClipEntities(entities, UTF16Len(text[:lead]), UTF16Len(trimmed))
}

// ClipEntities rebases entities onto the window [start, start+size) of a
// larger text. Parts outside the window are cut off; entities with nothing
// left are dropped.
func ClipEntities(entities []types.Entity, start, size int) []types.Entity {
	var out []types.Entity
	for _, ent := range entities {
		from := max(ent.Offset-start, 0)
		to := min(ent.End()-start, size)
		if to <= from {
			continue
		}
		ent.Offset = from
		ent.Length = to - from
		out = append(out, ent)
	}
	return out
}
