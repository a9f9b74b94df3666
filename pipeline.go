package tgentities

import (
	"context"
	"slices"
	"strings"

	"github.com/riverfjs/tgentities/internal/util"
)

// Prepare turns markup into Telegram-ready content.
//
// Processing flow:
//  1. Parse the markup (WithMode, Markdown by default). With
//     WithPlainFallback, markup that does not parse is sent as plain text.
//  2. pre blocks longer than Config.MaxCodeBlockLines lines become File
//     contents; a limit of zero or less keeps every block inline.
//  3. The text around them is split into Text contents of at most
//     Config.MaxMessageLength UTF-16 code units.
//
// The result keeps the source order.
func Prepare(ctx context.Context, markup string, opts ...Option) ([]Content, error) {
	options := applyOptions(opts...)
	cfg := options.Config
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = DefaultConfig().MaxMessageLength
	}

	parsed, err := Parse(markup, options.Mode)
	if err != nil {
		if !options.PlainFallback {
			return nil, err
		}
		Logger.Printf("%s parse failed, sending as plain text: %v", options.Mode, err)
		parsed = newEntities(strings.Trim(markup, util.TrimCutset), nil)
	}

	units := util.Encode(parsed.Message)
	result := make([]Content, 0)
	cursor := 0
	for _, block := range extractableBlocks(parsed, units, cfg.MaxCodeBlockLines) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		appendTextChunks(&result, parsed, units, cursor, block.Offset, cfg.MaxMessageLength)

		code := units.Slice(block.Offset, block.End())
		name := util.CodeFileName(code, block.Language)
		Logger.Printf("sending %d-line pre block as %s", lineCount(code), name)
		result = append(result, &File{
			FileName: name,
			FileData: []byte(code),
			Language: block.Language,
			ContentTrace: ContentTrace{
				SourceType: "file",
				UTF16Start: block.Offset,
				UTF16End:   block.End(),
				Extra: map[string]any{
					"language": util.LanguageExt(block.Language),
				},
			},
		})
		cursor = block.End()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	appendTextChunks(&result, parsed, units, cursor, len(units), cfg.MaxMessageLength)
	return result, nil
}

// extractableBlocks returns the pre entities with more than maxLines lines,
// ordered by offset, skipping any that overlap an earlier one.
func extractableBlocks(e Entities, units util.Units, maxLines int) []Entity {
	if maxLines <= 0 {
		return nil
	}
	var blocks []Entity
	for _, ent := range e.Entities {
		if ent.Type != Pre || ent.Length == 0 || ent.End() > len(units) {
			continue
		}
		if lineCount(units.Slice(ent.Offset, ent.End())) > maxLines {
			blocks = append(blocks, ent)
		}
	}
	slices.SortFunc(blocks, func(a, b Entity) int { return a.Offset - b.Offset })

	kept := blocks[:0]
	end := 0
	for _, b := range blocks {
		if b.Offset < end {
			continue
		}
		kept = append(kept, b)
		end = b.End()
	}
	return kept
}

// appendTextChunks appends the message span [from, to) as Text contents,
// dropping surrounding newlines and entities the span does not cover.
func appendTextChunks(result *[]Content, e Entities, units util.Units, from, to, maxLen int) {
	if from >= to {
		return
	}
	text := units.Slice(from, to)
	entities := util.ClipEntities(e.Entities, from, to-from)

	trimmed := strings.Trim(text, "\n")
	if trimmed == "" {
		return
	}
	lead := len(text) - len(strings.TrimLeft(text, "\n"))
	entities = util.ClipEntities(entities, lead, UTF16Len(trimmed))
	from += lead

	for _, chunk := range SplitEntities(trimmed, entities, maxLen) {
		size := UTF16Len(chunk.Text)
		chunkText := strings.Trim(chunk.Text, "\n")
		if chunkText == "" {
			from += size
			continue
		}
		lead := len(chunk.Text) - len(strings.TrimLeft(chunk.Text, "\n"))
		part := newEntities(chunkText, util.ClipEntities(chunk.Entities, lead, UTF16Len(chunkText)))
		*result = append(*result, &Text{
			Text:     part.Message,
			Entities: part.Entities,
			ContentTrace: ContentTrace{
				SourceType: "text",
				UTF16Start: from + lead,
				UTF16End:   from + lead + UTF16Len(chunkText),
			},
		})
		from += size
	}
}

func lineCount(code string) int {
	return strings.Count(strings.TrimRight(code, "\n"), "\n") + 1
}
