package tgentities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF16Len(t *testing.T) {
	require.Equal(t, 0, UTF16Len(""))
	require.Equal(t, 5, UTF16Len("hello"))
	require.Equal(t, 2, UTF16Len("你好"))
	require.Equal(t, 4, UTF16Len("A📌B"))
	require.Equal(t, 4, UTF16Len("🇺🇸"))
}

func TestSubstrUTF16(t *testing.T) {
	got, err := SubstrUTF16("a👍a👍", 3, -1)
	require.NoError(t, err)
	require.Equal(t, "a👍", got)

	_, err = SubstrUTF16("test", 3, 2)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSplitUTF16(t *testing.T) {
	got, err := SplitUTF16("🇺🇦🇺🇦", 4)
	require.NoError(t, err)
	require.Equal(t, []string{"🇺🇦", "🇺🇦"}, got)
}

func TestSplitEntities_NoSplitNeeded(t *testing.T) {
	entities := []Entity{{Type: Bold, Offset: 0, Length: 5}}
	result := SplitEntities("hello", entities, 100)
	require.Equal(t, []TextChunk{{Text: "hello", Entities: entities}}, result)
}

func TestSplitEntities_EmptyText(t *testing.T) {
	result := SplitEntities("", nil, 100)
	require.Len(t, result, 1)
	require.Empty(t, result[0].Text)
	require.Empty(t, result[0].Entities)
}

func TestSplitEntities_SplitAtNewline(t *testing.T) {
	result := SplitEntities("aaa\nbbb\nccc", nil, 5)
	require.Equal(t, []string{"aaa\n", "bbb\n", "ccc"}, chunkTexts(result))
}

func TestSplitEntities_EntityFullyInFirstChunk(t *testing.T) {
	result := SplitEntities("bold\nnormal", []Entity{{Type: Bold, Offset: 0, Length: 4}}, 5)
	require.Equal(t, []string{"bold\n", "norma", "l"}, chunkTexts(result))
	require.Equal(t, []Entity{{Type: Bold, Offset: 0, Length: 4}}, result[0].Entities)
	require.Empty(t, result[1].Entities)
	require.Empty(t, result[2].Entities)
}

func TestSplitEntities_EntityAcrossBoundary(t *testing.T) {
	link := Entity{Type: TextLink, Offset: 1, Length: 4, URL: "https://example.com"}
	result := SplitEntities("abcdef", []Entity{link}, 3)
	require.Equal(t, []string{"abc", "def"}, chunkTexts(result))

	first := link
	first.Offset, first.Length = 1, 2
	second := link
	second.Offset, second.Length = 0, 2
	require.Equal(t, []Entity{first}, result[0].Entities)
	require.Equal(t, []Entity{second}, result[1].Entities)
}

func TestSplitEntities_PreservesTotalText(t *testing.T) {
	text := "line1\nline2\nline3\nline4\nline5"
	result := SplitEntities(text, []Entity{{Type: Italic, Offset: 0, Length: 5}}, 12)
	require.Equal(t, text, strings.Join(chunkTexts(result), ""))
	for _, chunk := range result {
		require.LessOrEqual(t, UTF16Len(chunk.Text), 12)
	}
}

func TestSplitEntities_WithEmoji(t *testing.T) {
	result := SplitEntities("📌\n📌\n📌", nil, 4)
	require.Equal(t, []string{"📌\n", "📌\n", "📌"}, chunkTexts(result))
}

func TestSplitEntities_HardSplitNoNewlines(t *testing.T) {
	result := SplitEntities("abcdefghij", nil, 4)
	require.Equal(t, []string{"abcd", "efgh", "ij"}, chunkTexts(result))
}

func TestSplitEntities_NeverSplitsSurrogatePair(t *testing.T) {
	result := SplitEntities("a👍b", nil, 2)
	require.Equal(t, []string{"a", "👍", "b"}, chunkTexts(result))

	// a character wider than the budget still makes progress
	result = SplitEntities("👍👍", nil, 1)
	require.Equal(t, []string{"👍", "👍"}, chunkTexts(result))
}

func TestTrimSpace(t *testing.T) {
	text, entities := TrimSpace("\n  hi *there*  \n", []Entity{{Type: Bold, Offset: 3, Length: 4}})
	require.Equal(t, "hi *there*", text)
	require.Equal(t, []Entity{{Type: Bold, Offset: 0, Length: 4}}, entities)
}

func chunkTexts(chunks []TextChunk) []string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return texts
}
