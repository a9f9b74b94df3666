package util

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riverfjs/tgentities/internal/types"
)

func TestTrimMessage_Untouched(t *testing.T) {
	ents := []types.Entity{{Type: types.Bold, Offset: 0, Length: 4}}
	text, got := TrimMessage("test", ents)
	require.Equal(t, "test", text)
	require.Equal(t, ents, got)
}

func TestTrimMessage_ShiftsAndClips(t *testing.T) {
	ents := []types.Entity{
		{Type: types.Code, Offset: 0, Length: 3},
		{Type: types.Bold, Offset: 2, Length: 5},
		{Type: types.Italic, Offset: 7, Length: 2},
	}
	// "\t a b \n\x00" -> "a b"
	text, got := TrimMessage("\t a b \n\x00", ents)
	require.Equal(t, "a b", text)
	require.Equal(t, []types.Entity{
		{Type: types.Code, Offset: 0, Length: 1},
		{Type: types.Bold, Offset: 0, Length: 3},
	}, got)
}

func TestTrimMessage_KeepsNonBreakingSpace(t *testing.T) {
	text, _ := TrimMessage("\u00a0x ", nil)
	require.Equal(t, "\u00a0x", text)
}

func TestClipEntities(t *testing.T) {
	ents := []types.Entity{
		{Type: types.Bold, Offset: 0, Length: 10},
		{Type: types.Italic, Offset: 12, Length: 2},
		{Type: types.TextLink, Offset: 3, Length: 2, URL: "https://example.com"},
	}
	got := ClipEntities(ents, 4, 6)
	require.Equal(t, []types.Entity{
		{Type: types.Bold, Offset: 0, Length: 6},
		{Type: types.TextLink, Offset: 0, Length: 1, URL: "https://example.com"},
	}, got)
}
