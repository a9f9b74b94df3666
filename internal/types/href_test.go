package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkEntity(t *testing.T) {
	cases := []struct {
		href string
		want Entity
	}{
		{"mention:101374607", Entity{Type: TextMention, UserID: 101374607}},
		{"tg://user?id=101374607", Entity{Type: TextMention, UserID: 101374607}},
		{"emoji:5368324170671202286", Entity{Type: CustomEmoji, CustomEmojiID: 5368324170671202286}},
		{"tg://emoji?id=5368324170671202286", Entity{Type: CustomEmoji, CustomEmojiID: 5368324170671202286}},
		{"https://google.com/", Entity{Type: TextLink, URL: "https://google.com/"}},
		{"mention:someone", Entity{Type: TextLink, URL: "mention:someone"}},
		{"emoji:", Entity{Type: TextLink, URL: "emoji:"}},
		{"tg://user?id=1&x=2", Entity{Type: TextLink, URL: "tg://user?id=1&x=2"}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, LinkEntity(tc.href), tc.href)
	}
}

func TestEntityTypeKnown(t *testing.T) {
	require.True(t, Bold.Known())
	require.True(t, CustomEmoji.Known())
	require.False(t, EntityType("bank_card").Known())
	require.False(t, EntityType("hashtag").Known())
}
