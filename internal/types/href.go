package types

import (
	"strconv"
	"strings"
)

// LinkEntity maps a link destination to the entity it denotes. Mention and
// emoji schemes resolve to text_mention and custom_emoji; everything else,
// including scheme matches whose id is not an integer, is a text_link.
// Offset and Length are left zero for the caller to fill in.
func LinkEntity(href string) Entity {
	if id, ok := cutID(href, "mention:", "tg://user?id="); ok {
		return Entity{Type: TextMention, UserID: id}
	}
	if id, ok := cutID(href, "emoji:", "tg://emoji?id="); ok {
		return Entity{Type: CustomEmoji, CustomEmojiID: id}
	}
	return Entity{Type: TextLink, URL: href}
}

func cutID(href string, prefixes ...string) (int64, bool) {
	for _, prefix := range prefixes {
		rest, found := strings.CutPrefix(href, prefix)
		if !found || rest == "" {
			continue
		}
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}
