package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// wireEntity is the Bot API MessageEntity object.
type wireEntity struct {
	Type          EntityType `json:"type"`
	Offset        int        `json:"offset"`
	Length        int        `json:"length"`
	URL           string     `json:"url,omitempty"`
	User          *wireUser  `json:"user,omitempty"`
	Language      string     `json:"language,omitempty"`
	CustomEmojiID emojiID    `json:"custom_emoji_id,omitempty"`
}

type wireUser struct {
	ID int64 `json:"id"`
}

// emojiID is sent as a JSON string, since ids exceed the integer range of
// most JSON consumers, and accepted as either a string or a number.
type emojiID int64

func (id emojiID) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(id), 10))
}

func (id *emojiID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("custom_emoji_id: %w", err)
	}
	*id = emojiID(v)
	return nil
}

// MarshalJSON encodes e as a Bot API MessageEntity. Payload fields are
// written only for the entity type they belong to.
func (e Entity) MarshalJSON() ([]byte, error) {
	w := wireEntity{Type: e.Type, Offset: e.Offset, Length: e.Length}
	switch e.Type {
	case TextLink:
		w.URL = e.URL
	case TextMention:
		w.User = &wireUser{ID: e.UserID}
	case Pre:
		w.Language = e.Language
	case CustomEmoji:
		w.CustomEmojiID = emojiID(e.CustomEmojiID)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a Bot API MessageEntity. Unknown types are kept
// with their offset and length.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var w wireEntity
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = Entity{
		Type:          w.Type,
		Offset:        w.Offset,
		Length:        w.Length,
		URL:           w.URL,
		Language:      w.Language,
		CustomEmojiID: int64(w.CustomEmojiID),
	}
	if w.User != nil {
		e.UserID = w.User.ID
	}
	return nil
}
