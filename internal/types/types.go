package types

// EntityType is the Bot API discriminant of a message entity.
type EntityType string

// Entity types understood by the converters. Any other value is kept as-is
// and rendered without markup.
const (
	Bold          EntityType = "bold"
	Italic        EntityType = "italic"
	Code          EntityType = "code"
	Pre           EntityType = "pre"
	Strikethrough EntityType = "strikethrough"
	Underline     EntityType = "underline"
	BlockQuote    EntityType = "block_quote"
	URL           EntityType = "url"
	Email         EntityType = "email"
	Phone         EntityType = "phone"
	Spoiler       EntityType = "spoiler"
	Mention       EntityType = "mention"
	TextLink      EntityType = "text_link"
	TextMention   EntityType = "text_mention"
	CustomEmoji   EntityType = "custom_emoji"
)

// Entity is a styled span over a message. Offset and Length are measured in
// UTF-16 code units. Only the payload field matching Type is meaningful.
type Entity struct {
	Type   EntityType
	Offset int
	Length int

	// Language is the optional programming language of a pre entity.
	Language string
	// URL is the destination of a text_link entity.
	URL string
	// UserID is the mentioned user of a text_mention entity.
	UserID int64
	// CustomEmojiID identifies the sticker of a custom_emoji entity.
	CustomEmojiID int64
}

// End returns the UTF-16 offset right after the entity.
func (e Entity) End() int {
	return e.Offset + e.Length
}

// Known reports whether the converters style this entity type.
func (t EntityType) Known() bool {
	switch t {
	case Bold, Italic, Code, Pre, Strikethrough, Underline, BlockQuote,
		URL, Email, Phone, Spoiler, Mention, TextLink, TextMention, CustomEmoji:
		return true
	}
	return false
}

// RenderConfig controls HTML rendering and message preparation.
type RenderConfig struct {
	// AllowProtocolTags renders Telegram-only constructs (tg-spoiler,
	// tg-emoji, tg://user links) instead of their generic fallbacks.
	AllowProtocolTags bool
	// MaxMessageLength is the UTF-16 budget of a single text message.
	MaxMessageLength int
	// MaxCodeBlockLines is the line count above which a pre block is sent
	// as a file instead of inline text.
	MaxCodeBlockLines int
}

// DefaultRenderConfig returns the default render configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		AllowProtocolTags: false,
		MaxMessageLength:  4096,
		MaxCodeBlockLines: 50,
	}
}
