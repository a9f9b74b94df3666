package tgentities

// Mode selects the markup a message is written in.
type Mode string

const (
	// ModeMarkdown is the Bot API Markdown dialect.
	ModeMarkdown Mode = "markdown"
	// ModeHTML is the Bot API HTML subset.
	ModeHTML Mode = "html"
)

// Options holds options for rendering and message preparation.
type Options struct {
	Mode          Mode
	PlainFallback bool
	Config        RenderConfig
}

// Option is a function that configures Options.
type Option func(*Options)

// WithMode sets the markup Prepare parses.
func WithMode(mode Mode) Option {
	return func(opts *Options) {
		opts.Mode = mode
	}
}

// WithPlainFallback makes Prepare send markup that fails to parse as plain
// text instead of returning the error.
func WithPlainFallback(enable bool) Option {
	return func(opts *Options) {
		opts.PlainFallback = enable
	}
}

// WithConfig replaces the whole RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *Options) {
		if config != nil {
			opts.Config = *config
		}
	}
}

// WithProtocolTags sets whether Telegram-only tags (tg-spoiler, tg-emoji,
// tg://user links) are rendered.
func WithProtocolTags(allow bool) Option {
	return func(opts *Options) {
		opts.Config.AllowProtocolTags = allow
	}
}

// WithMaxMessageLength sets the UTF-16 budget of a single text message.
func WithMaxMessageLength(n int) Option {
	return func(opts *Options) {
		opts.Config.MaxMessageLength = n
	}
}

// defaultOptions returns the default options.
func defaultOptions() *Options {
	return &Options{
		Mode:   ModeMarkdown,
		Config: *DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
