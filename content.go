package tgentities

// ContentType represents the type of content.
type ContentType int

const (
	// ContentTypeText represents a text message.
	ContentTypeText ContentType = iota
	// ContentTypeFile represents a file attachment.
	ContentTypeFile
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeText:
		return "text"
	case ContentTypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// ContentTrace tracks where a piece of content came from.
type ContentTrace struct {
	SourceType string
	// UTF16Start and UTF16End delimit the source span in the parsed message.
	UTF16Start int
	UTF16End   int
	Extra      map[string]any
}

// Content represents a piece of content ready to be sent via Telegram.
type Content interface {
	GetContentType() ContentType
	GetContentTrace() ContentTrace
}

// Text represents a text message segment.
type Text struct {
	Text         string
	Entities     []Entity
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeText.
func (t *Text) GetContentType() ContentType {
	return ContentTypeText
}

// GetContentTrace returns the content trace.
func (t *Text) GetContentTrace() ContentTrace {
	return t.ContentTrace
}

// File represents a pre block sent as a document.
type File struct {
	FileName     string
	FileData     []byte
	Language     string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeFile.
func (f *File) GetContentType() ContentType {
	return ContentTypeFile
}

// GetContentTrace returns the content trace.
func (f *File) GetContentTrace() ContentTrace {
	return f.ContentTrace
}
