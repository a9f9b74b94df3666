package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the concrete error types through errors.Is.
var (
	ErrUnclosed          = errors.New("unclosed construct")
	ErrUnclosedLink      = errors.New("unclosed link")
	ErrOutOfRange        = errors.New("utf-16 range out of bounds")
	ErrMalformedDocument = errors.New("malformed document")
)

// ConstructKind tells which Markdown construct was left open.
type ConstructKind int

const (
	// KindFence is an unterminated ``` or ` code fence.
	KindFence ConstructKind = iota
	// KindMarkers is one or more unmatched inline markers.
	KindMarkers
)

func (k ConstructKind) String() string {
	switch k {
	case KindFence:
		return "fence"
	case KindMarkers:
		return "markers"
	default:
		return "unknown"
	}
}

// UnclosedError reports Markdown input that ended inside a fence or with
// unmatched markers. Pos is a byte offset into the normalized input; for
// markers it is where the first unmatched one was opened.
type UnclosedError struct {
	Kind   ConstructKind
	Pos    int
	Fence  string
	Tokens []string
}

func (e *UnclosedError) Error() string {
	if e.Kind == KindFence {
		return fmt.Sprintf("unclosed %s opened at byte %d", e.Fence, e.Pos)
	}
	return fmt.Sprintf("unclosed markdown elements %s (first at byte %d)", strings.Join(e.Tokens, ", "), e.Pos)
}

func (e *UnclosedError) Is(target error) bool { return target == ErrUnclosed }

// UnclosedLinkError reports a link destination without its closing
// parenthesis. Pos is the byte offset where the destination starts.
type UnclosedLinkError struct {
	Pos int
}

func (e *UnclosedLinkError) Error() string {
	return fmt.Sprintf("unclosed ) opened at byte %d", e.Pos)
}

func (e *UnclosedLinkError) Is(target error) bool { return target == ErrUnclosedLink }

// RangeError reports a UTF-16 offset/length pair outside a string of Size
// code units. A negative Length stands for "to the end".
type RangeError struct {
	Offset int
	Length int
	Size   int
}

func (e *RangeError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("utf-16 offset %d out of range [0, %d]", e.Offset, e.Size)
	}
	return fmt.Sprintf("utf-16 range [%d, %d) out of range [0, %d]", e.Offset, e.Offset+e.Length, e.Size)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// MalformedDocumentError wraps a rejection of HTML input by the tree builder.
type MalformedDocumentError struct {
	Pos int
	Tag string
	Err error
}

func (e *MalformedDocumentError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("malformed document at byte %d: <%s>: %v", e.Pos, e.Tag, e.Err)
	}
	return fmt.Sprintf("malformed document at byte %d: %v", e.Pos, e.Err)
}

func (e *MalformedDocumentError) Is(target error) bool { return target == ErrMalformedDocument }

func (e *MalformedDocumentError) Unwrap() error { return e.Err }
