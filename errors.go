package tgentities

import "github.com/riverfjs/tgentities/internal/types"

// Error types returned by the converters. Use errors.As to inspect them or
// errors.Is with the matching sentinel.
type (
	UnclosedError          = types.UnclosedError
	UnclosedLinkError      = types.UnclosedLinkError
	RangeError             = types.RangeError
	MalformedDocumentError = types.MalformedDocumentError
	ConstructKind          = types.ConstructKind
)

const (
	KindFence   = types.KindFence
	KindMarkers = types.KindMarkers
)

var (
	ErrUnclosed          = types.ErrUnclosed
	ErrUnclosedLink      = types.ErrUnclosedLink
	ErrOutOfRange        = types.ErrOutOfRange
	ErrMalformedDocument = types.ErrMalformedDocument
)
