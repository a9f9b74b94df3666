package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsMatchSentinels(t *testing.T) {
	var err error = &UnclosedError{Kind: KindFence, Pos: 3, Fence: "```"}
	require.ErrorIs(t, err, ErrUnclosed)
	require.NotErrorIs(t, err, ErrUnclosedLink)
	require.Equal(t, "unclosed ``` opened at byte 3", err.Error())

	err = &UnclosedError{Kind: KindMarkers, Pos: 0, Tokens: []string{"[", "*"}}
	require.Equal(t, "unclosed markdown elements [, * (first at byte 0)", err.Error())

	err = fmt.Errorf("wrapped: %w", &UnclosedLinkError{Pos: 7})
	require.ErrorIs(t, err, ErrUnclosedLink)
	var lerr *UnclosedLinkError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 7, lerr.Pos)

	err = &RangeError{Offset: 5, Length: -1, Size: 4}
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, "utf-16 offset 5 out of range [0, 4]", err.Error())

	err = &MalformedDocumentError{Pos: 2, Tag: "b", Err: io.ErrUnexpectedEOF}
	require.ErrorIs(t, err, ErrMalformedDocument)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestConstructKindString(t *testing.T) {
	require.Equal(t, "fence", KindFence.String())
	require.Equal(t, "markers", KindMarkers.String())
}
