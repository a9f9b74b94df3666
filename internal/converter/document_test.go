package converter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/riverfjs/tgentities/internal/types"
)

func TestParseDocument(t *testing.T) {
	root, err := ParseDocument(`  <b class="x">a<br>b</b>c  `)
	require.NoError(t, err)
	require.Equal(t, "body", root.Data)

	b := root.FirstChild
	require.Equal(t, html.ElementNode, b.Type)
	require.Equal(t, "b", b.Data)
	require.Equal(t, []html.Attribute{{Key: "class", Val: "x"}}, b.Attr)

	var children []string
	for c := b.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c.Data)
	}
	require.Equal(t, []string{"a", "br", "b"}, children)
	require.Equal(t, "c", b.NextSibling.Data)
}

func TestParseDocument_RawTextElements(t *testing.T) {
	root, err := ParseDocument("<textarea><b>x</b></textarea><i>y</i>")
	require.NoError(t, err)

	ta := root.FirstChild
	require.Equal(t, "textarea", ta.Data)
	require.Equal(t, html.TextNode, ta.FirstChild.Type)
	require.Equal(t, "<b>x</b>", ta.FirstChild.Data)
	require.Nil(t, ta.FirstChild.NextSibling)
	require.Equal(t, "i", ta.NextSibling.Data)

	w := NewTreeWalker()
	w.Walk(root)
	message, entities := w.Result()
	require.Equal(t, "<b>x</b>y", message)
	require.Equal(t, []types.Entity{{Type: types.Italic, Offset: 8, Length: 1}}, entities)
}

func TestParseDocument_Malformed(t *testing.T) {
	cases := []struct {
		in  string
		pos int
		tag string
		err error
	}{
		{in: "<b>test", pos: 7, tag: "b", err: errUnclosed},
		{in: "test</b>", pos: 4, tag: "/b", err: errUnexpectedEnd},
		{in: "<b><i>x</b></i>", pos: 7, tag: "/b", err: errUnexpectedEnd},
		{in: "<b><i>x</i>", pos: 11, tag: "b", err: errUnclosed},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseDocument(tc.in)
			require.ErrorIs(t, err, types.ErrMalformedDocument)
			require.ErrorIs(t, err, tc.err)

			var merr *types.MalformedDocumentError
			require.ErrorAs(t, err, &merr)
			require.Equal(t, tc.pos, merr.Pos)
			require.Equal(t, tc.tag, merr.Tag)
		})
	}
}

func TestParseDocument_EndBr(t *testing.T) {
	root, err := ParseDocument("a</br>b")
	require.NoError(t, err)

	message, _ := Walk(root)
	require.Equal(t, "a\nb", message)
}
