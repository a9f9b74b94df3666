// Package parser converts the Markdown dialect of the Bot API into a message
// and its entities.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/tgentities/internal/buffer"
	"github.com/riverfjs/tgentities/internal/types"
	"github.com/riverfjs/tgentities/internal/util"
)

// markerChars are the bytes that interrupt a run of plain text.
const markerChars = "*_~`[]|!\\"

// linkToken is the stack token shared by [ and ![ openers.
const linkToken = "]("

var markerEntity = map[string]types.EntityType{
	"*":  types.Bold,
	"_":  types.Italic,
	"__": types.Underline,
	"~":  types.Strikethrough,
	"||": types.Spoiler,
}

// openMarker is an entry of the open-marker stack.
type openMarker struct {
	token  string
	opener string // source text that opened it, restored when a link fails
	start  int    // UTF-16 offset in the output
	at     int    // byte offset in the output
	src    int    // byte offset in the input
	emits  int    // len(entities) when opened
}

type markdownParser struct {
	src      string
	pos      int
	out      *buffer.TextBuffer
	stack    []openMarker
	entities []types.Entity
}

// ParseMarkdown converts markdown into a message and its entities.
//
// Input is CRLF-normalized and trimmed first; reported byte positions refer
// to that normalized text. Entities are emitted in the order their spans
// close.
func ParseMarkdown(markdown string) (string, []types.Entity, error) {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	p := &markdownParser{
		src: strings.Trim(markdown, util.TrimCutset),
		out: buffer.New(),
	}
	if err := p.run(); err != nil {
		return "", nil, err
	}
	message, entities := util.TrimMessage(p.out.String(), p.entities)
	return message, entities, nil
}

func (p *markdownParser) run() error {
	for p.pos < len(p.src) {
		n := strings.IndexAny(p.src[p.pos:], markerChars)
		if n < 0 {
			p.out.Write(p.src[p.pos:])
			break
		}
		p.out.Write(p.src[p.pos : p.pos+n])
		p.pos += n

		markerPos := p.pos
		c := p.src[p.pos]
		p.pos++
		next := p.peek()

		var token string
		switch c {
		case '\\':
			p.escape()
			continue
		case '`':
			if err := p.fence(); err != nil {
				return err
			}
			continue
		case '_':
			token = "_"
			if next == '_' {
				p.pos++
				token = "__"
			}
		case '|':
			if next != '|' {
				p.out.Write("|")
				continue
			}
			p.pos++
			token = "||"
		case '!':
			if next != '[' {
				p.out.Write("!")
				continue
			}
			p.pos++
			p.push(linkToken, "![", markerPos)
			continue
		case '[':
			p.push(linkToken, "[", markerPos)
			continue
		case ']':
			top, ok := p.top()
			if !ok || top.token != linkToken {
				p.out.Write("]")
				continue
			}
			p.pop()
			if next != '(' {
				p.restoreOpener(top)
				p.out.Write("]")
				continue
			}
			p.pos++
			if err := p.closeLink(top); err != nil {
				return err
			}
			continue
		default:
			token = string(c)
		}

		if top, ok := p.top(); ok && top.token == token {
			p.pop()
			p.closeSpan(top, types.Entity{Type: markerEntity[token]})
			continue
		}
		p.push(token, token, markerPos)
	}

	if len(p.stack) > 0 {
		tokens := make([]string, len(p.stack))
		for i, m := range p.stack {
			tokens[i] = m.opener
		}
		return &types.UnclosedError{Kind: types.KindMarkers, Pos: p.stack[0].src, Tokens: tokens}
	}
	return nil
}

func (p *markdownParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *markdownParser) top() (openMarker, bool) {
	if len(p.stack) == 0 {
		return openMarker{}, false
	}
	return p.stack[len(p.stack)-1], true
}

func (p *markdownParser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *markdownParser) push(token, opener string, src int) {
	p.stack = append(p.stack, openMarker{
		token:  token,
		opener: opener,
		start:  p.out.UTF16Offset(),
		at:     p.out.ByteOffset(),
		src:    src,
		emits:  len(p.entities),
	})
}

// escape copies the character after a backslash verbatim.
func (p *markdownParser) escape() {
	if p.pos >= len(p.src) {
		return
	}
	_, w := utf8.DecodeRuneInString(p.src[p.pos:])
	p.out.Write(p.src[p.pos : p.pos+w])
	p.pos += w
}

// closeSpan records ent over the text written since m was opened, minus
// trailing blanks. Blank-only spans produce nothing.
func (p *markdownParser) closeSpan(m openMarker, ent types.Entity) {
	length := p.out.SpanLength(m.start)
	if length <= 0 {
		return
	}
	ent.Offset = m.start
	ent.Length = length
	p.entities = append(p.entities, ent)
}

// restoreOpener puts back the literal text of a link opener that turned out
// not to start a link, shifting the entities emitted after it.
func (p *markdownParser) restoreOpener(m openMarker) {
	p.out.Insert(m.at, m.opener)
	shift := util.UTF16Len(m.opener)
	for i := m.emits; i < len(p.entities); i++ {
		p.entities[i].Offset += shift
	}
}

// closeLink reads the destination after "](" up to the first unescaped ")"
// and records the entity it resolves to.
func (p *markdownParser) closeLink(m openMarker) error {
	start := p.pos
	seg := p.pos
	var href strings.Builder
	for i := p.pos; i < len(p.src); i++ {
		if p.src[i] != ')' {
			continue
		}
		if p.src[i-1] == '\\' {
			href.WriteString(p.src[seg : i-1])
			seg = i
			continue
		}
		href.WriteString(p.src[seg:i])
		p.pos = i + 1
		p.closeSpan(m, types.LinkEntity(href.String()))
		return nil
	}
	return &types.UnclosedLinkError{Pos: start}
}

// fence handles ` and ``` spans. Their bodies are copied verbatim except
// for escaped fences, and they never nest with other markers.
func (p *markdownParser) fence() error {
	token := "`"
	pre := false
	language := ""
	if p.peek() == '`' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '`' {
		token = "```"
		pre = true
		p.pos += 2
		n := strings.IndexAny(p.src[p.pos:], "\n ")
		if n < 0 {
			n = len(p.src) - p.pos
		}
		language = p.src[p.pos : p.pos+n]
		p.pos += n
		if p.peek() == '\n' {
			p.pos++
		}
	}

	bodyStart := p.pos
	seg := p.pos
	var body strings.Builder
	for {
		n := strings.Index(p.src[seg:], token)
		if n < 0 {
			return &types.UnclosedError{Kind: types.KindFence, Pos: bodyStart, Fence: token}
		}
		at := seg + n
		if p.src[at-1] == '\\' {
			body.WriteString(p.src[seg : at-1])
			body.WriteString(token)
			seg = at + len(token)
			continue
		}
		body.WriteString(p.src[seg:at])
		p.pos = at + len(token)
		break
	}

	text := body.String()
	start := p.out.UTF16Offset()
	p.out.Write(text)
	length := util.UTF16Len(text) - buffer.TrailingBlankCount([]byte(text))
	if length <= 0 {
		return nil
	}
	ent := types.Entity{Type: types.Code, Offset: start, Length: length}
	if pre {
		ent.Type = types.Pre
		ent.Language = language
	}
	p.entities = append(p.entities, ent)
	return nil
}
