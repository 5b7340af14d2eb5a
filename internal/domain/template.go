package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/mouse-blink/eghc/internal/adapter"
	m "github.com/mouse-blink/eghc/internal/model"
)

// Placeholders stand in for `{...}` markers while the markup is tokenized.
const (
	placeholderOpen  = '\uE000'
	placeholderClose = '\uE001'
)

// voidElements never have children or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// inlineElements flow with the surrounding text, so whitespace between them
// is significant.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true, "button": true, "cite": true,
	"code": true, "data": true, "del": true, "dfn": true, "em": true, "i": true, "img": true, "input": true,
	"ins": true, "kbd": true, "label": true, "mark": true, "meter": true, "output": true, "progress": true,
	"q": true, "s": true, "samp": true, "select": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "textarea": true, "time": true, "u": true, "var": true, "wbr": true,
}

// Binder turns template markup into a construction tree and the list of
// dependency targets bound to it.
type Binder struct {
	scripts adapter.ScriptAdapter
}

// NewBinder constructs a Binder parsing expressions with scripts.
func NewBinder(scripts adapter.ScriptAdapter) *Binder {
	return &Binder{scripts: scripts}
}

// marker is one `{...}` region of the template. Offsets are absolute.
type marker struct {
	text      string
	offset    int // offset of text
	start     int // offset of the opening brace
	end       int // offset after the closing brace
	procStart int
	procEnd   int
}

type bindFrame struct {
	element *m.TemplateNode
	block   *m.ControlBlock
}

type binding struct {
	ctx     context.Context
	scripts adapter.ScriptAdapter
	base    int
	markers []marker
	tmpl    m.Template
	stack   []bindFrame
	nextID  m.NodeID
	// space is the offset of a whitespace run waiting for an inline
	// sibling, -1 when none is pending.
	space int
}

// Bind tokenizes the template section and assigns node ids in document
// order.
func (b *Binder) Bind(ctx context.Context, section m.Section) (m.Template, error) {
	if !section.Present || section.Text == "" {
		return m.Template{}, nil
	}

	processed, markers, err := extractMarkers(section.Text, section.Offset)
	if err != nil {
		return m.Template{}, err
	}

	state := &binding{ctx: ctx, scripts: b.scripts, base: section.Offset, markers: markers, space: -1}
	if err := state.run(processed); err != nil {
		return m.Template{}, err
	}

	state.tmpl.Nodes = int(state.nextID)

	return state.tmpl, nil
}

// extractMarkers replaces every brace-balanced `{...}` region with a
// placeholder. Quotes inside a marker are honored.
func extractMarkers(text string, base int) (string, []marker, error) {
	var out strings.Builder

	var markers []marker

	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			out.WriteByte(text[i])

			continue
		}

		end, ok := matchBrace(text, i)
		if !ok {
			return "", nil, newCompileError(KindUnsupportedConstruct, base+i, "unterminated expression")
		}

		inner := text[i+1 : end]
		lead := len(inner) - len(strings.TrimLeft(inner, " \t\r\n"))

		procStart := out.Len()
		out.WriteRune(placeholderOpen)
		out.WriteString(strconv.Itoa(len(markers)))
		out.WriteRune(placeholderClose)

		markers = append(markers, marker{
			text:      strings.TrimSpace(inner),
			offset:    base + i + 1 + lead,
			start:     base + i,
			end:       base + end + 1,
			procStart: procStart,
			procEnd:   out.Len(),
		})

		i = end
	}

	return out.String(), markers, nil
}

func matchBrace(text string, open int) (int, bool) {
	depth := 0

	var quote byte

	for i := open; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}

			continue
		}

		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// originalOffset maps an offset in the processed text back to the source.
func (s *binding) originalOffset(proc int) int {
	delta := 0

	for _, mk := range s.markers {
		if mk.procEnd > proc {
			break
		}

		delta += (mk.end - mk.start) - (mk.procEnd - mk.procStart)
	}

	return s.base + proc + delta
}

func (s *binding) run(processed string) error {
	z := html.NewTokenizer(strings.NewReader(processed))
	pos := 0

	for {
		tt := z.Next()
		raw := len(z.Raw())
		offset := s.originalOffset(pos)

		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return s.finish()
			}

			return fmt.Errorf("template tokenize: %w", z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			if err := s.startTag(z, tt == html.SelfClosingTagToken, offset); err != nil {
				return err
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if err := s.endTag(string(name)); err != nil {
				return err
			}
		case html.TextToken:
			if err := s.text(string(z.Text()), offset); err != nil {
				return err
			}
		case html.CommentToken, html.DoctypeToken:
		}

		pos += raw
	}
}

func (s *binding) finish() error {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if block := s.stack[i].block; block != nil {
			return newCompileError(KindUnmatchedControlBlock, block.Offset, "{#if} is never closed")
		}
	}

	return nil
}

func (s *binding) newNode(kind m.NodeKind, offset int) *m.TemplateNode {
	node := &m.TemplateNode{ID: s.nextID, Kind: kind, Offset: offset, Block: -1}
	s.nextID++

	return node
}

func (s *binding) appendNode(node *m.TemplateNode) {
	if len(s.stack) == 0 {
		s.tmpl.Roots = append(s.tmpl.Roots, node)

		return
	}

	top := s.stack[len(s.stack)-1]
	if top.element != nil {
		top.element.Children = append(top.element.Children, node)

		return
	}

	branch := &top.block.Branches[len(top.block.Branches)-1]
	branch.Children = append(branch.Children, node)
}

func (s *binding) startTag(z *html.Tokenizer, selfClosing bool, offset int) error {
	name, hasAttr := z.TagName()

	if inlineElements[string(name)] {
		s.flushSpace()
	} else {
		s.space = -1
	}

	node := s.newNode(m.NodeElement, offset)
	node.Tag = string(name)

	for hasAttr {
		var key, val []byte

		key, val, hasAttr = z.TagAttr()

		attr, err := s.attribute(node, string(key), string(val), offset)
		if err != nil {
			return err
		}

		node.Attrs = append(node.Attrs, attr)
	}

	s.appendNode(node)

	if !selfClosing && !voidElements[node.Tag] {
		s.stack = append(s.stack, bindFrame{element: node})
	}

	return nil
}

func (s *binding) endTag(name string) error {
	s.space = -1

	for i := len(s.stack) - 1; i >= 0; i-- {
		frame := s.stack[i]

		if frame.block != nil {
			if s.openBelow(name, i) {
				return newCompileError(KindUnmatchedControlBlock, frame.block.Offset,
					fmt.Sprintf("</%s> closes an element opened outside the {#if} block", name))
			}

			return nil
		}

		if frame.element.Tag == name {
			s.stack = s.stack[:i]

			return nil
		}
	}

	return nil
}

func (s *binding) openBelow(name string, index int) bool {
	for i := index - 1; i >= 0; i-- {
		if el := s.stack[i].element; el != nil && el.Tag == name {
			return true
		}
	}

	return false
}

type segment struct {
	text   string
	marker int
}

// segments splits text on placeholders. Static runs carry a marker of -1.
func segments(text string) []segment {
	var out []segment

	for len(text) > 0 {
		open := strings.IndexRune(text, placeholderOpen)
		if open < 0 {
			out = append(out, segment{text: text, marker: -1})

			break
		}

		if open > 0 {
			out = append(out, segment{text: text[:open], marker: -1})
		}

		rest := text[open+utf8.RuneLen(placeholderOpen):]
		closeIdx := strings.IndexRune(rest, placeholderClose)
		index, _ := strconv.Atoi(rest[:closeIdx])

		out = append(out, segment{marker: index})
		text = rest[closeIdx+utf8.RuneLen(placeholderClose):]
	}

	return out
}

// text binds one text token. A whitespace-only run is kept as a single
// space only between two inline siblings; next to block elements, control
// blocks or the edges of its parent it is dropped.
func (s *binding) text(text string, offset int) error {
	for _, seg := range segments(text) {
		if seg.marker < 0 {
			if strings.TrimSpace(seg.text) == "" {
				if s.lastInline() {
					s.space = offset
				}

				continue
			}

			s.flushSpace()

			node := s.newNode(m.NodeText, offset)
			node.Text = seg.text
			s.appendNode(node)

			continue
		}

		if err := s.marker(s.markers[seg.marker]); err != nil {
			return err
		}
	}

	return nil
}

func (s *binding) marker(mk marker) error {
	if isControlMarker(mk.text) {
		s.space = -1
	}

	switch {
	case strings.HasPrefix(mk.text, "#if ") || mk.text == "#if":
		return s.openIf(mk)
	case strings.HasPrefix(mk.text, ":else if "):
		return s.elseBranch(mk, strings.TrimSpace(strings.TrimPrefix(mk.text, ":else if ")))
	case mk.text == ":else":
		return s.elseBranch(mk, "")
	case mk.text == "/if":
		return s.closeIf(mk)
	case strings.HasPrefix(mk.text, "#"), strings.HasPrefix(mk.text, ":"), strings.HasPrefix(mk.text, "/"),
		strings.HasPrefix(mk.text, "@"):
		return newCompileError(KindUnsupportedConstruct, mk.start, fmt.Sprintf("{%s}", firstWord(mk.text)))
	}

	expr, err := s.parse(mk.text, mk.offset)
	if err != nil {
		return err
	}

	s.flushSpace()

	node := s.newNode(m.NodeDynamicText, mk.start)
	node.Expr = &expr
	s.appendNode(node)

	s.tmpl.Targets = append(s.tmpl.Targets, &m.DependencyTarget{
		NodeID:     node.ID,
		Type:       m.TargetTextContent,
		Expression: mk.text,
		Reads:      expr.ReadNames(),
		Offset:     mk.start,
		Block:      -1,
	})

	return nil
}

func isControlMarker(text string) bool {
	return strings.HasPrefix(text, "#") || strings.HasPrefix(text, ":") || strings.HasPrefix(text, "/")
}

// siblings returns the children of the innermost open container.
func (s *binding) siblings() []*m.TemplateNode {
	if len(s.stack) == 0 {
		return s.tmpl.Roots
	}

	top := s.stack[len(s.stack)-1]
	if top.element != nil {
		return top.element.Children
	}

	return top.block.Branches[len(top.block.Branches)-1].Children
}

// lastInline reports whether the previous sibling flows inline.
func (s *binding) lastInline() bool {
	children := s.siblings()
	if len(children) == 0 {
		return false
	}

	last := children[len(children)-1]

	switch last.Kind {
	case m.NodeText, m.NodeDynamicText:
		return true
	case m.NodeElement:
		return inlineElements[last.Tag]
	default:
		return false
	}
}

// flushSpace emits the pending whitespace run as a single space node.
func (s *binding) flushSpace() {
	if s.space < 0 {
		return
	}

	node := s.newNode(m.NodeText, s.space)
	node.Text = " "
	s.appendNode(node)

	s.space = -1
}

func firstWord(text string) string {
	if i := strings.IndexAny(text, " \t\n"); i >= 0 {
		return text[:i]
	}

	return text
}

func (s *binding) openIf(mk marker) error {
	condText := strings.TrimSpace(strings.TrimPrefix(mk.text, "#if"))
	if condText == "" {
		return newCompileError(KindUnsupportedConstruct, mk.start, "{#if} without a condition")
	}

	cond, err := s.parse(condText, mk.offset+strings.Index(mk.text, condText))
	if err != nil {
		return err
	}

	anchor := s.newNode(m.NodeAnchor, mk.start)
	block := &m.ControlBlock{
		Index:    len(s.tmpl.Blocks),
		Anchor:   anchor.ID,
		Branches: []m.Branch{{Condition: &cond}},
		Offset:   mk.start,
	}
	anchor.Block = block.Index

	s.appendNode(anchor)
	s.tmpl.Blocks = append(s.tmpl.Blocks, block)
	s.tmpl.Targets = append(s.tmpl.Targets, &m.DependencyTarget{
		NodeID:     anchor.ID,
		Type:       m.TargetStructural,
		Expression: condText,
		Reads:      cond.ReadNames(),
		Offset:     mk.start,
		Block:      block.Index,
	})
	s.stack = append(s.stack, bindFrame{block: block})

	return nil
}

// currentBlock drops elements left open inside the innermost block and
// returns the block frame index, or -1 when no block is open.
func (s *binding) currentBlock() int {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].block != nil {
			return i
		}
	}

	return -1
}

func (s *binding) elseBranch(mk marker, condText string) error {
	index := s.currentBlock()
	if index < 0 {
		return newCompileError(KindUnmatchedControlBlock, mk.start, "{:else} outside of an {#if} block")
	}

	s.stack = s.stack[:index+1]
	block := s.stack[index].block

	if block.Branches[len(block.Branches)-1].Condition == nil {
		return newCompileError(KindUnmatchedControlBlock, mk.start, "{:else} after the final {:else}")
	}

	branch := m.Branch{}

	if condText != "" {
		cond, err := s.parse(condText, mk.offset+strings.Index(mk.text, condText))
		if err != nil {
			return err
		}

		branch.Condition = &cond

		target := s.structuralTarget(block.Index)
		for _, name := range cond.ReadNames() {
			if !containsName(target.Reads, name) {
				target.Reads = append(target.Reads, name)
			}
		}
	}

	block.Branches = append(block.Branches, branch)

	return nil
}

func (s *binding) closeIf(mk marker) error {
	index := s.currentBlock()
	if index < 0 {
		return newCompileError(KindUnmatchedControlBlock, mk.start, "{/if} without a matching {#if}")
	}

	s.stack = s.stack[:index]

	return nil
}

func (s *binding) structuralTarget(block int) *m.DependencyTarget {
	for _, target := range s.tmpl.Targets {
		if target.Type == m.TargetStructural && target.Block == block {
			return target
		}
	}

	return nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

func (s *binding) parse(text string, offset int) (m.Expr, error) {
	expr, err := s.scripts.ParseExpression(s.ctx, text)
	if err != nil {
		var syntaxErr *adapter.SyntaxError
		if errors.As(err, &syntaxErr) {
			return m.Expr{}, &CompileError{
				Kind:   KindScriptSyntaxError,
				Offset: offset + syntaxErr.Offset,
				Msg:    syntaxErr.Message,
			}
		}

		return m.Expr{}, fmt.Errorf("parse template expression %q: %w", text, err)
	}

	return expr, nil
}

// eventName returns the event of an `@event` or `on:event` attribute.
func eventName(key string) (string, bool) {
	if name, ok := strings.CutPrefix(key, "@"); ok {
		return name, true
	}

	return strings.CutPrefix(key, "on:")
}

func (s *binding) attribute(node *m.TemplateNode, key, val string, offset int) (m.Attr, error) {
	attr := m.Attr{Name: key}

	for _, seg := range segments(val) {
		if seg.marker < 0 {
			attr.Parts = append(attr.Parts, m.AttrPart{Text: seg.text})

			continue
		}

		mk := s.markers[seg.marker]
		if strings.HasPrefix(mk.text, "#") || strings.HasPrefix(mk.text, ":") || strings.HasPrefix(mk.text, "/") {
			return m.Attr{}, newCompileError(KindUnsupportedConstruct, mk.start,
				fmt.Sprintf("control block inside attribute %q", key))
		}

		expr, err := s.parse(mk.text, mk.offset)
		if err != nil {
			return m.Attr{}, err
		}

		attr.Parts = append(attr.Parts, m.AttrPart{Expr: &expr, Dynamic: true})
	}

	if event, ok := eventName(key); ok {
		if len(attr.Parts) != 1 || !attr.Parts[0].Dynamic {
			return m.Attr{}, newCompileError(KindUnsupportedConstruct, offset,
				fmt.Sprintf("event binding %q needs a single {handler} expression", key))
		}

		attr.Name = event
		attr.Event = true
		expr := attr.Parts[0].Expr
		s.tmpl.Targets = append(s.tmpl.Targets, &m.DependencyTarget{
			NodeID:     node.ID,
			Type:       m.TargetEventListener,
			Name:       event,
			Expression: expr.Source,
			Reads:      expr.ReadNames(),
			Offset:     s.attrOffset(val, offset),
			Block:      -1,
		})

		return attr, nil
	}

	if !attr.Dynamic() {
		return attr, nil
	}

	var reads []string

	for _, part := range attr.Parts {
		if !part.Dynamic {
			continue
		}

		for _, name := range part.Expr.ReadNames() {
			if !containsName(reads, name) {
				reads = append(reads, name)
			}
		}
	}

	s.tmpl.Targets = append(s.tmpl.Targets, &m.DependencyTarget{
		NodeID:     node.ID,
		Type:       m.TargetAttribute,
		Name:       key,
		Expression: s.restoreMarkers(val),
		Reads:      reads,
		Offset:     s.attrOffset(val, offset),
		Block:      -1,
	})

	return attr, nil
}

// attrOffset returns the source offset of the first marker in an attribute
// value, or the tag offset when there is none.
func (s *binding) attrOffset(val string, fallback int) int {
	for _, seg := range segments(val) {
		if seg.marker >= 0 {
			return s.markers[seg.marker].start
		}
	}

	return fallback
}

// restoreMarkers rebuilds the attribute value as written.
func (s *binding) restoreMarkers(val string) string {
	var b strings.Builder

	for _, seg := range segments(val) {
		if seg.marker < 0 {
			b.WriteString(seg.text)

			continue
		}

		b.WriteString("{" + s.markers[seg.marker].text + "}")
	}

	return b.String()
}
