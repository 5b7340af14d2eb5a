package domain

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/eghc/internal/adapter"
	m "github.com/mouse-blink/eghc/internal/model"
)

func bind(t *testing.T, text string) (m.Template, error) {
	t.Helper()

	binder := NewBinder(adapter.NewTreeSitterScriptAdapter())

	return binder.Bind(context.Background(), m.Section{Text: text, Present: true})
}

func TestBinder_TextInterpolation(t *testing.T) {
	tmpl, err := bind(t, "<p>Hello {name}!</p>")
	require.NoError(t, err)

	assert.Equal(t, 4, tmpl.Nodes)
	require.Len(t, tmpl.Roots, 1)

	p := tmpl.Roots[0]
	assert.Equal(t, "p", p.Tag)
	require.Len(t, p.Children, 3)
	assert.Equal(t, m.NodeText, p.Children[0].Kind)
	assert.Equal(t, "Hello ", p.Children[0].Text)
	assert.Equal(t, m.NodeDynamicText, p.Children[1].Kind)
	assert.Equal(t, "!", p.Children[2].Text)

	want := []*m.DependencyTarget{{
		NodeID:     2,
		Type:       m.TargetTextContent,
		Expression: "name",
		Reads:      []string{"name"},
		Offset:     9,
		Block:      -1,
	}}
	if diff := cmp.Diff(want, tmpl.Targets); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestBinder_Whitespace(t *testing.T) {
	type node struct {
		Kind m.NodeKind
		Tag  string
		Text string
	}

	flatten := func(nodes []*m.TemplateNode) []node {
		out := make([]node, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, node{Kind: n.Kind, Tag: n.Tag, Text: n.Text})
		}

		return out
	}

	space := node{Kind: m.NodeText, Text: " "}
	dynamic := node{Kind: m.NodeDynamicText}

	tests := []struct {
		name     string
		template string
		children func(m.Template) []*m.TemplateNode
		want     []node
	}{
		{
			name:     "between interpolations",
			template: "<p>{first} {last}</p>",
			children: func(tmpl m.Template) []*m.TemplateNode { return tmpl.Roots[0].Children },
			want:     []node{dynamic, space, dynamic},
		},
		{
			name:     "between inline elements collapses",
			template: "<p><b>a</b>\n   <i>b</i></p>",
			children: func(tmpl m.Template) []*m.TemplateNode { return tmpl.Roots[0].Children },
			want:     []node{{Kind: m.NodeElement, Tag: "b"}, space, {Kind: m.NodeElement, Tag: "i"}},
		},
		{
			name:     "between interpolation and inline element",
			template: "<p>{count} <button>+</button></p>",
			children: func(tmpl m.Template) []*m.TemplateNode { return tmpl.Roots[0].Children },
			want:     []node{dynamic, space, {Kind: m.NodeElement, Tag: "button"}},
		},
		{
			name:     "edges of the parent",
			template: "<p>\n  {a}\n</p>",
			children: func(tmpl m.Template) []*m.TemplateNode { return tmpl.Roots[0].Children },
			want:     []node{dynamic},
		},
		{
			name:     "between block elements",
			template: "\n<div></div>\n  <p></p>\n",
			children: func(tmpl m.Template) []*m.TemplateNode { return tmpl.Roots },
			want:     []node{{Kind: m.NodeElement, Tag: "div"}, {Kind: m.NodeElement, Tag: "p"}},
		},
		{
			name:     "before a control block",
			template: "<p>{a} {#if b}x{/if}</p>",
			children: func(tmpl m.Template) []*m.TemplateNode { return tmpl.Roots[0].Children },
			want:     []node{dynamic, {Kind: m.NodeAnchor}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := bind(t, tt.template)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, flatten(tt.children(tmpl))); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBinder_EventBindings(t *testing.T) {
	tests := []struct {
		name     string
		template string
		event    string
		expr     string
		reads    []string
	}{
		{name: "at shorthand", template: "<button @click={increment}>+</button>", event: "click", expr: "increment", reads: []string{"increment"}},
		{name: "on prefix", template: "<input on:input={(e) => value = e.target.value}>", event: "input", expr: "(e) => value = e.target.value", reads: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := bind(t, tt.template)
			require.NoError(t, err)

			require.Len(t, tmpl.Targets, 1)

			target := tmpl.Targets[0]
			assert.Equal(t, m.TargetEventListener, target.Type)
			assert.Equal(t, tt.event, target.Name)
			assert.Equal(t, tt.expr, target.Expression)
			assert.ElementsMatch(t, tt.reads, target.Reads)
			assert.False(t, target.Refreshes())

			attr := tmpl.Roots[0].Attrs[0]
			assert.True(t, attr.Event)
			assert.Equal(t, tt.event, attr.Name)
		})
	}
}

func TestBinder_EventBindingNeedsExpression(t *testing.T) {
	_, err := bind(t, `<button @click="go()">go</button>`)
	require.ErrorIs(t, err, ErrUnsupportedConstruct)
}

func TestBinder_AttributeBindings(t *testing.T) {
	tmpl, err := bind(t, `<li class="item {active ? 'on' : ''}" title={label} id="static">x</li>`)
	require.NoError(t, err)

	require.Len(t, tmpl.Targets, 2)

	class := tmpl.Targets[0]
	assert.Equal(t, m.TargetAttribute, class.Type)
	assert.Equal(t, "class", class.Name)
	assert.Equal(t, "item {active ? 'on' : ''}", class.Expression)
	assert.Equal(t, []string{"active"}, class.Reads)

	title := tmpl.Targets[1]
	assert.Equal(t, "title", title.Name)
	assert.Equal(t, []string{"label"}, title.Reads)

	attrs := tmpl.Roots[0].Attrs
	require.Len(t, attrs, 3)
	assert.True(t, attrs[0].Dynamic())
	assert.False(t, attrs[2].Dynamic())
	assert.Equal(t, "static", attrs[2].StaticValue())
}

func TestBinder_IfBlocks(t *testing.T) {
	tmpl, err := bind(t, "{#if visible}<p>on</p>{:else}<p>off</p>{/if}")
	require.NoError(t, err)

	require.Len(t, tmpl.Roots, 1)

	anchor := tmpl.Roots[0]
	assert.Equal(t, m.NodeAnchor, anchor.Kind)
	assert.Equal(t, 0, anchor.Block)

	require.Len(t, tmpl.Blocks, 1)

	block := tmpl.Blocks[0]
	require.Len(t, block.Branches, 2)
	assert.Equal(t, "visible", block.Branches[0].Condition.Source)
	assert.Nil(t, block.Branches[1].Condition)
	assert.Equal(t, m.NodeID(1), block.Branches[0].Children[0].ID)
	assert.Equal(t, m.NodeID(3), block.Branches[1].Children[0].ID)
	assert.Equal(t, 5, tmpl.Nodes)

	require.Len(t, tmpl.Targets, 1)
	assert.Equal(t, m.TargetStructural, tmpl.Targets[0].Type)
	assert.Equal(t, []string{"visible"}, tmpl.Targets[0].Reads)
	assert.Equal(t, 0, tmpl.Targets[0].Block)
}

func TestBinder_ElseIfAddsStructuralReads(t *testing.T) {
	tmpl, err := bind(t, "<div>{#if a}x{:else if b > limit}y{:else}z{/if}</div>")
	require.NoError(t, err)

	require.Len(t, tmpl.Blocks[0].Branches, 3)
	assert.Equal(t, []string{"a", "b", "limit"}, tmpl.Targets[0].Reads)
}

func TestBinder_NestedBlocks(t *testing.T) {
	tmpl, err := bind(t, "{#if a}<ul>{#if b}<li>{c}</li>{/if}</ul>{/if}")
	require.NoError(t, err)

	require.Len(t, tmpl.Blocks, 2)

	outer := tmpl.Blocks[0].Branches[0].Children
	require.Len(t, outer, 1)
	assert.Equal(t, "ul", outer[0].Tag)
	assert.Equal(t, m.NodeAnchor, outer[0].Children[0].Kind)
	assert.Equal(t, 1, outer[0].Children[0].Block)
}

func TestBinder_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     error
		offset   int
	}{
		{name: "unclosed if", template: "<div>{#if a}<p>x</p></div>", want: ErrUnmatchedControlBlock, offset: 5},
		{name: "stray close", template: "<p>x</p>{/if}", want: ErrUnmatchedControlBlock, offset: 8},
		{name: "stray else", template: "{:else}", want: ErrUnmatchedControlBlock, offset: 0},
		{name: "else after else", template: "{#if a}x{:else}y{:else}z{/if}", want: ErrUnmatchedControlBlock, offset: 16},
		{name: "unsupported each", template: "{#each items as item}{item}{/each}", want: ErrUnsupportedConstruct, offset: 0},
		{name: "unsupported html tag", template: "<p>{@html raw}</p>", want: ErrUnsupportedConstruct, offset: 3},
		{name: "if without condition", template: "{#if}x{/if}", want: ErrUnsupportedConstruct, offset: 0},
		{name: "unterminated expression", template: "<p>{count</p>", want: ErrUnsupportedConstruct, offset: 3},
		{name: "expression syntax", template: "<p>{a +}</p>", want: ErrScriptSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bind(t, tt.template)
			require.ErrorIs(t, err, tt.want)

			if tt.want != ErrScriptSyntax {
				var ce *CompileError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.offset, ce.Offset)
			}
		})
	}
}

func TestBinder_StableNodeIDs(t *testing.T) {
	const text = `<div class="box">
  <h1>{title}</h1>
  {#if open}<p @click={close}>{body}</p>{/if}
  <br>
  <span>{count}</span>
</div>`

	first, err := bind(t, text)
	require.NoError(t, err)

	second, err := bind(t, text)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rebinding changed the template (-first +second):\n%s", diff)
	}

	ids := make([]m.NodeID, 0, len(first.Targets))
	for _, target := range first.Targets {
		ids = append(ids, target.NodeID)
	}

	assert.Equal(t, []m.NodeID{2, 3, 4, 5, 8}, ids)
}

func TestBinder_EmptyTemplate(t *testing.T) {
	tmpl, err := NewBinder(adapter.NewTreeSitterScriptAdapter()).Bind(context.Background(), m.Section{})
	require.NoError(t, err)
	assert.Empty(t, tmpl.Roots)
	assert.Zero(t, tmpl.Nodes)
}
