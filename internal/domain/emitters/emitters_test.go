package emitters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/eghc/internal/model"
)

func TestJSString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: `""`},
		{in: "Count: ", want: `"Count: "`},
		{in: `say "hi"`, want: `"say \"hi\""`},
		{in: `C:\dir`, want: `"C:\\dir"`},
		{in: "a\nb\tc", want: `"a\nb\tc"`},
		{in: "</script>", want: `"\u003c/script>"`},
		{in: "\x01", want: `"\u0001"`},
		{in: "Waiting…", want: `"Waiting…"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JSString(tt.in), "input %q", tt.in)
	}
}

func TestWrapWrites(t *testing.T) {
	all := func(string) bool { return true }

	tests := []struct {
		name  string
		text  string
		base  int
		sites []m.WriteSite
		wrap  func(string) bool
		want  string
	}{
		{
			name:  "single assignment",
			text:  "count += 1",
			sites: []m.WriteSite{{Name: "count", Start: 0, End: 10}},
			wrap:  all,
			want:  "$$invalidate_count(count += 1)",
		},
		{
			name:  "nested assignments",
			text:  "a = b = 1",
			sites: []m.WriteSite{{Name: "a", Start: 0, End: 9}, {Name: "b", Start: 4, End: 9}},
			wrap:  all,
			want:  "$$invalidate_a(a = $$invalidate_b(b = 1))",
		},
		{
			name:  "offset sites",
			text:  "() => n++",
			base:  20,
			sites: []m.WriteSite{{Name: "n", Start: 26, End: 29}},
			wrap:  all,
			want:  "() => $$invalidate_n(n++)",
		},
		{
			name:  "sites outside the text are ignored",
			text:  "x = 1",
			sites: []m.WriteSite{{Name: "x", Start: 40, End: 45}},
			wrap:  all,
			want:  "x = 1",
		},
		{
			name:  "non-signals stay unwrapped",
			text:  "tmp = 1; n = 2",
			sites: []m.WriteSite{{Name: "tmp", Start: 0, End: 7}, {Name: "n", Start: 9, End: 14}},
			wrap:  func(name string) bool { return name == "n" },
			want:  "tmp = 1; $$invalidate_n(n = 2)",
		},
		{
			name: "no sites",
			text: "console.log(n)",
			wrap: all,
			want: "console.log(n)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapWrites(tt.text, tt.base, tt.sites, tt.wrap))
		})
	}
}

func TestBranchSelector(t *testing.T) {
	assert.Equal(t, "(a) ? 0 : (b) ? 1 : 2", BranchSelector([]string{"a", "b", ""}))
	assert.Equal(t, "(a) ? 0 : -1", BranchSelector([]string{"a"}))
	assert.Equal(t, "(a) ? 0 : 1", BranchSelector([]string{"a", ""}))
}

func TestGuarded(t *testing.T) {
	stmt := SetText("n4", "b")

	assert.Equal(t, "runtime.setText(n4, String(b));", Guarded(nil, stmt))
	assert.Equal(t, "if ($$block_0_branch === 1) runtime.setText(n4, String(b));",
		Guarded([]BranchRef{{Block: 0, Branch: 1}}, stmt))
	assert.Equal(t, "if ($$block_0_branch === 0 && $$block_2_branch === 1) runtime.setText(n4, String(b));",
		Guarded([]BranchRef{{Block: 0}, {Block: 2, Branch: 1}}, stmt))
}

func TestAttributeValue(t *testing.T) {
	exprJS := func(expr *m.Expr) string { return expr.Source }
	dynamic := func(src string) m.AttrPart {
		return m.AttrPart{Expr: &m.Expr{Source: src}, Dynamic: true}
	}

	tests := []struct {
		name  string
		attr  m.Attr
		scope string
		want  string
	}{
		{name: "static", attr: m.Attr{Name: "id", Parts: []m.AttrPart{{Text: "main"}}}, want: `"main"`},
		{name: "single expression", attr: m.Attr{Name: "value", Parts: []m.AttrPart{dynamic("name")}}, want: "(name)"},
		{
			name: "mixed",
			attr: m.Attr{Name: "title", Parts: []m.AttrPart{{Text: "cost `$` "}, dynamic("price")}},
			want: "`cost \\`$\\` ${price}`",
		},
		{name: "static class gets scope", attr: m.Attr{Name: "class", Parts: []m.AttrPart{{Text: "box"}}}, scope: "egh-1", want: `"box egh-1"`},
		{name: "dynamic class gets scope", attr: m.Attr{Name: "class", Parts: []m.AttrPart{dynamic("kind")}}, scope: "egh-1", want: `(kind) + " egh-1"`},
		{name: "other attributes ignore scope", attr: m.Attr{Name: "id", Parts: []m.AttrPart{{Text: "x"}}}, scope: "egh-1", want: `"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttributeValue(tt.attr, exprJS, tt.scope))
		})
	}
}

func TestRefresh(t *testing.T) {
	tests := []struct {
		name   string
		target m.DependencyTarget
		value  string
		want   string
	}{
		{name: "text", target: m.DependencyTarget{NodeID: 3, Type: m.TargetTextContent}, value: "count", want: "runtime.setText(n3, String(count));"},
		{name: "attribute", target: m.DependencyTarget{NodeID: 2, Type: m.TargetAttribute, Name: "value"}, value: "(name)", want: `runtime.setAttribute(n2, "value", (name));`},
		{name: "structural", target: m.DependencyTarget{NodeID: 1, Type: m.TargetStructural, Block: 4}, want: "$$block_4_update();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Refresh(&tt.target, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Refresh(&m.DependencyTarget{Type: m.TargetEventListener, Name: "click"}, "")
	require.ErrorIs(t, err, ErrNoEmitter)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "n12", Node(12))
	assert.Equal(t, "update_count", Updater("count"))
	assert.Equal(t, "$$invalidate_count", Invalidator("count"))
	assert.Equal(t, "$$reactive_0", Reactive("reactive_0"))
	assert.Equal(t, "$$listener_2", Listener(2))
	assert.Equal(t, `runtime.addEventListener(n7, "click", $$listener_0);`, AddEventListener("n7", "click", Listener(0)))
	assert.Equal(t, `runtime.createElement("div")`, CreateElement("div"))
	assert.Equal(t, `runtime.createText("hi")`, CreateText(StaticText("hi")))
}
