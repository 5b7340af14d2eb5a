package adapter

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/eghc/internal/model"
)

func TestTreeSitterScriptAdapter_ParseScript(t *testing.T) {
	source := `import { format as fmt } from "./format.js";
let count = 0, { label } = defaults;
const limit = 10;
function increment() { count += 1; }
$: doubled = count * 2;
$: { total = count + limit; }
export let title = "";
console.log(count);`

	script, err := NewTreeSitterScriptAdapter().ParseScript(context.Background(), source, m.LangJavaScript)
	require.NoError(t, err)

	kinds := make([]m.StmtKind, 0, len(script.Stmts))
	for _, stmt := range script.Stmts {
		kinds = append(kinds, stmt.Kind)
	}

	assert.Equal(t, []m.StmtKind{
		m.StmtImport, m.StmtDeclaration, m.StmtDeclaration, m.StmtDeclaration,
		m.StmtReactive, m.StmtReactive, m.StmtDeclaration, m.StmtOther,
	}, kinds)

	type binding struct {
		Name     string
		Kind     m.DeclKind
		Exported bool
	}

	var got []binding
	for _, b := range script.Bindings() {
		got = append(got, binding{Name: b.Name, Kind: b.Kind, Exported: b.Exported})
	}

	want := []binding{
		{Name: "fmt", Kind: m.DeclImport},
		{Name: "count", Kind: m.DeclLet},
		{Name: "label", Kind: m.DeclLet},
		{Name: "limit", Kind: m.DeclConst},
		{Name: "increment", Kind: m.DeclFunction},
		{Name: "title", Kind: m.DeclLet, Exported: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}

	fn := script.Stmts[3]
	require.Len(t, fn.WriteSites, 1)
	assert.Equal(t, "count", fn.WriteSites[0].Name)
	assert.True(t, fn.WriteSites[0].Deferred)
	assert.Equal(t, "count += 1", source[fn.WriteSites[0].Start:fn.WriteSites[0].End])

	reactive := script.Stmts[4]
	assert.Equal(t, "doubled", reactive.AssignTarget)
	assert.False(t, reactive.Block)
	assert.Equal(t, "doubled = count * 2;", source[reactive.BodyStart:reactive.BodyEnd])
	require.Len(t, reactive.WriteSites, 1)
	assert.False(t, reactive.WriteSites[0].Deferred)

	block := script.Stmts[5]
	assert.True(t, block.Block)
	assert.Empty(t, block.AssignTarget)

	exported := script.Stmts[6]
	assert.True(t, exported.Exported)
	assert.Equal(t, `let title = "";`, source[exported.DeclStart:exported.End])
}

func TestTreeSitterScriptAdapter_ShadowedNames(t *testing.T) {
	source := `function reset(count) { count = 0; let other = 1; other++; }`

	script, err := NewTreeSitterScriptAdapter().ParseScript(context.Background(), source, m.LangJavaScript)
	require.NoError(t, err)
	require.Len(t, script.Stmts, 1)
	assert.Empty(t, script.Stmts[0].WriteSites)
}

func TestTreeSitterScriptAdapter_ParseExpression(t *testing.T) {
	adapter := NewTreeSitterScriptAdapter()

	tests := []struct {
		name   string
		expr   string
		reads  []m.NameRef
		writes []m.WriteSite
	}{
		{
			name:  "binary",
			expr:  "count + 1",
			reads: []m.NameRef{{Name: "count", Offset: 0}},
		},
		{
			name:  "member access reads the object only",
			expr:  "user.name",
			reads: []m.NameRef{{Name: "user", Offset: 0}},
		},
		{
			name:   "arrow with update",
			expr:   "() => n++",
			reads:  []m.NameRef{{Name: "n", Offset: 6}},
			writes: []m.WriteSite{{Name: "n", Start: 6, End: 9, Deferred: true}},
		},
		{
			name:   "arrow parameter is local",
			expr:   "(e) => name = e.target.value",
			writes: []m.WriteSite{{Name: "name", Start: 7, End: 28, Deferred: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := adapter.ParseExpression(context.Background(), tt.expr)
			require.NoError(t, err)

			assert.Equal(t, tt.expr, expr.Source)
			assert.Equal(t, tt.reads, expr.Reads)
			assert.Equal(t, tt.writes, expr.WriteSites)
		})
	}
}

func TestTreeSitterScriptAdapter_SyntaxErrors(t *testing.T) {
	adapter := NewTreeSitterScriptAdapter()

	_, err := adapter.ParseScript(context.Background(), "let = ;", m.LangJavaScript)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Error(), "syntax error at byte")

	_, err = adapter.ParseExpression(context.Background(), "a +")
	require.ErrorAs(t, err, &syntaxErr)
	assert.GreaterOrEqual(t, syntaxErr.Offset, 0)
}

func TestTreeSitterScriptAdapter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTreeSitterScriptAdapter().ParseScript(ctx, "let a = 1;", m.LangJavaScript)
	require.ErrorIs(t, err, context.Canceled)
}
