// Package emitters provides functions that emit DOM runtime calls and
// rewrite script text for generated components.
package emitters

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/eghc/internal/model"
)

const runtimeNamespace = "runtime"

// ErrNoEmitter is returned for a target kind without an emission rule.
var ErrNoEmitter = errors.New("no emitter for target")

// Call renders a runtime call statement.
func Call(fn string, args ...string) string {
	return runtimeNamespace + "." + fn + "(" + strings.Join(args, ", ") + ");"
}

// Node returns the variable bound to a constructed node.
func Node(id m.NodeID) string {
	return "n" + strconv.Itoa(int(id))
}

// Updater returns the update function of a signal.
func Updater(name string) string {
	return "update_" + name
}

// Invalidator returns the write interceptor of a signal.
func Invalidator(name string) string {
	return "$$invalidate_" + name
}

// Reactive returns the function re-running a reactive statement.
func Reactive(id string) string {
	return "$$" + id
}

// JSString quotes s as a double-quoted JavaScript string literal.
func JSString(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '<':
			b.WriteString(`\u003c`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)

				continue
			}

			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}

type insertion struct {
	pos   int
	open  bool
	span  int
	index int
	text  string
}

// WrapWrites wraps every write site of text whose name satisfies wrap in a
// call to the name's invalidator. base is the offset of text within the
// coordinate space of the sites; sites outside text are ignored. Nested and
// identical ranges nest their calls, so each assignment fires once per
// name and the outer call returns the assigned value.
func WrapWrites(text string, base int, sites []m.WriteSite, wrap func(name string) bool) string {
	var inserts []insertion

	for i, site := range sites {
		start, end := site.Start-base, site.End-base
		if start < 0 || end > len(text) || start >= end || !wrap(site.Name) {
			continue
		}

		inserts = append(inserts,
			insertion{pos: start, open: true, span: end - start, index: i, text: Invalidator(site.Name) + "("},
			insertion{pos: end, open: false, span: end - start, index: i, text: ")"},
		)
	}

	if len(inserts) == 0 {
		return text
	}

	sort.SliceStable(inserts, func(i, j int) bool {
		a, b := inserts[i], inserts[j]
		if a.pos != b.pos {
			return a.pos < b.pos
		}

		if a.open != b.open {
			return !a.open
		}

		if a.open {
			if a.span != b.span {
				return a.span > b.span
			}

			return a.index < b.index
		}

		if a.span != b.span {
			return a.span < b.span
		}

		return a.index > b.index
	})

	var out strings.Builder

	last := 0
	for _, ins := range inserts {
		out.WriteString(text[last:ins.pos])
		out.WriteString(ins.text)
		last = ins.pos
	}

	out.WriteString(text[last:])

	return out.String()
}
