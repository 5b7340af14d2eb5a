package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	m "github.com/mouse-blink/eghc/internal/model"
)

const (
	scopePrefix   = "egh-"
	scopeHashSize = 8
	globalPrefix  = ":global("
)

// GenerateScopeHash returns the truncated SHA-256 of the component ID.
func GenerateScopeHash(componentID string) string {
	sum := sha256.Sum256([]byte(componentID))

	return hex.EncodeToString(sum[:])[:scopeHashSize]
}

// ScopeClass returns the CSS class applied to every element of a component.
func ScopeClass(componentID string) string {
	return scopePrefix + GenerateScopeHash(componentID)
}

// ProcessStyles scopes the style section of a component.
func ProcessStyles(component m.Component) m.ProcessedStyles {
	scopeClass := ScopeClass(component.ID)

	return m.ProcessedStyles{
		CSS:        ScopeCSS(component.Style.Text, scopeClass),
		ScopeClass: scopeClass,
	}
}

type cssState int

const (
	outsideRule cssState = iota
	insideRule
)

// cssScoper walks a stylesheet line by line. depth counts open braces, and
// ruleDepth is the depth at which the current rule body opened.
type cssScoper struct {
	scopeClass string
	state      cssState
	depth      int
	ruleDepth  int
	out        strings.Builder
}

// ScopeCSS prefixes every top-level selector with the scope class.
func ScopeCSS(css, scopeClass string) string {
	s := &cssScoper{scopeClass: scopeClass}

	lines := strings.Split(css, "\n")
	for i, line := range lines {
		if i > 0 {
			s.out.WriteByte('\n')
		}

		s.line(line)
	}

	return s.out.String()
}

func (s *cssScoper) line(line string) {
	trimmed := strings.TrimSpace(line)

	switch s.state {
	case outsideRule:
		switch {
		case !strings.HasPrefix(trimmed, "@") && strings.Contains(trimmed, "{"):
			s.out.WriteString(s.rewriteSelectorLine(line))
			s.ruleDepth = s.depth + 1
		default:
			s.out.WriteString(line)
			s.ruleDepth = 0
		}
	case insideRule:
		s.out.WriteString(line)
	}

	s.track(trimmed)
}

// track updates the brace depth and the state after a line has been copied.
func (s *cssScoper) track(line string) {
	for _, r := range line {
		switch r {
		case '{':
			s.depth++
			if s.state == outsideRule && s.depth == s.ruleDepth {
				s.state = insideRule
			}
		case '}':
			if s.depth > 0 {
				s.depth--
			}

			if s.state == insideRule && s.depth < s.ruleDepth {
				s.state = outsideRule
			}
		}
	}
}

func (s *cssScoper) rewriteSelectorLine(line string) string {
	brace := strings.IndexByte(line, '{')
	selectorText := line[:brace]
	rest := line[brace:]

	indent := selectorText[:len(selectorText)-len(strings.TrimLeft(selectorText, " \t"))]

	selectors := strings.Split(strings.TrimSpace(selectorText), ",")
	scoped := make([]string, 0, len(selectors))

	for _, selector := range selectors {
		selector = strings.TrimSpace(selector)
		if selector == "" {
			continue
		}

		scoped = append(scoped, s.scopeSelector(selector))
	}

	return indent + strings.Join(scoped, ", ") + " " + rest
}

func (s *cssScoper) scopeSelector(selector string) string {
	if strings.HasPrefix(selector, globalPrefix) {
		inner, tail, found := strings.Cut(strings.TrimPrefix(selector, globalPrefix), ")")
		if !found {
			return selector
		}

		return inner + tail
	}

	return "." + s.scopeClass + " " + selector
}
