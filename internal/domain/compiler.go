package domain

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/mouse-blink/eghc/internal/adapter"
	m "github.com/mouse-blink/eghc/internal/model"
)

// Compiler turns one component source into its generated module.
type Compiler interface {
	// Compile runs the whole pipeline. On error no output is returned.
	Compile(ctx context.Context, in m.Input) (m.Output, error)
	// Analyze runs every step up to code generation.
	Analyze(ctx context.Context, in m.Input) (m.ComponentInfo, error)
}

type compiler struct {
	scripts   adapter.ScriptAdapter
	binder    *Binder
	analyzer  *Analyzer
	generator *Generator
}

// NewCompiler constructs a Compiler parsing scripts and template
// expressions with scripts.
func NewCompiler(scripts adapter.ScriptAdapter) Compiler {
	return &compiler{
		scripts:   scripts,
		binder:    NewBinder(scripts),
		analyzer:  NewAnalyzer(),
		generator: NewGenerator(),
	}
}

// compilation is the front half of the pipeline for one component.
type compilation struct {
	component m.Component
	script    m.Script
	template  m.Template
	analysis  m.Analysis
	warnings  []m.Warning
}

func componentName(in m.Input) string {
	if in.FileName != "" {
		return in.FileName
	}

	return in.ID
}

func (c *compiler) front(ctx context.Context, in m.Input) (compilation, error) {
	component, warnings := ExtractSections(in.ID, in.Source)

	script, err := c.parseScript(ctx, component.Script, component.Lang)
	if err != nil {
		return compilation{}, err
	}

	template, err := c.binder.Bind(ctx, component.Template)
	if err != nil {
		return compilation{}, err
	}

	analysis, err := c.analyzer.Analyze(script, component.Script.Offset, template.Targets)
	if err != nil {
		return compilation{}, err
	}

	return compilation{
		component: component,
		script:    script,
		template:  template,
		analysis:  analysis,
		warnings:  warnings,
	}, nil
}

func (c *compiler) parseScript(ctx context.Context, section m.Section, lang m.ScriptLang) (m.Script, error) {
	if !section.Present || section.Text == "" {
		return m.Script{}, nil
	}

	script, err := c.scripts.ParseScript(ctx, section.Text, lang)
	if err == nil {
		return script, nil
	}

	var syntaxErr *adapter.SyntaxError
	if errors.As(err, &syntaxErr) {
		return m.Script{}, newCompileError(KindScriptSyntaxError, section.Offset+syntaxErr.Offset, syntaxErr.Message)
	}

	var unsupported *adapter.UnsupportedError
	if errors.As(err, &unsupported) {
		return m.Script{}, newCompileError(KindUnsupportedConstruct, section.Offset+unsupported.Offset, unsupported.Construct)
	}

	return m.Script{}, fmt.Errorf("parse script: %w", err)
}

func (c *compiler) Analyze(ctx context.Context, in m.Input) (m.ComponentInfo, error) {
	unit, err := c.front(ctx, in)
	if err != nil {
		return m.ComponentInfo{}, locate(err, componentName(in), in.Source)
	}

	info := m.ComponentInfo{
		Analysis: unit.analysis,
		Template: unit.template,
		Warnings: unit.warnings,
	}

	if unit.component.HasStyle() {
		info.ScopeClass = ScopeClass(in.ID)
	}

	return info, nil
}

func (c *compiler) Compile(ctx context.Context, in m.Input) (m.Output, error) {
	name := componentName(in)

	unit, err := c.front(ctx, in)
	if err != nil {
		return m.Output{}, locate(err, name, in.Source)
	}

	var styles m.ProcessedStyles
	if unit.component.HasStyle() {
		styles = ProcessStyles(unit.component)
	}

	generated, err := c.generator.Generate(GenerateInput{
		Component:  unit.component,
		Script:     unit.script,
		Analysis:   unit.analysis,
		Template:   unit.template,
		ScopeClass: styles.ScopeClass,
		Options:    in.Options,
	})
	if err != nil {
		return m.Output{}, locate(err, name, in.Source)
	}

	out := m.Output{
		Code:       generated.Code,
		CSS:        styles.CSS,
		ScopeClass: styles.ScopeClass,
		Warnings:   unit.warnings,
		Stats: m.Stats{
			Vars:       len(unit.analysis.Vars),
			Statements: len(unit.analysis.Statements),
			Signals:    len(unit.analysis.Signals),
			Targets:    len(unit.template.Targets),
			Nodes:      unit.template.Nodes,
		},
	}

	if in.Options.SourceMaps {
		out.SourceMap, err = sourceMap(name, in.Source, generated.Lines)
		if err != nil {
			return m.Output{}, fmt.Errorf("%s: %w", name, err)
		}
	}

	return out, nil
}

// sourceMap maps the first non-blank column of every generated line with a
// known origin back to the component source.
func sourceMap(name, source string, lines []CodeLine) ([]byte, error) {
	gen := NewSourceMapGenerator(strings.TrimSuffix(path.Base(name), path.Ext(name)) + ".js")
	gen.AddSource(name, &source)

	for _, line := range lines {
		gen.AddLine()

		if line.Origin < 0 || line.Origin > len(source) {
			continue
		}

		srcLine, srcCol := lineColumn(source, line.Origin)
		col := len(line.Text) - len(strings.TrimLeft(line.Text, " "))

		if err := gen.AddMapping(col, name, srcLine-1, srcCol-1); err != nil {
			return nil, fmt.Errorf("source map: %w", err)
		}
	}

	return gen.ToJSON()
}
