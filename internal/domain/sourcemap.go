package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

const sourceMapVersion = 3

// SourceMap is a version 3 source map.
type SourceMap struct {
	Version        int       `json:"version"`
	File           string    `json:"file"`
	SourceRoot     string    `json:"sourceRoot"`
	Sources        []string  `json:"sources"`
	SourcesContent []*string `json:"sourcesContent"`
	Mappings       string    `json:"mappings"`
}

type mapSegment struct {
	col0        int
	sourceURL   string
	sourceLine0 int
	sourceCol0  int
}

// SourceMapGenerator accumulates mappings line by line in output order.
type SourceMapGenerator struct {
	file           string
	sourcesContent map[string]*string
	lines          [][]mapSegment
	lastCol0       int
	hasMappings    bool
}

// NewSourceMapGenerator creates a generator for the generated file name.
func NewSourceMapGenerator(file string) *SourceMapGenerator {
	return &SourceMapGenerator{
		file:           file,
		sourcesContent: make(map[string]*string),
	}
}

// AddSource registers a source file. A nil content is emitted as null.
func (g *SourceMapGenerator) AddSource(url string, content *string) *SourceMapGenerator {
	if _, exists := g.sourcesContent[url]; !exists {
		g.sourcesContent[url] = content
	}

	return g
}

// AddLine starts a new generated line.
func (g *SourceMapGenerator) AddLine() *SourceMapGenerator {
	g.lines = append(g.lines, nil)
	g.lastCol0 = 0

	return g
}

// AddMapping maps column col0 of the current line to a source location.
func (g *SourceMapGenerator) AddMapping(col0 int, sourceURL string, sourceLine0, sourceCol0 int) error {
	if len(g.lines) == 0 {
		return errors.New("a line must be added before mappings can be added")
	}

	if _, exists := g.sourcesContent[sourceURL]; !exists {
		return fmt.Errorf("unknown source file %q", sourceURL)
	}

	if col0 < g.lastCol0 {
		return errors.New("mapping should be added in output order")
	}

	g.hasMappings = true
	g.lastCol0 = col0
	current := len(g.lines) - 1
	g.lines[current] = append(g.lines[current], mapSegment{
		col0:        col0,
		sourceURL:   sourceURL,
		sourceLine0: sourceLine0,
		sourceCol0:  sourceCol0,
	})

	return nil
}

// Build returns the source map, or nil when nothing was mapped.
func (g *SourceMapGenerator) Build() *SourceMap {
	if !g.hasMappings {
		return nil
	}

	sources := make([]string, 0, len(g.sourcesContent))
	for url := range g.sourcesContent {
		sources = append(sources, url)
	}

	sort.Strings(sources)

	sourcesIndex := make(map[string]int, len(sources))
	sourcesContent := make([]*string, 0, len(sources))

	for i, url := range sources {
		sourcesIndex[url] = i
		sourcesContent = append(sourcesContent, g.sourcesContent[url])
	}

	lastSourceIndex, lastSourceLine0, lastSourceCol0 := 0, 0, 0
	lineStrs := make([]string, 0, len(g.lines))

	for _, segments := range g.lines {
		lastCol0 := 0
		segStrs := make([]string, 0, len(segments))

		for _, seg := range segments {
			var b strings.Builder

			b.WriteString(toBase64VLQ(seg.col0 - lastCol0))
			lastCol0 = seg.col0

			sourceIndex := sourcesIndex[seg.sourceURL]
			b.WriteString(toBase64VLQ(sourceIndex - lastSourceIndex))
			lastSourceIndex = sourceIndex
			b.WriteString(toBase64VLQ(seg.sourceLine0 - lastSourceLine0))
			lastSourceLine0 = seg.sourceLine0
			b.WriteString(toBase64VLQ(seg.sourceCol0 - lastSourceCol0))
			lastSourceCol0 = seg.sourceCol0

			segStrs = append(segStrs, b.String())
		}

		lineStrs = append(lineStrs, strings.Join(segStrs, ","))
	}

	return &SourceMap{
		Version:        sourceMapVersion,
		File:           g.file,
		Sources:        sources,
		SourcesContent: sourcesContent,
		Mappings:       strings.Join(lineStrs, ";"),
	}
}

// ToJSON encodes the source map. It returns nil when nothing was mapped.
func (g *SourceMapGenerator) ToJSON() ([]byte, error) {
	sourceMap := g.Build()
	if sourceMap == nil {
		return nil, nil
	}

	data, err := json.Marshal(sourceMap)
	if err != nil {
		return nil, fmt.Errorf("encode source map: %w", err)
	}

	return data, nil
}

const b64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func toBase64VLQ(value int) string {
	if value < 0 {
		value = (-value << 1) + 1
	} else {
		value <<= 1
	}

	var b strings.Builder

	for {
		digit := value & 31
		value >>= 5

		if value > 0 {
			digit |= 32
		}

		b.WriteByte(b64Digits[digit])

		if value == 0 {
			return b.String()
		}
	}
}
