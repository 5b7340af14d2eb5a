package model

import "time"

// BuildStatus is the outcome of building one component.
type BuildStatus string

// Build outcomes.
const (
	BuildCompiled BuildStatus = "compiled"
	BuildCached   BuildStatus = "cached"
	BuildFailed   BuildStatus = "failed"
)

// BuildResult reports the outcome of building one component.
type BuildResult struct {
	Source    Source
	Status    BuildStatus
	Artifacts []Path
	Stats     Stats
	Warnings  []Warning
	Err       error
	Duration  time.Duration
}

// ComponentInfo summarizes a component for listing and inspection.
type ComponentInfo struct {
	Source     Source
	ScopeClass string
	Analysis   Analysis
	Template   Template
	Warnings   []Warning
	Err        error
}

// CacheEntry is the persisted form of a compiled component.
type CacheEntry struct {
	Key        string    `yaml:"key"`
	ID         string    `yaml:"id"`
	Code       string    `yaml:"code"`
	CSS        string    `yaml:"css,omitempty"`
	ScopeClass string    `yaml:"scopeClass,omitempty"`
	SourceMap  string    `yaml:"sourceMap,omitempty"`
	Stats      Stats     `yaml:"stats"`
	Warnings   []Warning `yaml:"warnings,omitempty"`
	CreatedAt  time.Time `yaml:"createdAt"`
}
