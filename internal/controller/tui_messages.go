package controller

import "time"

// Message types.
type tickMsg time.Time

type componentsMsg struct {
	items []componentItem
}

type buildStartMsg struct {
	total   int
	workers int
}

type buildResultMsg struct {
	id       string
	status   string
	detail   string
	duration time.Duration
}

type buildDoneMsg struct {
	compiled int
	cached   int
	failed   int
}

// List item types.
type componentItem struct {
	id      string
	signals int
	targets int
	failed  bool
	detail  string
}

func (c componentItem) FilterValue() string {
	return c.id
}

// buildItem is one finished component in the build log.
type buildItem struct {
	id     string
	status string
	detail string
}

func (b buildItem) FilterValue() string {
	return b.id + " " + b.status
}
