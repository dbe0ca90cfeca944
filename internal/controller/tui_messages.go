package controller

import (
	m "github.com/mouse-blink/mdalint/internal/model"
)

// Message types.
type upcomingMsg struct {
	count int
}

type moduleCheckedMsg struct {
	path     string
	badges   int
	possible int
	failed   bool
	cached   bool
}

type listingMsg struct {
	entries []m.ListEntry
}

type resultsMsg struct {
	results []m.ModuleResult
}

// List item types.
type moduleItem struct {
	path    string
	classes int
	failed  bool
}

func (i moduleItem) FilterValue() string {
	return i.path
}

// Badge item statuses.
const (
	statusAcquired = "acquired"
	statusPossible = "possible"
	statusFailed   = "failed"
)

type badgeItem struct {
	kind     string
	label    string
	location string
	status   string
	warnings []string
	errors   []string
}

func (i badgeItem) FilterValue() string {
	return i.kind + " " + i.label + " " + i.location + " " + i.status
}
