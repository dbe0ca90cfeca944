package controller

import (
	"github.com/mattn/go-runewidth"

	"github.com/mouse-blink/mdalint/internal/domain/aggregate"
	m "github.com/mouse-blink/mdalint/internal/model"
)

const ellipsis = "…"

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return runewidth.Truncate(string(res), width, "")
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	if width <= runewidth.StringWidth(ellipsis) {
		return ellipsis
	}

	return runewidth.Truncate(text, width, ellipsis)
}

// badgeItems flattens results into list rows: per badge kind the acquired
// badges, then the possible ones, then modules that could not be analysed.
func badgeItems(results []m.ModuleResult) []badgeItem {
	items := []badgeItem{}

	for _, group := range aggregate.GroupByKind(aggregate.Badges(results)) {
		acquired, possible := aggregate.Partition(group.Badges)

		for _, b := range acquired {
			items = append(items, newBadgeItem(b, statusAcquired))
		}

		for _, b := range possible {
			items = append(items, newBadgeItem(b, statusPossible))
		}
	}

	for _, result := range results {
		if !result.Failed() {
			continue
		}

		item := badgeItem{
			kind:     "module",
			label:    string(result.Path),
			location: m.Location{Path: result.Path}.String(),
			status:   statusFailed,
		}

		for _, e := range result.Errors {
			item.errors = append(item.errors, e.Title)
		}

		items = append(items, item)
	}

	return items
}

func newBadgeItem(b m.Badge, status string) badgeItem {
	item := badgeItem{
		kind:     b.Kind(),
		label:    b.Label(),
		location: b.Location().String(),
		status:   status,
	}

	for _, w := range b.Warnings() {
		item.warnings = append(item.warnings, w.Title)
	}

	for _, e := range b.Errors() {
		item.errors = append(item.errors, e.Title)
	}

	return item
}
