package controller

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdalint/internal/domain/aggregate"
	m "github.com/mouse-blink/mdalint/internal/model"
)

var (
	acquiredTag = color.New(color.FgGreen, color.Bold)
	possibleTag = color.New(color.FgYellow, color.Bold)
	failedTag   = color.New(color.FgRed, color.Bold)
	warningTag  = color.New(color.FgYellow)
	errorTag    = color.New(color.FgRed)
)

// SimpleUI implements UI with plain text written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayUpcoming is silent in plain mode.
func (s *SimpleUI) DisplayUpcoming(int) {}

// DisplayModuleChecked is silent in plain mode so output stays ordered.
func (s *SimpleUI) DisplayModuleChecked(m.ModuleResult) {}

// DisplayListing prints a table of modules and their qualifying classes.
func (s *SimpleUI) DisplayListing(entries []m.ListEntry) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Classes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	classes := 0

	for _, entry := range entries {
		count := fmt.Sprintf("%d", entry.Classes)
		if entry.Failed {
			count = "unreadable"
		}

		table.Append([]string{string(entry.Path), count})

		classes += entry.Classes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(entries)),
		fmt.Sprintf("%d", classes),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayResults prints badges grouped by kind, acquired before possible,
// followed by failed modules and a summary table.
func (s *SimpleUI) DisplayResults(results []m.ModuleResult) error {
	for _, group := range aggregate.GroupByKind(aggregate.Badges(results)) {
		acquired, possible := aggregate.Partition(group.Badges)

		s.printf("%s badges\n", group.Kind)

		for _, badge := range acquired {
			s.printBadge(acquiredTag.Sprint("ACQUIRED"), badge)
		}

		for _, badge := range possible {
			s.printBadge(possibleTag.Sprint("POSSIBLE"), badge)
		}

		s.printf("\n")
	}

	var failed []m.ModuleResult

	for _, result := range results {
		if result.Failed() {
			failed = append(failed, result)
		}
	}

	if len(failed) > 0 {
		s.printf("Failed modules\n")

		for _, result := range failed {
			s.printf("  %s %s\n", failedTag.Sprint("FAILED"), result.Path)

			for _, e := range result.Errors {
				s.printf("      %s %s\n", errorTag.Sprint("error:"), e.Title)
			}
		}

		s.printf("\n")
	}

	s.printSummary(aggregate.Summarize(results))

	return nil
}

func (s *SimpleUI) printBadge(tag string, badge m.Badge) {
	s.printf("  %s %s\n", tag, badge)

	for _, e := range badge.Errors() {
		s.printf("      %s %s\n", errorTag.Sprint("error:"), e.Title)
	}

	for _, w := range badge.Warnings() {
		s.printf("      %s %s\n", warningTag.Sprint("warning:"), w.Title)
	}
}

func (s *SimpleUI) printSummary(summary aggregate.Summary) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Modules", "Failed", "Badges", "Acquired", "Possible", "Warnings", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.Append([]string{
		fmt.Sprintf("%d", summary.Modules),
		fmt.Sprintf("%d", summary.FailedModules),
		fmt.Sprintf("%d", summary.Badges),
		fmt.Sprintf("%d", summary.Acquired),
		fmt.Sprintf("%d", summary.Possible),
		fmt.Sprintf("%d", summary.Warnings),
		fmt.Sprintf("%d", summary.Errors),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
