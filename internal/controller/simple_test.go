package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/mdalint/internal/model"
)

func sampleResults() []m.ModuleResult {
	at := func(path m.Path, line uint32) m.Location { return m.Location{Path: path, Line: line} }

	good := m.NewAnalysisBaseBadge(at("pkg/a.py", 4), "RadiusOfGyration")
	good.AddWarning(at("pkg/a.py", 4), "_prepare method has unexpected arguments")

	bad := m.NewAnalysisBaseBadge(at("pkg/b.py", 7), "NoFrames")
	bad.AddError(at("pkg/b.py", 7), "The class does not define a _single_frame method.")

	return []m.ModuleResult{
		{Path: "pkg/a.py", Badges: []m.Badge{good}},
		{Path: "pkg/b.py", Badges: []m.Badge{bad}},
		{
			Path:   "pkg/broken.py",
			Badges: []m.Badge{},
			Errors: []m.Error{{Location: at("pkg/broken.py", 0), Title: "syntax error: line 5: '(' was never closed"}},
		},
	}
}

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func TestSimpleUI_DisplayListing_PrintsTable(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	entries := []m.ListEntry{
		{Path: "pkg/a.py", Classes: 2},
		{Path: "pkg/b.py", Classes: 1},
		{Path: "pkg/broken.py", Failed: true},
	}

	if err := ui.DisplayListing(entries); err != nil {
		t.Fatalf("DisplayListing() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"MODULE",
		"pkg/a.py",
		"pkg/b.py",
		"unreadable",
		"TOTAL MODULES 3",
		"3",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayResults_GroupsAndPartitions(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayResults(sampleResults()); err != nil {
		t.Fatalf("DisplayResults() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"AnalysisBase badges",
		"ACQUIRED",
		"AnalysisBase badge for RadiusOfGyration in pkg/a.py:4",
		"warning:",
		"_prepare method has unexpected arguments",
		"POSSIBLE",
		"AnalysisBase badge for NoFrames in pkg/b.py:7",
		"The class does not define a _single_frame method.",
		"Failed modules",
		"pkg/broken.py",
		"'(' was never closed",
		"ACQUIRED",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	acquiredAt := strings.Index(output, "RadiusOfGyration")
	possibleAt := strings.Index(output, "NoFrames")
	if acquiredAt > possibleAt {
		t.Fatalf("acquired badges should be listed before possible ones\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayResults_Empty(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayResults(nil); err != nil {
		t.Fatalf("DisplayResults() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "badges\n") || strings.Contains(output, "Failed modules") {
		t.Fatalf("unexpected sections for empty results\noutput:\n%s", output)
	}

	if !strings.Contains(output, "MODULES") {
		t.Fatalf("summary table missing\noutput:\n%s", output)
	}
}

func TestSimpleUI_LifecycleIsNoop(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	if err := ui.Start(WithCheckMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayUpcoming(3)
	ui.DisplayModuleChecked(sampleResults()[0])
	ui.Wait()
	ui.Close()

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got:\n%s", buf.String())
	}
}
