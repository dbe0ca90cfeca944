package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/mdalint/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	closed  bool
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{mode: ModeCheck}
	for _, opt := range options {
		opt(cfg)
	}

	var model tea.Model

	switch cfg.mode {
	case ModeList:
		model = newListingModel()
	case ModeView:
		model = newResultsModel(false)
	default:
		model = newResultsModel(true)
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = p.Run()
	}(t.program, t.done)

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p == nil {
		return
	}

	p.Send(msg)
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.program == nil {
		t.closed = true
		return
	}

	t.closed = true
	t.program.Quit()
	<-t.done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// DisplayUpcoming announces how many modules will be checked.
func (t *TUI) DisplayUpcoming(total int) {
	t.ensureStarted()
	t.send(upcomingMsg{count: total})
}

// DisplayModuleChecked reports progress for one module.
func (t *TUI) DisplayModuleChecked(result m.ModuleResult) {
	possible := 0

	for _, b := range result.Badges {
		if !b.Acquired() {
			possible++
		}
	}

	t.send(moduleCheckedMsg{
		path:     string(result.Path),
		badges:   len(result.Badges),
		possible: possible,
		failed:   result.Failed(),
		cached:   result.Cached,
	})
}

// DisplayListing shows modules with their qualifying class counts.
func (t *TUI) DisplayListing(entries []m.ListEntry) error {
	t.ensureStarted()
	t.send(listingMsg{entries: entries})

	return nil
}

// DisplayResults switches to the badge browser.
func (t *TUI) DisplayResults(results []m.ModuleResult) error {
	t.ensureStarted()
	t.send(resultsMsg{results: results})

	return nil
}
