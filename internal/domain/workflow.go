package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/mdalint/internal/adapter"
	"github.com/mouse-blink/mdalint/internal/controller"
	"github.com/mouse-blink/mdalint/internal/domain/aggregate"
	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

var (
	// ErrPossibleBadges is returned by Check when FailOnPossible is set and at
	// least one badge carries an error.
	ErrPossibleBadges = errors.New("possible badges found")
	// ErrNoReports is returned by View when the reports directory holds nothing.
	ErrNoReports = errors.New("no reports found")
)

// CheckArgs configures a lint run.
type CheckArgs struct {
	Paths          []m.Path
	Exclude        []string
	Workers        int
	Reports        m.Path
	UseCache       bool
	FailOnPossible bool
}

// ListArgs configures a module listing.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Workers int
}

// ViewArgs configures the display of stored reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	pyAdapter   adapter.PythonFileAdapter
	reportStore adapter.ReportStore
	cache       adapter.ResultCache
	ui          controller.UI
	linter      Linter
}

// NewWorkflow creates a Workflow from its collaborators. cache may be nil to
// disable result caching altogether.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	pyAdapter adapter.PythonFileAdapter,
	reportStore adapter.ReportStore,
	cache adapter.ResultCache,
	ui controller.UI,
	linter Linter,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		pyAdapter:   pyAdapter,
		reportStore: reportStore,
		cache:       cache,
		ui:          ui,
		linter:      linter,
	}
}

// Check lints every module below args.Paths and displays the badges.
// Modules that cannot be read or parsed are reported, never fatal.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.ui.Start(controller.WithCheckMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	sources, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("collect modules: %w", err)
	}

	w.ui.DisplayUpcoming(len(sources))

	results, err := w.lintAll(ctx, sources, args.Workers, args.UseCache, true)
	if err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, results); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		slog.Debug("reports saved", "dir", args.Reports, "modules", len(results))
	}

	if err := w.ui.DisplayResults(results); err != nil {
		return err
	}

	w.ui.Wait()

	if args.FailOnPossible && aggregate.Summarize(results).Possible > 0 {
		return ErrPossibleBadges
	}

	return nil
}

// List shows every module below args.Paths with its number of qualifying
// classes.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	sources, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("collect modules: %w", err)
	}

	results, err := w.lintAll(ctx, sources, args.Workers, false, false)
	if err != nil {
		return err
	}

	entries := make([]m.ListEntry, 0, len(results))
	for _, result := range results {
		entries = append(entries, m.ListEntry{
			Path:    result.Path,
			Classes: len(result.Badges),
			Failed:  result.Failed(),
		})
	}

	if err := w.ui.DisplayListing(entries); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// View displays the reports saved by a previous Check.
func (w *workflow) View(args ViewArgs) error {
	results, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
		}

		return fmt.Errorf("load reports: %w", err)
	}

	if len(results) == 0 {
		return fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayResults(results); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// lintAll lints sources on a bounded worker pool. Results keep the order of
// sources; each worker only writes its own slot.
func (w *workflow) lintAll(ctx context.Context, sources []m.Source, workers int, useCache, progress bool) ([]m.ModuleResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]m.ModuleResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, source := range sources {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = w.lintSource(source, useCache)

			if progress {
				w.ui.DisplayModuleChecked(results[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (w *workflow) lintSource(source m.Source, useCache bool) m.ModuleResult {
	useCache = useCache && w.cache != nil

	if useCache {
		cached, ok, err := w.cache.Get(source)
		if err != nil {
			slog.Debug("cache lookup failed", "path", source.Origin, "error", err)
		}

		if ok {
			cached.Cached = true
			slog.Debug("module checked", "path", source.Origin, "badges", len(cached.Badges), "cached", true)

			return cached
		}
	}

	result := w.lintModule(source)

	if useCache && !result.Failed() {
		if err := w.cache.Put(source, result); err != nil {
			slog.Debug("cache store failed", "path", source.Origin, "error", err)
		}
	}

	slog.Debug("module checked", "path", source.Origin, "badges", len(result.Badges), "cached", false)

	return result
}

// lintModule turns load failures into a module error at line 0.
func (w *workflow) lintModule(source m.Source) m.ModuleResult {
	result := m.ModuleResult{
		Path:   source.Origin,
		Hash:   source.Hash,
		Badges: []m.Badge{},
	}

	mod, err := w.loadModule(source.Origin)
	if err != nil {
		result.Errors = []m.Error{{Location: m.Location{Path: source.Origin}, Title: err.Error()}}
		return result
	}

	result.Badges = w.linter.Lint(mod)

	return result
}

func (w *workflow) loadModule(path m.Path) (*pyast.Module, error) {
	src, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read module: %w", err)
	}

	mod, err := w.pyAdapter.Parse(path, src)
	if err != nil {
		return nil, fmt.Errorf("syntax error: %w", err)
	}

	return mod, nil
}
