package rules

import (
	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

const analysisBaseName = "AnalysisBase"

// Badge titles emitted by the AnalysisBase rule.
const (
	TitlePrepareArgs     = "_prepare method has unexpected arguments"
	TitleSingleFrameArgs = "_single_frame method has unexpected arguments"
	TitleConcludeArgs    = "_conclude method has unexpected arguments"
	TitleRunOverwritten  = "The analysis class overwrites the run method."
	TitleRunSignature    = "The analysis class overwrites the run method and does not use the prescribed signature."
	TitleNoSingleFrame   = "The class does not define a _single_frame method."
)

var runSignature = []string{"start", "stop", "step", "verbose"}

// AnalysisBase checks direct subclasses of MDAnalysis' AnalysisBase.
// The base is matched by its literal name only; aliases and inherited bases
// are not resolved.
type AnalysisBase struct{}

// Name returns the badge kind produced by the rule.
func (AnalysisBase) Name() string { return m.KindAnalysisBase }

// Evaluate awards one badge per top-level class inheriting from AnalysisBase.
func (AnalysisBase) Evaluate(mod *pyast.Module) []m.Badge {
	badges := []m.Badge{}

	for _, class := range mod.Classes() {
		if !class.HasBase(analysisBaseName) {
			continue
		}

		badges = append(badges, evaluateAnalysis(m.Path(mod.Path), class))
	}

	return badges
}

func evaluateAnalysis(path m.Path, class *pyast.ClassDef) *m.AnalysisBaseBadge {
	// Member findings are reported at the class line, not the method line.
	where := m.Location{Path: path, Line: class.Lineno}
	badge := m.NewAnalysisBaseBadge(where, class.Name)

	hasSingleFrame := false

	for _, method := range class.Methods() {
		switch method.Name {
		case "_prepare":
			if !HasSignature(method.Params, "self") {
				badge.AddWarning(where, TitlePrepareArgs)
			}
		case "_single_frame":
			hasSingleFrame = true

			if !HasSignature(method.Params, "self") {
				badge.AddWarning(where, TitleSingleFrameArgs)
			}
		case "_conclude":
			if !HasSignature(method.Params, "self") {
				badge.AddWarning(where, TitleConcludeArgs)
			}
		case "run":
			if hasRunSignature(method.Params) {
				badge.AddWarning(where, TitleRunOverwritten)
			} else {
				badge.AddError(where, TitleRunSignature)
			}
		}
	}

	if !hasSingleFrame {
		badge.AddError(where, TitleNoSingleFrame)
	}

	return badge
}

// hasRunSignature accepts the prescribed run parameters with or without the
// leading self.
func hasRunSignature(params []string) bool {
	if HasSignature(params, runSignature...) {
		return true
	}

	return len(params) > 0 && params[0] == "self" && HasSignature(params[1:], runSignature...)
}
