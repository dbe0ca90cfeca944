package adapter

import (
	m "github.com/mouse-blink/mdalint/internal/model"
)

// moduleRecord is the persisted form of a ModuleResult, shared by the YAML
// report store and the msgpack result cache. Diagnostics only keep their line
// since they always belong to the module path.
type moduleRecord struct {
	Schema uint16             `yaml:"-" msgpack:"schema"`
	Path   string             `yaml:"path" msgpack:"path"`
	Hash   string             `yaml:"hash,omitempty" msgpack:"hash"`
	Errors []diagnosticRecord `yaml:"errors,omitempty" msgpack:"errors"`
	Badges []badgeRecord      `yaml:"badges" msgpack:"badges"`
}

type badgeRecord struct {
	Kind     string             `yaml:"kind" msgpack:"kind"`
	Subject  string             `yaml:"subject" msgpack:"subject"`
	Line     uint32             `yaml:"line" msgpack:"line"`
	Acquired bool               `yaml:"acquired" msgpack:"acquired"`
	Warnings []diagnosticRecord `yaml:"warnings,omitempty" msgpack:"warnings"`
	Errors   []diagnosticRecord `yaml:"errors,omitempty" msgpack:"errors"`
}

type diagnosticRecord struct {
	Line  uint32 `yaml:"line" msgpack:"line"`
	Title string `yaml:"title" msgpack:"title"`
}

func toRecord(result m.ModuleResult) moduleRecord {
	rec := moduleRecord{
		Path:   string(result.Path),
		Hash:   result.Hash,
		Badges: make([]badgeRecord, 0, len(result.Badges)),
	}

	for _, e := range result.Errors {
		rec.Errors = append(rec.Errors, diagnosticRecord{Line: e.Location.Line, Title: e.Title})
	}

	for _, b := range result.Badges {
		br := badgeRecord{
			Kind:     b.Kind(),
			Subject:  b.Subject(),
			Line:     b.Location().Line,
			Acquired: b.Acquired(),
		}

		for _, w := range b.Warnings() {
			br.Warnings = append(br.Warnings, diagnosticRecord{Line: w.Location.Line, Title: w.Title})
		}

		for _, e := range b.Errors() {
			br.Errors = append(br.Errors, diagnosticRecord{Line: e.Location.Line, Title: e.Title})
		}

		rec.Badges = append(rec.Badges, br)
	}

	return rec
}

func (rec moduleRecord) toResult() m.ModuleResult {
	path := m.Path(rec.Path)
	at := func(line uint32) m.Location { return m.Location{Path: path, Line: line} }

	result := m.ModuleResult{
		Path:   path,
		Hash:   rec.Hash,
		Badges: make([]m.Badge, 0, len(rec.Badges)),
		Errors: make([]m.Error, 0, len(rec.Errors)),
	}

	for _, e := range rec.Errors {
		result.Errors = append(result.Errors, m.Error{Location: at(e.Line), Title: e.Title})
	}

	for _, br := range rec.Badges {
		warnings := make([]m.Warning, 0, len(br.Warnings))
		for _, w := range br.Warnings {
			warnings = append(warnings, m.Warning{Location: at(w.Line), Title: w.Title})
		}

		errs := make([]m.Error, 0, len(br.Errors))
		for _, e := range br.Errors {
			errs = append(errs, m.Error{Location: at(e.Line), Title: e.Title})
		}

		result.Badges = append(result.Badges, m.NewStoredBadge(br.Kind, at(br.Line), br.Subject, warnings, errs))
	}

	return result
}
