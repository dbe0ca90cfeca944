package model

import "fmt"

// KindAnalysisBase is the badge kind awarded to AnalysisBase subclasses.
const KindAnalysisBase = "AnalysisBase"

// Badge is the capability set every rule set produces. Aggregation and
// rendering only rely on this interface, so new rule sets add a variant
// without touching the reporter.
type Badge interface {
	Kind() string
	Location() Location
	Subject() string
	Label() string
	Warnings() []Warning
	Errors() []Error
	Acquired() bool
	String() string
}

type badgeRecord struct {
	location Location
	subject  string
	warnings []Warning
	errors   []Error
}

func (r *badgeRecord) Location() Location  { return r.location }
func (r *badgeRecord) Subject() string     { return r.subject }
func (r *badgeRecord) Warnings() []Warning { return r.warnings }
func (r *badgeRecord) Errors() []Error     { return r.errors }

// Acquired is true when no blocking error was recorded.
func (r *badgeRecord) Acquired() bool { return len(r.errors) == 0 }

func badgeLabel(kind, subject string) string {
	return fmt.Sprintf("%s badge for %s", kind, subject)
}

func badgeString(b Badge) string {
	return fmt.Sprintf("%s in %s", b.Label(), b.Location())
}

// AnalysisBaseBadge is produced for every class directly inheriting from
// AnalysisBase.
type AnalysisBaseBadge struct {
	badgeRecord
}

// NewAnalysisBaseBadge creates an empty badge for the class declared at where.
func NewAnalysisBaseBadge(where Location, subject string) *AnalysisBaseBadge {
	return &AnalysisBaseBadge{badgeRecord{
		location: where,
		subject:  subject,
		warnings: []Warning{},
		errors:   []Error{},
	}}
}

// Kind returns KindAnalysisBase.
func (b *AnalysisBaseBadge) Kind() string { return KindAnalysisBase }

// Label returns the display label of the badge.
func (b *AnalysisBaseBadge) Label() string { return badgeLabel(b.Kind(), b.subject) }

func (b *AnalysisBaseBadge) String() string { return badgeString(b) }

// AddWarning records a non-blocking finding.
func (b *AnalysisBaseBadge) AddWarning(at Location, title string) {
	b.warnings = append(b.warnings, Warning{Location: at, Title: title})
}

// AddError records a blocking finding.
func (b *AnalysisBaseBadge) AddError(at Location, title string) {
	b.errors = append(b.errors, Error{Location: at, Title: title})
}

// StoredBadge is a badge restored from a report or the result cache. The kind
// travels as data since the rule set that built it is not re-run.
type StoredBadge struct {
	badgeRecord
	kind string
}

// NewStoredBadge rebuilds a badge from persisted fields.
func NewStoredBadge(kind string, where Location, subject string, warnings []Warning, errors []Error) *StoredBadge {
	if warnings == nil {
		warnings = []Warning{}
	}

	if errors == nil {
		errors = []Error{}
	}

	return &StoredBadge{
		badgeRecord: badgeRecord{location: where, subject: subject, warnings: warnings, errors: errors},
		kind:        kind,
	}
}

// Kind returns the persisted badge kind.
func (b *StoredBadge) Kind() string { return b.kind }

// Label returns the display label of the badge.
func (b *StoredBadge) Label() string { return badgeLabel(b.kind, b.subject) }

func (b *StoredBadge) String() string { return badgeString(b) }
