// Package advice defines the warning taxonomy shared by the placement and
// rotation checks. Warnings are advisory to the gardener; none of them is
// fatal to the engine.
package advice

// Kind classifies what a Warning is about.
type Kind string

const (
	// KindUnknown flags a vegetable id missing from the catalog.
	KindUnknown Kind = "unknown"
	// KindAvoid flags an antagonistic neighbor.
	KindAvoid Kind = "avoid"
	// KindRotation flags a crop family returning to a bed too soon.
	KindRotation Kind = "rotation"
)

// Severity grades a Warning.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Warning is one advisory finding. VegetableID is the vegetable being
// placed; RelatedID names the conflicting neighbor when there is one, and
// Year the conflicting season for rotation findings.
type Warning struct {
	Kind        Kind     `json:"type"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	VegetableID string   `json:"vegetableId,omitempty"`
	RelatedID   string   `json:"relatedId,omitempty"`
	Year        int      `json:"year,omitempty"`
}

// IsError reports whether w has error severity.
func (w Warning) IsError() bool {
	return w.Severity == SeverityError
}
