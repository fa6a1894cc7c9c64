package extraction

import "smart-task-parser/internal/model"

// Source names the strategy that produced a ParsedTask.
type Source string

const (
	SourceModel Source = "model"
	SourceRules Source = "rules"
)

// FallbackNotice is the informational message surfaced when the rule-based
// extractor stood in for the model-backed one.
const FallbackNotice = "fallback parser used"

// Outcome is the result of one Resolve call.
type Outcome struct {
	Task   model.ParsedTask
	Source Source
	// Reason is why the model-backed attempt failed; nil when it succeeded.
	Reason error
}

// FallbackUsed reports whether the rule-based extractor produced Task.
func (o Outcome) FallbackUsed() bool {
	return o.Source == SourceRules
}

// Notice returns the user-facing notice, or "" when none is due.
func (o Outcome) Notice() string {
	if o.FallbackUsed() {
		return FallbackNotice
	}
	return ""
}
