// Package output renders plans and execution reports for humans and
// machines.
package output

import (
	"github.com/mhoutman/romsort/pkg/models"
)

// Formatter defines the interface for output rendering.
// Implementations: human-readable, JSON, and progress-bar.
type Formatter interface {
	// PlanSummary renders a built plan: directives and statistics.
	PlanSummary(p *models.Plan) error

	// ExecutionStart announces that relocations are about to run.
	ExecutionStart(totalMoves int, dryRun bool) error

	// MoveResult reports one completed (or previewed) relocation.
	MoveResult(res models.MoveResult) error

	// Complete finalizes output with the execution report.
	Complete(report *models.Report) error

	// Name returns the formatter name
	Name() string
}
