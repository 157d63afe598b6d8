package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/mhoutman/romsort/pkg/models"
)

// ProgressFormatter renders a progress bar while relocations run and
// falls back to the human formatter for the plan and final summary.
type ProgressFormatter struct {
	writer io.Writer
	human  *HumanFormatter
	bar    *pb.ProgressBar
}

// NewProgressFormatter creates a progress-bar formatter writing to w.
func NewProgressFormatter(w io.Writer) *ProgressFormatter {
	return &ProgressFormatter{
		writer: w,
		human:  NewHumanFormatter(w),
	}
}

// PlanSummary delegates to the human rendering.
func (f *ProgressFormatter) PlanSummary(p *models.Plan) error {
	return f.human.PlanSummary(p)
}

// ExecutionStart opens the bar sized to the number of moves.
func (f *ProgressFormatter) ExecutionStart(totalMoves int, dryRun bool) error {
	if err := f.human.ExecutionStart(totalMoves, dryRun); err != nil {
		return err
	}
	f.bar = pb.New(totalMoves)
	f.bar.SetWriter(f.writer)
	f.bar.Start()
	return nil
}

// MoveResult advances the bar by one relocation.
func (f *ProgressFormatter) MoveResult(res models.MoveResult) error {
	if f.bar != nil {
		f.bar.Increment()
	}
	return nil
}

// Complete closes the bar and prints the human summary.
func (f *ProgressFormatter) Complete(report *models.Report) error {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	return f.human.Complete(report)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
