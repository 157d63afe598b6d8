package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/mhoutman/romsort/pkg/models"
)

// JSONFormatter renders plans and reports as JSON for automation.
// PlanSummary and Complete each emit one self-contained document;
// per-move events are buffered into the final report document rather
// than streamed.
type JSONFormatter struct {
	writer io.Writer
	moves  []JSONMoveData
}

// JSONPlanData is the serialized form of a plan.
type JSONPlanData struct {
	ID          string              `json:"id"`
	Root        string              `json:"root"`
	CreatedAt   time.Time           `json:"created_at"`
	Steps       []string            `json:"steps"`
	Directives  []JSONDirectiveData `json:"directives"`
	Stats       JSONPlanStatsData   `json:"stats"`
	UnknownTags []string            `json:"unknown_tags,omitempty"`
}

// JSONDirectiveData is one plan decision.
type JSONDirectiveData struct {
	Path        string `json:"path"`
	Kind        string `json:"kind"`
	BaseTitle   string `json:"base_title"`
	Region      string `json:"region"`
	Special     string `json:"special,omitempty"`
	Destination string `json:"destination"`
	Reason      string `json:"reason,omitempty"`
	Step        string `json:"step,omitempty"`
	SavePath    string `json:"save_path,omitempty"`
}

// JSONPlanStatsData aggregates plan counts.
type JSONPlanStatsData struct {
	Entries       int            `json:"entries"`
	FolderGames   int            `json:"folder_games"`
	Groups        int            `json:"groups"`
	SavesPaired   int            `json:"saves_paired"`
	Moves         int            `json:"moves"`
	ByDestination map[string]int `json:"by_destination"`
	ByRegion      map[string]int `json:"by_region"`
}

// JSONMoveData is one executed relocation.
type JSONMoveData struct {
	Source      string `json:"source"`
	Dest        string `json:"dest"`
	Destination string `json:"destination"`
	Renamed     bool   `json:"renamed,omitempty"`
	SaveDest    string `json:"save_dest,omitempty"`
}

// JSONReportData is the serialized execution report.
type JSONReportData struct {
	PlanID     string          `json:"plan_id"`
	DryRun     bool            `json:"dry_run"`
	Status     string          `json:"status"`
	DurationMs int64           `json:"duration_ms"`
	Moved      int             `json:"moved"`
	Kept       int             `json:"kept"`
	SavesMoved int             `json:"saves_moved"`
	Errored    int             `json:"errored"`
	Moves      []JSONMoveData  `json:"moves,omitempty"`
	Errors     []JSONErrorData `json:"errors,omitempty"`
}

// JSONErrorData is one failed relocation.
type JSONErrorData struct {
	Path    string `json:"path"`
	Dest    string `json:"dest"`
	Message string `json:"message"`
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// PlanSummary emits the full plan as one JSON document.
func (f *JSONFormatter) PlanSummary(p *models.Plan) error {
	data := JSONPlanData{
		ID:          p.ID,
		Root:        p.Root,
		CreatedAt:   p.CreatedAt,
		UnknownTags: p.UnknownTags,
		Stats: JSONPlanStatsData{
			Entries:       p.Stats.Entries,
			FolderGames:   p.Stats.FolderGames,
			Groups:        p.Stats.Groups,
			SavesPaired:   p.Stats.SavesPaired,
			Moves:         p.Stats.Moves,
			ByDestination: make(map[string]int, len(p.Stats.ByDestination)),
			ByRegion:      p.Stats.ByRegion,
		},
	}
	for _, s := range p.Steps {
		data.Steps = append(data.Steps, string(s))
	}
	for kind, n := range p.Stats.ByDestination {
		data.Stats.ByDestination[string(kind)] = n
	}
	for _, d := range p.Directives {
		data.Directives = append(data.Directives, JSONDirectiveData{
			Path:        d.Entry.Path,
			Kind:        string(d.Entry.Kind),
			BaseTitle:   d.Entry.BaseTitle,
			Region:      d.Entry.Region,
			Special:     string(d.Entry.Special),
			Destination: d.Destination.String(),
			Reason:      d.Reason,
			Step:        string(d.Step),
			SavePath:    d.Entry.SavePath,
		})
	}
	return f.encode(data)
}

// ExecutionStart is silent in JSON mode; the report carries everything.
func (f *JSONFormatter) ExecutionStart(totalMoves int, dryRun bool) error {
	return nil
}

// MoveResult buffers the move for the final report document.
func (f *JSONFormatter) MoveResult(res models.MoveResult) error {
	f.moves = append(f.moves, JSONMoveData{
		Source:      res.Source,
		Dest:        res.Dest,
		Destination: res.Destination.String(),
		Renamed:     res.Renamed,
		SaveDest:    res.SaveDest,
	})
	return nil
}

// Complete emits the execution report as one JSON document.
func (f *JSONFormatter) Complete(report *models.Report) error {
	data := JSONReportData{
		PlanID:     report.Plan.ID,
		DryRun:     report.DryRun,
		Status:     string(report.Status),
		DurationMs: report.Duration.Milliseconds(),
		Moved:      report.Stats.Moved,
		Kept:       report.Stats.Kept,
		SavesMoved: report.Stats.SavesMoved,
		Errored:    report.Stats.Errored,
		Moves:      f.moves,
	}
	for _, e := range report.Errors {
		data.Errors = append(data.Errors, JSONErrorData{
			Path:    e.Path,
			Dest:    e.Dest.String(),
			Message: e.Message,
		})
	}
	return f.encode(data)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func (f *JSONFormatter) encode(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
