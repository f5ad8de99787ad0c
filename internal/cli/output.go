package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/connectfour/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AnalysisResult:
		o.printAnalysis(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AnalysisResult is the outcome of searching a single position
type AnalysisResult struct {
	Position  string            `json:"position"`
	Board     string            `json:"board"`
	Depth     int               `json:"depth"`
	Scores    []model.MoveScore `json:"scores"`
	BestMoves []int             `json:"best_moves"`
	BestScore int               `json:"best_score"`
}

func (o *Output) printAnalysis(a AnalysisResult) {
	fmt.Fprint(o.w, a.Board)
	fmt.Fprintf(o.w, "Position: %s\n", a.Position)
	fmt.Fprintf(o.w, "Depth: %d\n", a.Depth)
	fmt.Fprintln(o.w, "Scores:")
	for _, s := range a.Scores {
		fmt.Fprintf(o.w, "  column %d: %d\n", s.Column, s.Score)
	}
	best := make([]string, len(a.BestMoves))
	for i, col := range a.BestMoves {
		best[i] = fmt.Sprint(col)
	}
	fmt.Fprintf(o.w, "Best: %s (score %d)\n", strings.Join(best, ", "), a.BestScore)
}
