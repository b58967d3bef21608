package cracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// MethodResult is one method's outcome in a benchmark run. Immutable once
// produced; the report only aggregates.
type MethodResult struct {
	Method     string
	Password   string // empty when the method produced no valid guess
	Found      bool   // guess matches the true target
	Elapsed    time.Duration
	Attempts   int64 // classical digest comparisons, or Grover iterations
	Accuracy   float64
	MemAllocMB float64 // heap allocation delta, filled by the runner
}

// Report aggregates method results into uniform rows. Methods that failed
// entirely (nil result) are omitted rather than fabricated.
type Report struct {
	results []*MethodResult
}

func NewReport() *Report {
	return &Report{}
}

// Add appends a method's result. Nil results are skipped so a failed
// hardware run degrades to a missing row.
func (r *Report) Add(res *MethodResult) {
	if res != nil {
		r.results = append(r.results, res)
	}
}

// Header returns the column names shared by table and CSV output.
func (r *Report) Header() []string {
	return []string{"Method", "Result", "Time", "Iterations/Attempts", "Accuracy"}
}

// Rows returns one formatted row per method.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.results))
	for _, res := range r.results {
		result := "—"
		if res.Password != "" {
			result = "'" + res.Password + "'"
		}
		rows = append(rows, []string{
			res.Method,
			result,
			fmt.Sprintf("%.4fs", res.Elapsed.Seconds()),
			strconv.FormatInt(res.Attempts, 10),
			fmt.Sprintf("%.1f%%", res.Accuracy*100),
		})
	}
	return rows
}

// WriteCSV persists the raw (unformatted) results for later analysis.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Method", "Result", "Found", "TimeSec", "Attempts", "Accuracy", "MemAllocMB"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, res := range r.results {
		row := []string{
			res.Method,
			res.Password,
			strconv.FormatBool(res.Found),
			fmt.Sprintf("%.6f", res.Elapsed.Seconds()),
			strconv.FormatInt(res.Attempts, 10),
			fmt.Sprintf("%.4f", res.Accuracy),
			fmt.Sprintf("%.6f", res.MemAllocMB),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}
