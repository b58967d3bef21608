package cracker

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() (*MethodResult, *MethodResult) {
	classical := &MethodResult{
		Method:   "Classical",
		Password: "Hi",
		Found:    true,
		Elapsed:  12 * time.Millisecond,
		Attempts: 2055,
		Accuracy: 1.0,
	}
	sim := &MethodResult{
		Method:   "statevector simulator",
		Password: "Hi",
		Found:    true,
		Elapsed:  340 * time.Millisecond,
		Attempts: 48,
		Accuracy: 0.998,
	}
	return classical, sim
}

func TestReportOmitsMissingHardwareRow(t *testing.T) {
	classical, sim := sampleResults()

	report := NewReport()
	report.Add(classical)
	report.Add(sim)
	report.Add(nil) // hardware failed with a transport error

	rows := report.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Classical", rows[0][0])
	assert.Equal(t, "statevector simulator", rows[1][0])
}

func TestReportRowFormatting(t *testing.T) {
	classical, sim := sampleResults()

	report := NewReport()
	report.Add(classical)
	report.Add(sim)
	report.Add(&MethodResult{Method: "IBM ibm_brisbane", Attempts: 48})

	rows := report.Rows()
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Classical", "'Hi'", "0.0120s", "2055", "100.0%"}, rows[0])
	assert.Equal(t, "99.8%", rows[1][4])

	// No valid guess renders as a dash, not an empty cell.
	assert.Equal(t, "—", rows[2][1])
	assert.Equal(t, "0.0%", rows[2][4])
}

func TestReportWriteCSV(t *testing.T) {
	classical, sim := sampleResults()

	report := NewReport()
	report.Add(classical)
	report.Add(sim)

	var sb strings.Builder
	require.NoError(t, report.WriteCSV(&sb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Method,Result,Found,TimeSec,Attempts,Accuracy,MemAllocMB", lines[0])
	assert.Contains(t, lines[1], "Classical,Hi,true")
	assert.Contains(t, lines[2], "statevector simulator,Hi,true")
}
