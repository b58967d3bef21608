package quantum

import "context"

// Distribution maps a measured bitstring (most significant qubit first) to
// its observed count. Counts sum to the shot count used for the run.
type Distribution map[string]int

// Total returns the number of shots recorded in the distribution.
func (d Distribution) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// Executor runs a compiled circuit for a fixed shot count. Callers treat
// the simulator and hardware implementations identically; only the name and
// the wall-clock time they record differ.
type Executor interface {
	Name() string
	Run(ctx context.Context, c *Circuit, shots int) (Distribution, error)
}
