package quantum

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Simulator executes circuits by noiseless statevector evolution and samples
// measurement outcomes from the final amplitudes. Deterministic for a fixed
// seed.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator returns a simulator whose shot sampling uses the given seed.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulator) Name() string {
	return "statevector simulator"
}

// Run evolves the circuit and samples the requested number of shots.
func (s *Simulator) Run(ctx context.Context, c *Circuit, shots int) (Distribution, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	amps, err := Statevector(ctx, c)
	if err != nil {
		return nil, err
	}

	// Cumulative probabilities over basis states.
	cumulative := make([]float64, len(amps))
	running := 0.0
	for i, a := range amps {
		running += real(a)*real(a) + imag(a)*imag(a)
		cumulative[i] = running
	}

	counts := make(Distribution)
	for shot := 0; shot < shots; shot++ {
		r := s.rng.Float64() * running
		idx := sort.SearchFloat64s(cumulative, r)
		if idx >= len(amps) {
			idx = len(amps) - 1
		}
		counts[fmt.Sprintf("%0*b", c.Qubits, idx)]++
	}
	return counts, nil
}

// Statevector evolves the circuit from |0...0> and returns the final
// amplitudes. Basis-state index bit j corresponds to qubit j. Measurement
// gates are ignored; sampling happens separately. The context is checked
// between gates so a cancelled run discards its partial state.
func Statevector(ctx context.Context, c *Circuit) ([]complex128, error) {
	if c.Qubits < 1 || c.Qubits > 30 {
		return nil, fmt.Errorf("cannot simulate %d qubits", c.Qubits)
	}
	amps := make([]complex128, 1<<c.Qubits)
	amps[0] = 1

	for _, g := range c.Gates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		switch g.Name {
		case "h":
			amps = applyH(amps, g.Target)
		case "x":
			applyX(amps, g.Target)
		case "mcx":
			applyMCX(amps, g.Controls, g.Target)
		case "measure":
		default:
			return nil, fmt.Errorf("unknown gate %q", g.Name)
		}
	}
	return amps, nil
}

func applyH(amps []complex128, q int) []complex128 {
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	out := make([]complex128, len(amps))
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			out[i] = factor * (amps[i] + amps[j])
			out[j] = factor * (amps[i] - amps[j])
		}
	}
	return out
}

func applyX(amps []complex128, q int) {
	bit := 1 << q
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}

func applyMCX(amps []complex128, controls []int, target int) {
	ctrlMask := 0
	for _, c := range controls {
		ctrlMask |= 1 << c
	}
	bit := 1 << target
	for i := range amps {
		if i&bit == 0 && i&ctrlMask == ctrlMask {
			j := i | bit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}
