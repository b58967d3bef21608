package quantum

import (
	"errors"
	"fmt"
	"math"
)

var ErrOracleConstruction = errors.New("oracle target or qubit count out of bounds")

// OptimalIterations returns the Grover iteration count for exactly one
// marked item in a space of n states: trunc(pi/4 * sqrt(n)). Zero is a
// valid degenerate count (measure the uniform superposition immediately).
func OptimalIterations(n uint64) int {
	return int(math.Pi / 4 * math.Sqrt(float64(n)))
}

// Oracle returns the gate sequence that flips the phase of the single basis
// state |target> over the given qubit count and acts as identity on every
// other basis state, padding states included. The same (target, qubits)
// always yields the identical sequence.
//
// Construction: X on every qubit whose target bit is 0 maps |target> to the
// all-ones state, H/MCX/H on the top qubit applies a multi-controlled Z
// there, and the X layer is undone.
func Oracle(target uint64, qubits int) ([]Gate, error) {
	if qubits < 1 || qubits > 62 {
		return nil, fmt.Errorf("%w: %d qubits", ErrOracleConstruction, qubits)
	}
	if target >= uint64(1)<<qubits {
		return nil, fmt.Errorf("%w: target %d needs more than %d qubits", ErrOracleConstruction, target, qubits)
	}

	gates := make([]Gate, 0, 2*qubits+3)
	for q := 0; q < qubits; q++ {
		if target&(uint64(1)<<q) == 0 {
			gates = append(gates, Gate{Name: "x", Target: q})
		}
	}
	gates = append(gates, mcz(qubits)...)
	for q := 0; q < qubits; q++ {
		if target&(uint64(1)<<q) == 0 {
			gates = append(gates, Gate{Name: "x", Target: q})
		}
	}
	return gates, nil
}

// Diffusion returns the inversion-about-average gate sequence: a reflection
// about the uniform superposition state.
func Diffusion(qubits int) []Gate {
	gates := make([]Gate, 0, 4*qubits+3)
	for q := 0; q < qubits; q++ {
		gates = append(gates, Gate{Name: "h", Target: q}, Gate{Name: "x", Target: q})
	}
	gates = append(gates, mcz(qubits)...)
	for q := 0; q < qubits; q++ {
		gates = append(gates, Gate{Name: "x", Target: q}, Gate{Name: "h", Target: q})
	}
	return gates
}

// mcz phase-flips the all-ones state: H on the top qubit, X controlled on
// the rest, H again. With one qubit the control list is empty and the
// sandwich reduces to a plain Z.
func mcz(qubits int) []Gate {
	controls := make([]int, 0, qubits-1)
	for q := 0; q < qubits-1; q++ {
		controls = append(controls, q)
	}
	return []Gate{
		{Name: "h", Target: qubits - 1},
		{Name: "mcx", Target: qubits - 1, Controls: controls},
		{Name: "h", Target: qubits - 1},
	}
}

// BuildGroverCircuit assembles the full search circuit: uniform
// superposition, then `iterations` repetitions of oracle + diffusion, then
// measurement of every qubit. The caller supplies the iteration count; with
// zero iterations the circuit is a uniform random guess.
func BuildGroverCircuit(target uint64, qubits, iterations int) (*Circuit, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: negative iteration count %d", ErrOracleConstruction, iterations)
	}
	oracle, err := Oracle(target, qubits)
	if err != nil {
		return nil, err
	}
	diffusion := Diffusion(qubits)

	c := NewCircuit(qubits)
	for q := 0; q < qubits; q++ {
		c.H(q)
	}
	for i := 0; i < iterations; i++ {
		c.Gates = append(c.Gates, oracle...)
		c.Gates = append(c.Gates, diffusion...)
	}
	c.MeasureAll()
	return c, nil
}
