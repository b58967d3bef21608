// Package quantum holds the gate-level circuit model, the Grover circuit
// construction, and the executors that run a circuit for a shot count:
// a local statevector simulator and the IBM Quantum Runtime backend.
package quantum

import (
	"fmt"
	"strings"
)

// Gate is one operation in a circuit. Controls is empty for single-qubit
// gates; "mcx" flips Target when every control qubit is 1.
type Gate struct {
	Name     string // "h", "x", "mcx", "measure"
	Target   int
	Controls []int
}

// Circuit is an ordered gate sequence over a fixed number of qubits.
// Builders append gates once; executors never mutate it.
type Circuit struct {
	Qubits int
	Gates  []Gate
}

// NewCircuit returns an empty circuit over the given number of qubits.
func NewCircuit(qubits int) *Circuit {
	return &Circuit{Qubits: qubits}
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) {
	c.Gates = append(c.Gates, Gate{Name: "h", Target: q})
}

// X appends a bit-flip gate on qubit q.
func (c *Circuit) X(q int) {
	c.Gates = append(c.Gates, Gate{Name: "x", Target: q})
}

// MCX appends a multi-controlled X: Target flips when all control qubits
// are 1. With no controls it is a plain X.
func (c *Circuit) MCX(controls []int, target int) {
	c.Gates = append(c.Gates, Gate{Name: "mcx", Target: target, Controls: controls})
}

// MeasureAll appends a measurement of every qubit into the classical bit of
// the same index.
func (c *Circuit) MeasureAll() {
	for q := 0; q < c.Qubits; q++ {
		c.Gates = append(c.Gates, Gate{Name: "measure", Target: q})
	}
}

// Size returns the total gate count, measurements included.
func (c *Circuit) Size() int {
	return len(c.Gates)
}

// ToQASM renders the circuit as OpenQASM 2.0. Multi-controlled X gates with
// more than two controls are emitted as "mcx"; the runtime service's
// transpiler decomposes them to native gates.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.Qubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.Qubits)

	for _, g := range c.Gates {
		switch g.Name {
		case "measure":
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.Target)
		case "mcx":
			switch len(g.Controls) {
			case 0:
				fmt.Fprintf(&sb, "x q[%d];\n", g.Target)
			case 1:
				fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Controls[0], g.Target)
			case 2:
				fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", g.Controls[0], g.Controls[1], g.Target)
			default:
				args := make([]string, 0, len(g.Controls)+1)
				for _, ctrl := range g.Controls {
					args = append(args, fmt.Sprintf("q[%d]", ctrl))
				}
				args = append(args, fmt.Sprintf("q[%d]", g.Target))
				fmt.Fprintf(&sb, "mcx %s;\n", strings.Join(args, ", "))
			}
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", g.Name, g.Target)
		}
	}

	return sb.String()
}
