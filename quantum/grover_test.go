package quantum

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalIterations(t *testing.T) {
	assert.Equal(t, 0, OptimalIterations(1))
	assert.Equal(t, 1, OptimalIterations(2))
	assert.Equal(t, 1, OptimalIterations(4))
	// 62^2 states: pi/4 * 62 = 48.69, truncated.
	assert.Equal(t, 48, OptimalIterations(3844))
}

func TestOracleBounds(t *testing.T) {
	_, err := Oracle(0, 0)
	assert.ErrorIs(t, err, ErrOracleConstruction)

	_, err = Oracle(4, 2)
	assert.ErrorIs(t, err, ErrOracleConstruction)

	_, err = Oracle(3, 2)
	assert.NoError(t, err)
}

func TestOracleDeterministic(t *testing.T) {
	first, err := Oracle(5, 3)
	require.NoError(t, err)
	second, err := Oracle(5, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// The oracle must flip the phase of exactly the target basis state and act
// as identity on every other state, padding included. Verified by preparing
// each basis state and inspecting the statevector.
func TestOraclePhaseFlip(t *testing.T) {
	const qubits = 3
	const target = uint64(5)

	oracle, err := Oracle(target, qubits)
	require.NoError(t, err)

	for basis := uint64(0); basis < 1<<qubits; basis++ {
		c := NewCircuit(qubits)
		for q := 0; q < qubits; q++ {
			if basis&(uint64(1)<<q) != 0 {
				c.X(q)
			}
		}
		c.Gates = append(c.Gates, oracle...)

		amps, err := Statevector(t.Context(), c)
		require.NoError(t, err)

		want := complex(1, 0)
		if basis == target {
			want = complex(-1, 0)
		}
		assert.InDelta(t, 0, cmplx.Abs(amps[basis]-want), 1e-9, "basis %b", basis)

		for i, amp := range amps {
			if uint64(i) == basis {
				continue
			}
			assert.InDelta(t, 0, cmplx.Abs(amp), 1e-9, "basis %b leaked into %b", basis, i)
		}
	}
}

func TestBuildGroverCircuitZeroIterations(t *testing.T) {
	c, err := BuildGroverCircuit(2, 3, 0)
	require.NoError(t, err)

	// Superposition plus measurement only.
	require.Len(t, c.Gates, 6)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "h", c.Gates[i].Name)
	}
	for i := 3; i < 6; i++ {
		assert.Equal(t, "measure", c.Gates[i].Name)
	}
}

func TestBuildGroverCircuitDeterministic(t *testing.T) {
	first, err := BuildGroverCircuit(5, 3, 2)
	require.NoError(t, err)
	second, err := BuildGroverCircuit(5, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildGroverCircuitRejectsNegativeIterations(t *testing.T) {
	_, err := BuildGroverCircuit(0, 2, -1)
	assert.ErrorIs(t, err, ErrOracleConstruction)
}

func TestCircuitToQASM(t *testing.T) {
	c, err := BuildGroverCircuit(2, 2, 1)
	require.NoError(t, err)

	qasm := c.ToQASM()
	assert.Contains(t, qasm, "OPENQASM 2.0;")
	assert.Contains(t, qasm, "qreg q[2];")
	assert.Contains(t, qasm, "creg c[2];")
	assert.Contains(t, qasm, "h q[0];")
	assert.Contains(t, qasm, "cx q[0], q[1];")
	assert.Contains(t, qasm, "measure q[1] -> c[1];")
}
