package cracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avishek8136/Quantum-Computing-A-study-on-Grover-s-algorithm/quantum"
)

func TestInterpretPicksMode(t *testing.T) {
	enc := NewEncoding(1)
	target, _ := enc.Encode("c") // index 2

	dist := quantum.Distribution{"000010": 800, "000001": 150, "000000": 74}
	result := Interpret(dist, target, enc, 6)

	assert.Equal(t, "c", result.Password)
	assert.True(t, result.Found)
	assert.Equal(t, int64(6), result.Attempts)
	assert.InDelta(t, 800.0/1024.0, result.Accuracy, 1e-9)
}

func TestInterpretTieBreaksTowardSmallerIndex(t *testing.T) {
	enc := NewEncoding(1)

	dist := quantum.Distribution{"00": 50, "01": 50}
	result := Interpret(dist, 0, enc, 1)

	assert.Equal(t, "a", result.Password)
	assert.True(t, result.Found)
	assert.InDelta(t, 0.5, result.Accuracy, 1e-9)
}

func TestInterpretFiltersPaddingOutcomes(t *testing.T) {
	enc := NewEncoding(1) // N=62, qubits=6, padding indices 62 and 63

	dist := quantum.Distribution{"111111": 700, "000001": 300}
	result := Interpret(dist, 1, enc, 6)

	// The padding outcome dominates the counts but can never be the guess.
	assert.Equal(t, "b", result.Password)
	assert.True(t, result.Found)
	assert.InDelta(t, 0.3, result.Accuracy, 1e-9)
}

func TestInterpretNoValidGuess(t *testing.T) {
	enc := NewEncoding(1)

	dist := quantum.Distribution{"111111": 10, "111110": 5}
	result := Interpret(dist, 1, enc, 6)

	assert.Empty(t, result.Password)
	assert.False(t, result.Found)
	assert.Zero(t, result.Accuracy)
}

func TestInterpretEmptyDistribution(t *testing.T) {
	enc := NewEncoding(1)

	result := Interpret(quantum.Distribution{}, 0, enc, 6)
	assert.Empty(t, result.Password)
	assert.Zero(t, result.Accuracy)
}

// Full pipeline: encode, build, simulate, interpret. 62^2 = 3844 states on
// 12 qubits with 48 Grover iterations recovers the target essentially every
// shot.
func TestSimulatorRecoversPassword(t *testing.T) {
	enc := NewEncoding(2)
	target, err := enc.Encode("Hi")
	require.NoError(t, err)

	n := enc.SearchSpace()
	qubits := enc.QubitsNeeded()
	iterations := quantum.OptimalIterations(n)
	require.Equal(t, 48, iterations)

	circuit, err := quantum.BuildGroverCircuit(target, qubits, iterations)
	require.NoError(t, err)

	sim := quantum.NewSimulator(42)
	dist, err := sim.Run(t.Context(), circuit, 1024)
	require.NoError(t, err)
	require.Equal(t, 1024, dist.Total())

	result := Interpret(dist, target, enc, iterations)
	assert.Equal(t, "Hi", result.Password)
	assert.True(t, result.Found)
	assert.Greater(t, result.Accuracy, 0.9)
}
