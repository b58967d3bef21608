package cracker

import (
	"strconv"

	"github.com/Avishek8136/Quantum-Computing-A-study-on-Grover-s-algorithm/quantum"
)

// Interpret reduces a measurement distribution to a best-guess password and
// an accuracy score. The guess is the most frequent outcome that decodes to
// a valid password; outcomes landing on padding indices still count toward
// the shot total but are never candidates. Ties break toward the smaller
// encoded index. Zero in-range outcomes yields no guess and accuracy 0
// rather than an error.
//
// Attempts carries the Grover iteration count, not the shot count: the
// point of the comparison is oracle invocations versus classical guesses.
func Interpret(dist quantum.Distribution, target uint64, enc *Encoding, iterations int) *MethodResult {
	total := dist.Total()
	n := enc.SearchSpace()

	var (
		bestIndex   uint64
		bestCount   int
		targetCount int
		haveGuess   bool
	)
	for bitstring, count := range dist {
		if count <= 0 {
			continue
		}
		index, err := strconv.ParseUint(bitstring, 2, 64)
		if err != nil || index >= n {
			continue
		}
		if index == target {
			targetCount += count
		}
		if count > bestCount || (count == bestCount && haveGuess && index < bestIndex) {
			bestIndex = index
			bestCount = count
			haveGuess = true
		}
	}

	result := &MethodResult{Attempts: int64(iterations)}
	if total > 0 {
		result.Accuracy = float64(targetCount) / float64(total)
	}
	if haveGuess {
		guess, err := enc.Decode(bestIndex)
		if err == nil {
			result.Password = guess
			result.Found = bestIndex == target
		}
	}
	return result
}
