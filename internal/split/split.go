// Package split partitions paired samples into train and test subsets.
package split

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// TestSize is the fixed held-out proportion used by the modelling run.
const TestSize = 0.20

var (
	ErrLengthMismatch  = errors.New("predictor and outcome lengths differ")
	ErrInvalidTestSize = errors.New("test size must be in (0, 1)")
	ErrEmptyPartition  = errors.New("split leaves an empty train or test set")
)

// Split holds the four partitioned arrays plus the original row indices that
// landed in each partition.
type Split struct {
	XTrain, XTest []float64
	YTrain, YTest []float64
	TrainIdx      []int
	TestIdx       []int
}

// NewRand returns a generator seeded with seed, or with the wall clock when
// seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// TestCount returns how many of n rows go to the test partition.
func TestCount(n int, testSize float64) int {
	return int(math.Ceil(testSize * float64(n)))
}

// TrainTest shuffles row indices and assigns the first ceil(testSize*n) of
// them to the test set and the rest to the train set.
func TrainTest(x, y []float64, testSize float64, rng *rand.Rand) (*Split, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if !(testSize > 0 && testSize < 1) {
		return nil, ErrInvalidTestSize
	}
	n := len(x)
	nTest := TestCount(n, testSize)
	if nTest == 0 || n-nTest == 0 {
		return nil, ErrEmptyPartition
	}
	if rng == nil {
		rng = NewRand(0)
	}
	perm := rng.Perm(n)
	s := &Split{
		XTrain:   make([]float64, 0, n-nTest),
		YTrain:   make([]float64, 0, n-nTest),
		XTest:    make([]float64, 0, nTest),
		YTest:    make([]float64, 0, nTest),
		TestIdx:  perm[:nTest],
		TrainIdx: perm[nTest:],
	}
	for _, i := range s.TestIdx {
		s.XTest = append(s.XTest, x[i])
		s.YTest = append(s.YTest, y[i])
	}
	for _, i := range s.TrainIdx {
		s.XTrain = append(s.XTrain, x[i])
		s.YTrain = append(s.YTrain, y[i])
	}
	return s, nil
}
