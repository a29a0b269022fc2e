package common

import (
	"runtime"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Parallelize splits [0, nbIterations) into contiguous chunks and runs work on
// each chunk in its own goroutine. At most maxCpus[0] goroutines are used when
// given, runtime.NumCPU() otherwise.
func Parallelize(nbIterations int, work func(int, int), maxCpus ...int) {
	nbTasks := runtime.NumCPU()
	if len(maxCpus) == 1 {
		nbTasks = maxCpus[0]
		if nbTasks < 1 {
			nbTasks = 1
		}
	}
	nbIterationsPerCpus := nbIterations / nbTasks

	// more CPUs than tasks: a CPU will work on exactly one iteration
	if nbIterationsPerCpus < 1 {
		nbIterationsPerCpus = 1
		nbTasks = nbIterations
	}

	var wg sync.WaitGroup
	extraTasks := nbIterations - (nbTasks * nbIterationsPerCpus)
	extraTasksOffset := 0

	for i := 0; i < nbTasks; i++ {
		wg.Add(1)
		_start := i*nbIterationsPerCpus + extraTasksOffset
		_end := _start + nbIterationsPerCpus
		if extraTasks > 0 {
			_end++
			extraTasks--
			extraTasksOffset++
		}
		go func() {
			work(_start, _end)
			wg.Done()
		}()
	}

	wg.Wait()
}

// Check e(a₁, a₂) = e(b₁, b₂)
func SameRatio(a1, b1 bn254.G1Affine, a2, b2 bn254.G2Affine) bool {
	var na2 bn254.G2Affine
	na2.Neg(&a2)
	res, err := bn254.PairingCheck(
		[]bn254.G1Affine{a1, b1},
		[]bn254.G2Affine{na2, b2})
	if err != nil {
		panic(err)
	}
	return res
}

// Check e(a₁, a₂) = e(b₁, b₂) on BLS12-381
func SameRatioBLS12381(a1, b1 bls12381.G1Affine, a2, b2 bls12381.G2Affine) bool {
	var na2 bls12381.G2Affine
	na2.Neg(&a2)
	res, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{a1, b1},
		[]bls12381.G2Affine{na2, b2})
	if err != nil {
		panic(err)
	}
	return res
}
