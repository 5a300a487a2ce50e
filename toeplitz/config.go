package toeplitz

import (
	"os"
	"strconv"
)

const (
	envCrossoverN   = "SUPERGAUSS_CROSSOVER_N"
	defaultCrossover = 300
)

// defaultCrossoverN reads the DL/GSchur crossover threshold from the
// environment (§9 "Environment: optional variables controlling ... the
// crossover threshold"), falling back to 300 when unset or unparsable.
func defaultCrossoverN() int {
	v := os.Getenv(envCrossoverN)
	if v == "" {
		return defaultCrossover
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultCrossover
	}
	return n
}
