package subgraph

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/matrix"
)

// validateInputs checks that both matrices exist and the pattern fits in the source.
// It returns (n, k).
func validateInputs(source, pattern *matrix.Dense) (int, int, error) {
	if err := matrix.ValidateNotNil(source); err != nil {
		return 0, 0, fmt.Errorf("source: %w", err)
	}
	if err := matrix.ValidateNotNil(pattern); err != nil {
		return 0, 0, fmt.Errorf("pattern: %w", err)
	}
	n, k := source.Size(), pattern.Size()
	if k > n {
		return 0, 0, fmt.Errorf("pattern size %d > source size %d: %w", k, n, ErrInvalidArgument)
	}

	return n, k, nil
}

// validateOptions rejects option values outside their domain.
func validateOptions(opts Options) error {
	if opts.MaxMatches < 0 {
		return fmt.Errorf("MaxMatches=%d: %w", opts.MaxMatches, ErrInvalidArgument)
	}
	switch opts.Algo {
	case Fast, BruteForce:
	default:
		return fmt.Errorf("%s: %w", opts.Algo, ErrUnknownAlgorithm)
	}

	return nil
}
