package fixture

import "errors"

var (
	// ErrInvalidSpec is returned for a MatrixSpec or size argument outside its domain.
	ErrInvalidSpec = errors.New("fixture: invalid spec")

	// ErrPlantExhausted is returned by Plant when maxAttempts random
	// assignments did not yield the requested number of plantings.
	ErrPlantExhausted = errors.New("fixture: planting attempts exhausted")
)
