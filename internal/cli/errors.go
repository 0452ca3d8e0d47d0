package cli

import "errors"

var (
	// errPlantedMissing is returned by find when the fixture records planted
	// assignments that the search did not report.
	errPlantedMissing = errors.New("planted assignments missing from results")

	// errVerificationFailed is returned by verify when any trial failed.
	errVerificationFailed = errors.New("verification failed")
)
