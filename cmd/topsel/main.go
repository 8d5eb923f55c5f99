package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Scoring completed and output was written
	ExitNoData  = 1 // No input file produced scorable data
	ExitError   = 2 // Configuration or runtime error
)

// NoDataError indicates the run completed but every input file was
// unusable, so no output file was written.
type NoDataError struct {
	Message string
}

func (e *NoDataError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var noDataErr *NoDataError
		if errors.As(err, &noDataErr) {
			os.Exit(ExitNoData)
		}

		os.Exit(ExitError)
	}
}
