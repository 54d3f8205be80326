package cmd

import (
	"fmt"

	apperrors "github.com/protocolhere/urlscan/internal/shared/errors"
)

// InvalidChoiceError indicates a menu selection other than the scanner option.
type InvalidChoiceError struct {
	Choice string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q, please select option 1", e.Choice)
}

func (e *InvalidChoiceError) Unwrap() error {
	return apperrors.ErrInvalidChoice
}

// ScanFailedError reports how many targets could not be scanned in a batch.
type ScanFailedError struct {
	Failed int
	Total  int
}

func (e *ScanFailedError) Error() string {
	if e.Total == 1 {
		return "target could not be scanned"
	}
	return fmt.Sprintf("%d of %d targets could not be scanned", e.Failed, e.Total)
}
