package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig       = fmt.Errorf("configuration not found")
	ErrInvalidConfig       = fmt.Errorf("invalid configuration")
	ErrMissingField        = fmt.Errorf("missing required field")
	ErrInvalidPlaylistName = fmt.Errorf("invalid playlist name")

	// Sync errors
	ErrToolFailed       = fmt.Errorf("external tool failed")
	ErrNamesExhausted   = fmt.Errorf("no free listing file name")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrListingMalformed = fmt.Errorf("malformed listing output")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
