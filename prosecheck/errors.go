package prosecheck

import "errors"

var (
	// ErrTextTooLong reports input past the configured character limit.
	ErrTextTooLong = errors.New("prosecheck: text exceeds character limit")
	// ErrEngineInit reports that a checking engine could not be constructed
	// for the requested language.
	ErrEngineInit = errors.New("prosecheck: engine initialization failed")
	// ErrEngineCheck reports that the engine failed during analysis.
	ErrEngineCheck = errors.New("prosecheck: engine check failed")
)
