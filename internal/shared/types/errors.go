package types

import "errors"

var (
	ErrEmptyReport        = errors.New("CUR file is empty: no header row found")
	ErrMissingColumn      = errors.New("required column not found in CUR header")
	ErrInvalidTopN        = errors.New("top must be greater than zero")
	ErrInvalidSpikeFactor = errors.New("spike factor must be greater than zero")
)
