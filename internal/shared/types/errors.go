package types

import "errors"

var (
	ErrInvalidMode    = errors.New("mode must be one of: weekly, monthly")
	ErrNoInputData    = errors.New("no parquet objects found under the input prefix")
	ErrSchemaMismatch = errors.New("input dataset does not conform to the topline summary schema")
)
