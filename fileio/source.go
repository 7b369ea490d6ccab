// Package fileio implements the narrow file-format adapters the docking
// core reads and writes (SPEC_FULL.md section 3.7, spec.md section 6):
// one reader per input format behind a single Source interface, plus the
// CSV and grid-binary sinks. Grounded on the teacher's fem/fileio.go
// decoder-pair idiom, generalized from a single fixed gob codec to one
// parser per concrete chemical file format.
package fileio

import (
	"github.com/rxdock/rxdock-sub002/model"
)

// Source reads one or more models from an underlying stream. Every
// format-specific reader in this package implements it (section 6, "a
// single model.Source interface").
type Source interface {
	ReadModels() ([]*model.Model, error)
}
