package project

import "errors"

// Stage identifies one flag-computation stage of a toolchain.
type Stage int

const (
	StagePreprocessor Stage = iota
	StageC
	StageCXX
	StageLink
)

// String returns the stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StagePreprocessor:
		return "preprocessor"
	case StageC:
		return "c"
	case StageCXX:
		return "c++"
	case StageLink:
		return "link"
	default:
		return "unknown"
	}
}

// Toolchain supplies compiler and linker flag tokens for a scope. It keeps
// the common flag-computation contract; implementations add their own
// tool-specific mappings.
//
// Flags returns the tokens for one stage in emission order. Order matters:
// tokens are concatenated with single spaces and duplicates are kept.
// For a configuration scope the result is the incremental flags layered on
// top of the project baseline; merging happens in the generated build
// file's own variable semantics, never here.
type Toolchain interface {
	// Name identifies the toolchain ("gcc", "msc", ...).
	Name() string

	// Flags returns the ordered flag tokens for the scope and stage.
	Flags(s Scope, stage Stage) []string
}

// ErrToolchainUnavailable reports that a scope has no usable compiler or
// linker. It aborts an in-progress render; no partial file is written.
var ErrToolchainUnavailable = errors.New("toolchain unavailable")
