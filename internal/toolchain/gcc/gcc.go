// Package gcc implements the GCC flag provider for the export pipeline.
package gcc

import "github.com/PremakeDevs/premake-dev/project"

// Toolchain maps scope settings to GCC command-line tokens. The zero
// value is ready to use.
type Toolchain struct{}

var _ project.Toolchain = Toolchain{}

// New returns a GCC toolchain.
func New() Toolchain {
	return Toolchain{}
}

// Name returns the tool identifier.
func (Toolchain) Name() string {
	return "gcc"
}

// Flags returns the ordered flag tokens for one stage. For the aggregate
// scope the result is the stage baseline followed by the project's own
// flag list; for a configuration scope it is the configuration's override
// list alone. The incremental halves are combined by the generated build
// file's append semantics, not here. Tokens keep declaration order and
// are not deduplicated.
func (Toolchain) Flags(s project.Scope, stage project.Stage) []string {
	var flags []string
	if s.IsAggregate() {
		flags = append(flags, baseline(s.Project(), stage)...)
	}
	return append(flags, s.FlagOverrides(stage)...)
}

// baseline returns the fixed per-stage tokens every GCC build gets,
// derived from the project kind.
func baseline(p *project.Project, stage project.Stage) []string {
	switch stage {
	case project.StagePreprocessor:
		// Dependency tracking for the generated .d includes.
		return []string{"-MMD", "-MP"}
	case project.StageC, project.StageCXX:
		if p.Kind == project.KindSharedLib {
			return []string{"-fPIC"}
		}
	case project.StageLink:
		if p.Kind == project.KindSharedLib {
			return []string{"-shared"}
		}
	}
	return nil
}
