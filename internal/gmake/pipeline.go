package gmake

import (
	"github.com/PremakeDevs/premake-dev/pkgs/emit"
	"github.com/PremakeDevs/premake-dev/project"
)

// Element generates one contiguous block of makefile output for a scope.
// Elements are independent units: each appends to the shared document and
// assumes only what earlier elements in its pipeline have defined.
type Element func(*emit.Document, project.Scope) error

// Pipeline is an ordered list of elements. The same pipeline definition is
// run against every scope of the matching shape.
type Pipeline []Element

// Run invokes every element in order with the same scope and document.
// The first failing element aborts the rest; the caller is responsible
// for not persisting the partial document.
//
// Given an identical model snapshot, a pipeline always produces
// byte-identical output: nothing here depends on map order, timestamps,
// or host state.
func (pl Pipeline) Run(doc *emit.Document, s project.Scope) error {
	for _, el := range pl {
		if err := el(doc, s); err != nil {
			return err
		}
	}
	return nil
}

// projectElements is run once per project against its aggregate scope.
// Ordering is a correctness requirement, not a style choice: elements
// that define a variable must run before elements that reference it
// (hook command variables before the link rule, SHELLTYPE before every
// directory rule).
var projectElements = Pipeline{
	header,
	configGuard,
	verbosityGuard,
	shellType,
	toolVars,
	globalFlags,
	hookVars,
	placeholderDirs,
	configCascade,
	linkCommand,
	objectList,
	allRule,
	targetRule,
	targetDirRule,
	objDirRule,
	cleanRule,
	hookRules,
	fileRules,
	depsInclude,
}

// configElements is run once per configuration, inside its cascade
// branch.
var configElements = Pipeline{
	configDirs,
	configFlags,
}
