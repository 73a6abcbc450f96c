package internal

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/PremakeDevs/premake-dev/internal/actions"
	"github.com/PremakeDevs/premake-dev/internal/gmake"
	"github.com/PremakeDevs/premake-dev/internal/toolchain/gcc"
	"github.com/PremakeDevs/premake-dev/project"
)

// registry catalogs the export backends this build of the tool ships.
// It is assembled once here, at the composition root, before any command
// runs; commands only read it.
var registry = newRegistry()

func newRegistry() *actions.Registry {
	r := actions.NewRegistry()
	fsys := osfs.New(".")
	if err := r.Register(gmake.NewAction(fsys)); err != nil {
		panic(err)
	}
	return r
}

// loadWorkspace reads the snapshot named by --file and attaches the
// default toolchain to projects that carry none.
func loadWorkspace() (*project.Workspace, error) {
	wks, err := project.Load(workspaceFile, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	tc := gcc.New()
	for _, prj := range wks.Projects {
		if prj.Compiler == nil {
			prj.Compiler = tc
		}
		if prj.Linker == nil {
			prj.Linker = tc
		}
	}
	return wks, nil
}
