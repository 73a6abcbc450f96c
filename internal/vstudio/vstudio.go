// Package vstudio carries the registration side of the Visual Studio
// backends: the action descriptors and capability metadata needed to
// dispatch into a native project-file renderer. The renderers themselves
// live behind the Format interface; their file formats are of no concern
// here.
package vstudio

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/qiniu/x/log"

	"github.com/PremakeDevs/premake-dev/internal/actions"
	"github.com/PremakeDevs/premake-dev/pkgs/emit"
	"github.com/PremakeDevs/premake-dev/project"
)

// Format renders the native solution and project documents for one
// Visual Studio release.
type Format interface {
	// Version is the release suffix of the trigger name: "2008", "2010".
	Version() string

	// ProjectExt is the file extension of a generated project file,
	// including the dot.
	ProjectExt() string

	WriteSolution(doc *emit.Document, w *project.Workspace) error
	WriteProject(doc *emit.Document, p *project.Project) error
}

// NewAction builds the descriptor for one Visual Studio release. The
// descriptor carries the backend's capability metadata; validating a
// requested project against it is the driver's business.
func NewAction(fsys billy.Filesystem, f Format) *actions.Action {
	e := &exporter{fs: fsys, format: f}
	return &actions.Action{
		Trigger:     "vs" + f.Version(),
		ShortName:   "Visual Studio " + f.Version(),
		Description: "Generate Microsoft Visual Studio " + f.Version() + " project files",
		OS:          "windows",
		ValidKinds: []project.Kind{
			project.KindConsoleApp,
			project.KindWindowedApp,
			project.KindStaticLib,
			project.KindSharedLib,
		},
		ValidLanguages: []project.Language{project.LanguageC, project.LanguageCPP},
		ValidTools:     map[string][]string{"cc": {"msc"}},

		OnWorkspace: e.onWorkspace,
		OnProject:   e.onProject,

		OnCleanWorkspace: e.onCleanWorkspace,
		OnCleanProject:   e.onCleanProject,
	}
}

type exporter struct {
	fs     billy.Filesystem
	format Format
}

func (e *exporter) solutionPath(w *project.Workspace) string {
	return filepath.Join(w.Location, w.Name+".sln")
}

func (e *exporter) projectPath(p *project.Project) string {
	return filepath.Join(p.Location, p.Name+e.format.ProjectExt())
}

func (e *exporter) onWorkspace(w *project.Workspace) error {
	target := e.solutionPath(w)
	changed, err := emit.Export(e.fs, target, func(doc *emit.Document) error {
		return e.format.WriteSolution(doc, w)
	})
	if err != nil {
		return err
	}
	if changed {
		log.Infof("Generated %s", target)
	}
	return nil
}

func (e *exporter) onProject(p *project.Project) error {
	target := e.projectPath(p)
	changed, err := emit.Export(e.fs, target, func(doc *emit.Document) error {
		return e.format.WriteProject(doc, p)
	})
	if err != nil {
		return err
	}
	if changed {
		log.Infof("Generated %s", target)
	}
	return nil
}

func (e *exporter) onCleanWorkspace(w *project.Workspace) error {
	return e.remove(e.solutionPath(w))
}

func (e *exporter) onCleanProject(p *project.Project) error {
	return e.remove(e.projectPath(p))
}

func (e *exporter) remove(name string) error {
	if _, err := e.fs.Stat(name); err != nil {
		return nil
	}
	return e.fs.Remove(name)
}
