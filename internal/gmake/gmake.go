// Package gmake generates GNU-make-style makefiles from resolved
// workspaces and projects. It registers as the "gmake" action: one
// makefile per project, plus a workspace-level makefile that dispatches
// into the projects.
package gmake

import (
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/qiniu/x/log"

	"github.com/PremakeDevs/premake-dev/internal/actions"
	"github.com/PremakeDevs/premake-dev/pkgs/emit"
	"github.com/PremakeDevs/premake-dev/project"
)

// Exporter renders and writes makefiles through a filesystem handle, so
// tests can run against an in-memory filesystem.
type Exporter struct {
	fs billy.Filesystem
}

// NewExporter returns an exporter writing through fsys.
func NewExporter(fsys billy.Filesystem) *Exporter {
	return &Exporter{fs: fsys}
}

// NewAction returns the gmake action descriptor for registration.
func NewAction(fsys billy.Filesystem) *actions.Action {
	e := NewExporter(fsys)
	return &actions.Action{
		Trigger:     "gmake",
		ShortName:   "GNU Make",
		Description: "Generate GNU makefiles for POSIX, MinGW, and Cygwin",
		ValidKinds: []project.Kind{
			project.KindConsoleApp,
			project.KindWindowedApp,
			project.KindStaticLib,
			project.KindSharedLib,
		},
		ValidLanguages: []project.Language{project.LanguageC, project.LanguageCPP},
		ValidTools:     map[string][]string{"cc": {"gcc"}},

		OnWorkspace: e.OnWorkspace,
		OnProject:   e.OnProject,

		OnCleanWorkspace: e.OnCleanWorkspace,
		OnCleanProject:   e.OnCleanProject,
		OnCleanTarget:    e.OnCleanTarget,
	}
}

// RenderProject runs the project element pipeline against the project's
// aggregate scope. Rendering is pure: it touches nothing but the
// document.
func RenderProject(doc *emit.Document, p *project.Project) error {
	return projectElements.Run(doc, p.Scope())
}

// OnProject exports the project's makefile next to its declared location.
// Unchanged content is left untouched so rebuilds keyed off modification
// time stay quiet.
func (e *Exporter) OnProject(p *project.Project) (err error) {
	target := filepath.Join(p.Location, MakefileName(p))
	changed, err := emit.Export(e.fs, target, func(doc *emit.Document) error {
		return RenderProject(doc, p)
	})
	if err != nil {
		return err
	}
	if changed {
		log.Infof("Generated %s", target)
	} else {
		log.Debugf("%s is up to date", target)
	}
	return nil
}

// OnWorkspace exports the workspace dispatch makefile at the workspace
// location.
func (e *Exporter) OnWorkspace(w *project.Workspace) error {
	target := filepath.Join(w.Location, "Makefile")
	changed, err := emit.Export(e.fs, target, func(doc *emit.Document) error {
		return RenderWorkspace(doc, w)
	})
	if err != nil {
		return err
	}
	if changed {
		log.Infof("Generated %s", target)
	} else {
		log.Debugf("%s is up to date", target)
	}
	return nil
}

// OnCleanWorkspace removes the generated workspace makefile.
func (e *Exporter) OnCleanWorkspace(w *project.Workspace) error {
	return e.remove(filepath.Join(w.Location, "Makefile"))
}

// OnCleanProject removes the generated project makefile.
func (e *Exporter) OnCleanProject(p *project.Project) error {
	return e.remove(filepath.Join(p.Location, MakefileName(p)))
}

// OnCleanTarget removes the build output directories of every
// configuration.
func (e *Exporter) OnCleanTarget(p *project.Project) error {
	for _, cfg := range p.Configs {
		target, objects := cfg.Scope().Directories()
		if err := util.RemoveAll(e.fs, filepath.Join(p.Location, target)); err != nil {
			return err
		}
		if err := util.RemoveAll(e.fs, filepath.Join(p.Location, objects)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) remove(name string) error {
	if _, err := e.fs.Stat(name); err != nil {
		return nil
	}
	return e.fs.Remove(name)
}

// MakefileName returns "Makefile" when the project is alone in its
// directory, "<name>.make" otherwise. The workspace makefile counts as an
// occupant of the workspace location.
func MakefileName(p *project.Project) string {
	occupants := 0
	if w := p.Workspace; w != nil {
		if samePath(w.Location, p.Location) {
			occupants++
		}
		for _, other := range w.Projects {
			if samePath(other.Location, p.Location) {
				occupants++
			}
		}
	} else {
		occupants = 1
	}
	if occupants > 1 {
		return p.Name + ".make"
	}
	return "Makefile"
}

func samePath(a, b string) bool {
	return path.Clean(a) == path.Clean(b)
}
