package project

import "github.com/PremakeDevs/premake-dev/pkgs/pathx"

// Scope is the polymorphic read surface an exporter element renders
// against. Exactly two shapes implement it: the aggregate scope of a
// whole project, and the narrow scope of one configuration. Element
// functions take the interface and never probe the underlying shape
// beyond IsAggregate.
type Scope interface {
	// Project returns the owning project. For the aggregate scope this is
	// the project itself.
	Project() *Project

	// Label is the display name of the scope: the project name for the
	// aggregate scope, the configuration name otherwise. Display text
	// preserves the declared case.
	Label() string

	// IsAggregate reports whether this is the project-wide scope.
	IsAggregate() bool

	// Defines and IncludeDirs return the scope's own lists: the full
	// resolved lists for the aggregate scope, only the additional entries
	// for a configuration scope.
	Defines() []string
	IncludeDirs() []string

	// FlagOverrides returns the scope's own raw flag list for a stage,
	// before any toolchain computation.
	FlagOverrides(stage Stage) []string

	// Compiler and Linker return the toolchains the scope builds with.
	// A configuration always shares its project's toolchains.
	Compiler() Toolchain
	Linker() Toolchain

	// Directories returns the target and intermediate directories as
	// paths relative to the project location. The aggregate scope returns
	// empty strings: directory layout is configuration-specific.
	Directories() (target, objects string)
}

// Scope returns the project's aggregate scope.
func (p *Project) Scope() Scope {
	return projectScope{p}
}

// Scope returns the configuration's narrow scope.
func (c *Configuration) Scope() Scope {
	return configScope{c}
}

type projectScope struct {
	p *Project
}

func (s projectScope) Project() *Project { return s.p }
func (s projectScope) Label() string { return s.p.Name }
func (s projectScope) IsAggregate() bool { return true }
func (s projectScope) Defines() []string { return s.p.Defines }
func (s projectScope) IncludeDirs() []string { return s.p.IncludeDirs }
func (s projectScope) Compiler() Toolchain { return s.p.Compiler }
func (s projectScope) Linker() Toolchain { return s.p.Linker }

func (s projectScope) FlagOverrides(stage Stage) []string {
	switch stage {
	case StagePreprocessor:
		return s.p.CPPFlags
	case StageC:
		return s.p.CFlags
	case StageCXX:
		return s.p.CXXFlags
	case StageLink:
		return s.p.LinkFlags
	default:
		return nil
	}
}

func (s projectScope) Directories() (string, string) {
	return "", ""
}

type configScope struct {
	c *Configuration
}

func (s configScope) Project() *Project { return s.c.Project }
func (s configScope) Label() string { return s.c.Name }
func (s configScope) IsAggregate() bool { return false }
func (s configScope) Defines() []string { return s.c.Defines }
func (s configScope) IncludeDirs() []string { return s.c.IncludeDirs }
func (s configScope) Compiler() Toolchain { return s.c.Project.Compiler }
func (s configScope) Linker() Toolchain { return s.c.Project.Linker }

func (s configScope) FlagOverrides(stage Stage) []string {
	switch stage {
	case StagePreprocessor:
		return s.c.CPPFlags
	case StageC:
		return s.c.CFlags
	case StageCXX:
		return s.c.CXXFlags
	case StageLink:
		return s.c.LinkFlags
	default:
		return nil
	}
}

// Directories composes the configuration's output directories from the
// fixed bin/<project>/<config> and obj/<project>/<config> convention,
// relative to the project location.
func (s configScope) Directories() (string, string) {
	p := s.c.Project
	return pathx.Join("bin", p.Name, s.c.Name), pathx.Join("obj", p.Name, s.c.Name)
}
