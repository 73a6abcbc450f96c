// Package project defines the resolved build description consumed by the
// export backends: workspaces, projects, configurations, and files, plus
// the Scope and Toolchain surfaces the element pipeline renders against.
//
// Everything in this package is a read-only input from the exporter's
// point of view. Inheritance and filtering between workspace, project,
// and configuration happen upstream; by the time a value reaches an
// exporter it is already resolved.
package project

import (
	"path"
	"strings"
)

// Kind identifies what a project builds.
type Kind string

const (
	KindConsoleApp  Kind = "ConsoleApp"
	KindWindowedApp Kind = "WindowedApp"
	KindStaticLib   Kind = "StaticLib"
	KindSharedLib   Kind = "SharedLib"
)

// Language identifies the source language of a project.
type Language string

const (
	LanguageC   Language = "C"
	LanguageCPP Language = "C++"
)

// Workspace is the top-level container of projects sharing a location and
// a configuration list.
type Workspace struct {
	Name     string `json:"name"`
	Location string `json:"location"`

	// Configurations lists the build variant names in declaration order.
	// When empty it is derived from the first project's configurations.
	Configurations []string `json:"configurations,omitempty"`

	Projects []*Project `json:"projects"`
}

// Project is one buildable unit: an application or library with source
// files, build configurations, and toolchain references.
type Project struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Kind     Kind     `json:"kind"`
	Language Language `json:"language"`

	Configs []*Configuration `json:"configurations"`
	Files   []File           `json:"files,omitempty"`

	Defines     []string `json:"defines,omitempty"`
	IncludeDirs []string `json:"includedirs,omitempty"`
	Libraries   []string `json:"links,omitempty"`

	CPPFlags  []string `json:"cppflags,omitempty"`
	CFlags    []string `json:"cflags,omitempty"`
	CXXFlags  []string `json:"cxxflags,omitempty"`
	LinkFlags []string `json:"linkflags,omitempty"`

	PreBuildCmds  []string `json:"prebuildcommands,omitempty"`
	PreLinkCmds   []string `json:"prelinkcommands,omitempty"`
	PostBuildCmds []string `json:"postbuildcommands,omitempty"`

	// Compiler and Linker are referenced, never owned: they are attached
	// by the driver after the model is loaded.
	Compiler Toolchain `json:"-"`
	Linker   Toolchain `json:"-"`

	// Workspace points back at the owning workspace. Set during Load.
	Workspace *Workspace `json:"-"`
}

// Configuration is a named build variant of a project. Its lists are
// overrides layered on top of the project's own: additive, never a
// replacement.
type Configuration struct {
	Name string `json:"name"`

	Defines     []string `json:"defines,omitempty"`
	IncludeDirs []string `json:"includedirs,omitempty"`

	CPPFlags  []string `json:"cppflags,omitempty"`
	CFlags    []string `json:"cflags,omitempty"`
	CXXFlags  []string `json:"cxxflags,omitempty"`
	LinkFlags []string `json:"linkflags,omitempty"`

	// Project points back at the owning project. Set during Load.
	Project *Project `json:"-"`
}

// Rule is a custom build rule file registered alongside projects. Only its
// identity matters to the export machinery; rule bodies are rendered by
// the backend's OnRule hook.
type Rule struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// File is a single path belonging to a project. Paths are stored as
// declared, relative to the project location.
type File struct {
	Path string `json:"path"`
}

var sourceExts = map[string]bool{
	".c":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".s":   true,
}

var headerExts = map[string]bool{
	".h":   true,
	".hh":  true,
	".hpp": true,
	".hxx": true,
	".inl": true,
}

// IsSource reports whether the file is compiled. Only source files
// generate object and compile rules.
func (f File) IsSource() bool {
	return sourceExts[strings.ToLower(path.Ext(f.Path))]
}

// IsHeader reports whether the file is a header.
func (f File) IsHeader() bool {
	return headerExts[strings.ToLower(path.Ext(f.Path))]
}

// ObjectName returns the object file name the source maps to. The key is
// the base name alone: two sources with the same base name in different
// directories collide on one object rule.
func (f File) ObjectName() string {
	base := path.Base(f.Path)
	return strings.TrimSuffix(base, path.Ext(base)) + ".o"
}

// SourceFiles returns the project's compilable files in declaration order.
func (p *Project) SourceFiles() []File {
	var srcs []File
	for _, f := range p.Files {
		if f.IsSource() {
			srcs = append(srcs, f)
		}
	}
	return srcs
}

// TargetName returns the platform-neutral file name of the built target,
// derived from the project kind.
func (p *Project) TargetName() string {
	switch p.Kind {
	case KindStaticLib:
		return "lib" + p.Name + ".a"
	case KindSharedLib:
		return "lib" + p.Name + ".so"
	default:
		return p.Name
	}
}
