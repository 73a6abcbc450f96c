package gmake

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/PremakeDevs/premake-dev/pkgs/emit"
	"github.com/PremakeDevs/premake-dev/pkgs/pathx"
	"github.com/PremakeDevs/premake-dev/project"
)

// assign emits a variable assignment, keeping an explicit empty-value
// line when there is nothing to assign so downstream references never
// observe an undefined variable.
func assign(doc *emit.Document, name, value string) {
	if value == "" {
		doc.Line("%s =", name)
		return
	}
	doc.Line("%s = %s", name, value)
}

// appendVar emits an append to a variable, again with an explicit empty
// form. Configuration scopes always append; only the project scope
// assigns.
func appendVar(doc *emit.Document, name, value string) {
	if value == "" {
		doc.Line("%s +=", name)
		return
	}
	doc.Line("%s += %s", name, value)
}

// prefixed renders a list with a flag prefix: -D for defines, -I for
// include directories.
func prefixed(prefix string, values []string) string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = prefix + v
	}
	return strings.Join(tokens, " ")
}

// header emits the fixed banner comment.
func header(doc *emit.Document, s project.Scope) error {
	doc.Line("# GNU Make project makefile autogenerated by Premake")
	doc.Blank()
	return nil
}

// configGuard defaults the config selector variable to the lowercased
// name of the first declared configuration, only if the user has not set
// it. Projects without configurations get no guard.
func configGuard(doc *emit.Document, s project.Scope) error {
	cfgs := s.Project().Configs
	if len(cfgs) == 0 {
		return nil
	}
	doc.Line("ifndef config")
	doc.Indent()
	doc.Line("config=%s", strings.ToLower(cfgs[0].Name))
	doc.Outdent()
	doc.Line("endif")
	doc.Blank()
	return nil
}

// verbosityGuard defines the SILENT marker that suppresses command echo
// unless the user sets the verbose override.
func verbosityGuard(doc *emit.Document, s project.Scope) error {
	doc.Line("ifndef verbose")
	doc.Indent()
	doc.Line("SILENT = @")
	doc.Outdent()
	doc.Line("endif")
	doc.Blank()
	return nil
}

// shellType probes at make time whether the build is running under a
// Windows shell, by looking for the Windows-only substring in $(OS).
// Every directory-creation and deletion rule branches on the result.
func shellType(doc *emit.Document, s project.Scope) error {
	doc.Line("SHELLTYPE := posix")
	doc.Line("ifneq (,$(findstring Windows,$(OS)))")
	doc.Indent()
	doc.Line("SHELLTYPE := msdos")
	doc.Outdent()
	doc.Line("endif")
	doc.Blank()
	return nil
}

// toolVars emits overridable tool variable defaults for the project's
// toolchain. A scope without a usable compiler or linker aborts the
// render here, before anything touches disk.
func toolVars(doc *emit.Document, s project.Scope) error {
	cc, ld := s.Compiler(), s.Linker()
	if cc == nil || ld == nil {
		return fmt.Errorf("%s: %w", s.Project().Name, project.ErrToolchainUnavailable)
	}
	if cc.Name() == "gcc" {
		for _, v := range [][2]string{{"CC", "gcc"}, {"CXX", "g++"}, {"AR", "ar"}} {
			doc.Line("ifndef %s", v[0])
			doc.Indent()
			doc.Line("%s = %s", v[0], v[1])
			doc.Outdent()
			doc.Line("endif")
		}
		doc.Blank()
	}
	return nil
}

// globalFlags emits the project-scope variable block: the full resolved
// define/include lists in assignment form, and the per-stage flag
// variables combining user flag variables, toolchain-provided tokens, and
// the define/include expansions.
func globalFlags(doc *emit.Document, s project.Scope) error {
	cc, ld := s.Compiler(), s.Linker()
	if cc == nil || ld == nil {
		return fmt.Errorf("%s: %w", s.Project().Name, project.ErrToolchainUnavailable)
	}

	assign(doc, "DEFINES", prefixed("-D", s.Defines()))
	assign(doc, "INCLUDES", prefixed("-I", s.IncludeDirs()))

	cpp := append([]string{"$(CPPFLAGS)"}, cc.Flags(s, project.StagePreprocessor)...)
	cpp = append(cpp, "$(DEFINES)", "$(INCLUDES)")
	assign(doc, "ALL_CPPFLAGS", strings.Join(cpp, " "))

	cflags := append([]string{"$(CFLAGS)", "$(ALL_CPPFLAGS)"}, cc.Flags(s, project.StageC)...)
	assign(doc, "ALL_CFLAGS", strings.Join(cflags, " "))

	cxxflags := append([]string{"$(CXXFLAGS)", "$(ALL_CPPFLAGS)"}, cc.Flags(s, project.StageCXX)...)
	assign(doc, "ALL_CXXFLAGS", strings.Join(cxxflags, " "))

	ldflags := append([]string{"$(LDFLAGS)"}, ld.Flags(s, project.StageLink)...)
	assign(doc, "ALL_LDFLAGS", strings.Join(ldflags, " "))

	assign(doc, "LIBS", prefixed("-l", s.Project().Libraries))
	assign(doc, "LDDEPS", "")
	doc.Blank()
	return nil
}

// hookVars defines the pre-build, pre-link, and post-build command
// variables. They must exist, even when empty, before any rule expands
// them.
func hookVars(doc *emit.Document, s project.Scope) error {
	p := s.Project()
	assign(doc, "PREBUILDCMDS", strings.Join(p.PreBuildCmds, " && "))
	assign(doc, "PRELINKCMDS", strings.Join(p.PreLinkCmds, " && "))
	assign(doc, "POSTBUILDCMDS", strings.Join(p.PostBuildCmds, " && "))
	doc.Blank()
	return nil
}

// placeholderDirs emits the directory variables unset at project scope;
// the cascade assigns them per configuration. The target file name itself
// is configuration-independent.
func placeholderDirs(doc *emit.Document, s project.Scope) error {
	doc.Line("TARGETDIR =")
	doc.Line("TARGET = $(TARGETDIR)/%s", s.Project().TargetName())
	doc.Line("OBJDIR =")
	doc.Blank()
	return nil
}

// configCascade renders the per-configuration conditional chain.
func configCascade(doc *emit.Document, s project.Scope) error {
	return cascade(doc, s.Project())
}

// objectList enumerates one object entry per source file. Objects are
// keyed by base name alone, so same-named sources in different
// directories collide on one entry.
func objectList(doc *emit.Document, s project.Scope) error {
	srcs := s.Project().SourceFiles()
	if len(srcs) == 0 {
		doc.Line("OBJECTS :=")
		doc.Blank()
		return nil
	}
	doc.Line("OBJECTS := \\")
	for _, f := range srcs {
		doc.Line("\t$(OBJDIR)/%s \\", f.ObjectName())
	}
	doc.Blank()
	return nil
}

// linkCommand emits the link template the target rule expands. Static
// libraries archive; everything else links with the language's compiler
// driver. The template precedes the OBJECTS definition; it is a recursive
// variable, so the reference resolves at rule-expansion time.
func linkCommand(doc *emit.Document, s project.Scope) error {
	p := s.Project()
	if p.Kind == project.KindStaticLib {
		doc.Line(`LINKCMD = $(AR) -rcs "$(TARGET)" $(OBJECTS)`)
	} else {
		doc.Line(`LINKCMD = $(%s) -o "$(TARGET)" $(OBJECTS) $(ALL_LDFLAGS) $(LIBS)`, linkerVar(p))
	}
	doc.Blank()
	return nil
}

func linkerVar(p *project.Project) string {
	if p.Language == project.LanguageC {
		return "CC"
	}
	return "CXX"
}

// allRule declares the phony targets and the default build order.
func allRule(doc *emit.Document, s project.Scope) error {
	doc.Line(".PHONY: all clean prebuild prelink")
	doc.Blank()
	doc.Line("all: $(TARGETDIR) $(OBJDIR) prebuild prelink $(TARGET)")
	doc.Line("\t@:")
	doc.Blank()
	return nil
}

// targetRule links the target. PRELINKCMDS runs via the prelink phony in
// the all ordering; POSTBUILDCMDS expands directly in the rule body, so
// hookVars must have defined both earlier in the pipeline.
func targetRule(doc *emit.Document, s project.Scope) error {
	p := s.Project()
	doc.Line("$(TARGET): $(OBJECTS) $(LDDEPS)")
	doc.Line("\t@echo Linking %s", p.Name)
	doc.Line("\t$(SILENT) $(LINKCMD)")
	doc.Line("\t$(POSTBUILDCMDS)")
	doc.Blank()
	return nil
}

func targetDirRule(doc *emit.Document, s project.Scope) error {
	dirRule(doc, "TARGETDIR")
	return nil
}

func objDirRule(doc *emit.Document, s project.Scope) error {
	dirRule(doc, "OBJDIR")
	return nil
}

// dirRule creates a directory, branching on the shell-type probe between
// the POSIX and the path-separator-translated non-POSIX command forms.
// Exactly one branch runs per invocation.
func dirRule(doc *emit.Document, varName string) {
	ref := "$(" + varName + ")"
	sub := `$(subst /,\,` + ref + `)`
	doc.Line("%s:", ref)
	doc.Line("\t@echo Creating %s", ref)
	doc.Line("ifeq (posix,$(SHELLTYPE))")
	doc.Line("\t$(SILENT) mkdir -p %s", ref)
	doc.Line("else")
	doc.Line("\t$(SILENT) if not exist %s mkdir %s", sub, sub)
	doc.Line("endif")
	doc.Blank()
}

// cleanRule removes the target file and the intermediate tree, with the
// same shell-type branching as directory creation.
func cleanRule(doc *emit.Document, s project.Scope) error {
	doc.Line("clean:")
	doc.Line("\t@echo Cleaning %s", s.Project().Name)
	doc.Line("ifeq (posix,$(SHELLTYPE))")
	doc.Line("\t$(SILENT) rm -f  $(TARGET)")
	doc.Line("\t$(SILENT) rm -rf $(OBJDIR)")
	doc.Line("else")
	doc.Line(`	$(SILENT) if exist $(subst /,\,$(TARGET)) del $(subst /,\,$(TARGET))`)
	doc.Line(`	$(SILENT) if exist $(subst /,\,$(OBJDIR)) rmdir /s /q $(subst /,\,$(OBJDIR))`)
	doc.Line("endif")
	doc.Blank()
	return nil
}

// hookRules gives the pre-build and pre-link command variables their
// phony rules.
func hookRules(doc *emit.Document, s project.Scope) error {
	doc.Line("prebuild:")
	doc.Line("\t$(PREBUILDCMDS)")
	doc.Blank()
	doc.Line("prelink:")
	doc.Line("\t$(PRELINKCMDS)")
	doc.Blank()
	return nil
}

// fileRules emits one compile rule per source file. The dependency is the
// file's path relative to the project location; .c files compile with the
// C driver even inside a C++ project.
func fileRules(doc *emit.Document, s project.Scope) error {
	p := s.Project()
	for _, f := range p.SourceFiles() {
		doc.Line("$(OBJDIR)/%s: %s", f.ObjectName(), relToProject(p, f.Path))
		doc.Line("\t@echo $(notdir $<)")
		if strings.EqualFold(path.Ext(f.Path), ".c") {
			doc.Line(`	$(SILENT) $(CC) $(ALL_CFLAGS) -o "$@" -c "$<"`)
		} else {
			doc.Line(`	$(SILENT) $(CXX) $(ALL_CXXFLAGS) -o "$@" -c "$<"`)
		}
		doc.Blank()
	}
	return nil
}

// relToProject keeps declared relative paths as-is and relativizes
// absolute declarations against the project location, so the generated
// file never contains an absolute path.
func relToProject(p *project.Project, file string) string {
	if path.IsAbs(file) || filepath.IsAbs(file) {
		return pathx.Rel(p.Location, file)
	}
	return path.Clean(file)
}

// depsInclude pulls in the dependency files the preprocessor tracking
// flags generate.
func depsInclude(doc *emit.Document, s project.Scope) error {
	doc.Line("-include $(OBJECTS:%%.o=%%.d)")
	return nil
}

// configDirs assigns the configuration's target and intermediate
// directories, composed from the fixed bin/obj convention relative to the
// project location.
func configDirs(doc *emit.Document, s project.Scope) error {
	target, objects := s.Directories()
	doc.Line("TARGETDIR = %s", target)
	doc.Line("OBJDIR = %s", objects)
	return nil
}

// configFlags appends the configuration's additional defines, includes,
// and per-stage flags. Append form only: the project-scope assignments
// stay intact, and the generated file's own variable semantics do the
// merging.
func configFlags(doc *emit.Document, s project.Scope) error {
	cc, ld := s.Compiler(), s.Linker()
	if cc == nil || ld == nil {
		return fmt.Errorf("%s: %w", s.Project().Name, project.ErrToolchainUnavailable)
	}
	appendVar(doc, "DEFINES", prefixed("-D", s.Defines()))
	appendVar(doc, "INCLUDES", prefixed("-I", s.IncludeDirs()))
	appendVar(doc, "ALL_CPPFLAGS", strings.Join(cc.Flags(s, project.StagePreprocessor), " "))
	appendVar(doc, "ALL_CFLAGS", strings.Join(cc.Flags(s, project.StageC), " "))
	appendVar(doc, "ALL_CXXFLAGS", strings.Join(cc.Flags(s, project.StageCXX), " "))
	appendVar(doc, "ALL_LDFLAGS", strings.Join(ld.Flags(s, project.StageLink), " "))
	return nil
}
