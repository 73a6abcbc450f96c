package gmake

import (
	"strings"

	"github.com/PremakeDevs/premake-dev/pkgs/emit"
	"github.com/PremakeDevs/premake-dev/pkgs/pathx"
	"github.com/PremakeDevs/premake-dev/project"
)

// RenderWorkspace emits the workspace-level makefile: a config guard, one
// delegating rule per project, and clean/help rules. Project directories
// are written relative to the workspace location, never absolute.
func RenderWorkspace(doc *emit.Document, w *project.Workspace) error {
	doc.Line("# GNU Make workspace makefile autogenerated by Premake")
	doc.Blank()

	if len(w.Configurations) > 0 {
		doc.Line("ifndef config")
		doc.Indent()
		doc.Line("config=%s", strings.ToLower(w.Configurations[0]))
		doc.Outdent()
		doc.Line("endif")
		doc.Blank()
	}

	names := make([]string, len(w.Projects))
	for i, p := range w.Projects {
		names[i] = p.Name
	}
	doc.Line("PROJECTS := %s", strings.Join(names, " "))
	doc.Blank()
	doc.Line(".PHONY: all clean help $(PROJECTS)")
	doc.Blank()
	doc.Line("all: $(PROJECTS)")
	doc.Blank()

	for _, p := range w.Projects {
		doc.Line("%s:", p.Name)
		doc.Line("\t@echo \"==== Building %s ($(config)) ====\"", p.Name)
		doc.Line("\t@$(MAKE) --no-print-directory -C %s -f %s config=$(config)",
			pathx.Rel(w.Location, p.Location), MakefileName(p))
		doc.Blank()
	}

	doc.Line("clean:")
	for _, p := range w.Projects {
		doc.Line("\t@$(MAKE) --no-print-directory -C %s -f %s clean",
			pathx.Rel(w.Location, p.Location), MakefileName(p))
	}
	doc.Blank()

	doc.Line("help:")
	doc.Line("\t@echo \"Usage: make [config=name] [target]\"")
	doc.Line("\t@echo \"\"")
	doc.Line("\t@echo \"CONFIGURATIONS:\"")
	for _, name := range w.Configurations {
		doc.Line("\t@echo \"  %s\"", strings.ToLower(name))
	}
	doc.Line("\t@echo \"\"")
	doc.Line("\t@echo \"TARGETS:\"")
	doc.Line("\t@echo \"  all (default)\"")
	doc.Line("\t@echo \"  clean\"")
	for _, name := range names {
		doc.Line("\t@echo \"  %s\"", name)
	}
	return nil
}
