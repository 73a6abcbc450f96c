package gmake

import (
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/PremakeDevs/premake-dev/internal/toolchain/gcc"
	"github.com/PremakeDevs/premake-dev/pkgs/emit"
	"github.com/PremakeDevs/premake-dev/project"
)

func testWorkspace() *project.Workspace {
	wks := &project.Workspace{
		Name:           "Hello",
		Location:       ".",
		Configurations: []string{"Debug", "Release"},
	}
	app := &project.Project{
		Name:      "MyApp",
		Location:  "src",
		Kind:      project.KindConsoleApp,
		Language:  project.LanguageCPP,
		Compiler:  gcc.New(),
		Linker:    gcc.New(),
		Workspace: wks,
	}
	tool := &project.Project{
		Name:      "Tool",
		Location:  ".",
		Kind:      project.KindConsoleApp,
		Language:  project.LanguageC,
		Compiler:  gcc.New(),
		Linker:    gcc.New(),
		Workspace: wks,
	}
	wks.Projects = []*project.Project{app, tool}
	return wks
}

func renderWorkspace(t *testing.T, w *project.Workspace) string {
	t.Helper()
	doc := emit.NewDocument()
	if err := RenderWorkspace(doc, w); err != nil {
		t.Fatalf("RenderWorkspace: %v", err)
	}
	return string(doc.Render())
}

func TestWorkspaceMakefileDispatch(t *testing.T) {
	out := renderWorkspace(t, testWorkspace())

	if !strings.Contains(out, "PROJECTS := MyApp Tool\n") {
		t.Fatal("missing project list")
	}
	// Project directories are relative to the workspace location.
	if !strings.Contains(out, "\t@$(MAKE) --no-print-directory -C src -f Makefile config=$(config)\n") {
		t.Fatal("missing dispatch rule for MyApp")
	}
	if !strings.Contains(out, "\t@$(MAKE) --no-print-directory -C . -f Tool.make config=$(config)\n") {
		t.Fatal("missing dispatch rule for Tool")
	}
	if strings.Contains(out, "-C /") {
		t.Fatal("workspace makefile contains an absolute project directory")
	}
}

func TestWorkspaceMakefileConfigGuard(t *testing.T) {
	out := renderWorkspace(t, testWorkspace())
	if !strings.Contains(out, "ifndef config\n  config=debug\nendif\n") {
		t.Fatal("missing default-config guard")
	}
}

func TestWorkspaceMakefileHelp(t *testing.T) {
	out := renderWorkspace(t, testWorkspace())
	for _, want := range []string{
		"help:",
		"\t@echo \"CONFIGURATIONS:\"",
		"\t@echo \"  debug\"",
		"\t@echo \"  release\"",
		"\t@echo \"  MyApp\"",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("help rule missing %q", want)
		}
	}
}

func TestOnWorkspaceWritesAndCleans(t *testing.T) {
	fsys := memfs.New()
	e := NewExporter(fsys)
	wks := testWorkspace()

	if err := e.OnWorkspace(wks); err != nil {
		t.Fatalf("OnWorkspace: %v", err)
	}
	data, err := util.ReadFile(fsys, "Makefile")
	if err != nil {
		t.Fatalf("read workspace makefile: %v", err)
	}
	if want := renderWorkspace(t, wks); string(data) != want {
		t.Fatal("written workspace makefile differs from the rendered document")
	}

	if err := e.OnCleanWorkspace(wks); err != nil {
		t.Fatalf("OnCleanWorkspace: %v", err)
	}
	if _, err := fsys.Stat("Makefile"); !os.IsNotExist(err) {
		t.Fatalf("Stat after clean = %v, want not-exist", err)
	}
}
