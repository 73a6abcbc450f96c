package project

import "testing"

type fakeTool struct{ name string }

func (f fakeTool) Name() string { return f.name }
func (f fakeTool) Flags(s Scope, st Stage) []string { return nil }

func testProject() *Project {
	p := &Project{
		Name:        "MyApp",
		Location:    "src",
		Kind:        KindConsoleApp,
		Language:    LanguageCPP,
		Defines:     []string{"FOO"},
		IncludeDirs: []string{"../inc"},
		CXXFlags:    []string{"-Wall"},
		Compiler:    fakeTool{"cc"},
		Linker:      fakeTool{"ld"},
	}
	cfg := &Configuration{
		Name:        "Debug",
		Defines:     []string{"DEBUG"},
		IncludeDirs: []string{"gen"},
		CXXFlags:    []string{"-g"},
		Project:     p,
	}
	p.Configs = []*Configuration{cfg}
	return p
}

func TestProjectScope(t *testing.T) {
	p := testProject()
	s := p.Scope()

	if !s.IsAggregate() {
		t.Fatal("project scope IsAggregate = false")
	}
	if s.Label() != "MyApp" {
		t.Fatalf("Label = %q, want %q", s.Label(), "MyApp")
	}
	if s.Project() != p {
		t.Fatal("Project did not return the owner")
	}
	if got := s.Defines(); len(got) != 1 || got[0] != "FOO" {
		t.Fatalf("Defines = %v, want [FOO]", got)
	}
	if got := s.FlagOverrides(StageCXX); len(got) != 1 || got[0] != "-Wall" {
		t.Fatalf("FlagOverrides(c++) = %v, want [-Wall]", got)
	}
	target, objects := s.Directories()
	if target != "" || objects != "" {
		t.Fatalf("aggregate Directories = %q, %q, want empty", target, objects)
	}
}

func TestConfigurationScope(t *testing.T) {
	p := testProject()
	s := p.Configs[0].Scope()

	if s.IsAggregate() {
		t.Fatal("configuration scope IsAggregate = true")
	}
	// Display text preserves the declared case.
	if s.Label() != "Debug" {
		t.Fatalf("Label = %q, want %q", s.Label(), "Debug")
	}
	if s.Project() != p {
		t.Fatal("Project did not return the owner")
	}
	if got := s.Defines(); len(got) != 1 || got[0] != "DEBUG" {
		t.Fatalf("Defines = %v, want [DEBUG]", got)
	}
	if got := s.FlagOverrides(StageCXX); len(got) != 1 || got[0] != "-g" {
		t.Fatalf("FlagOverrides(c++) = %v, want [-g]", got)
	}
	if s.Compiler() != p.Compiler || s.Linker() != p.Linker {
		t.Fatal("configuration scope does not share the project toolchains")
	}
	target, objects := s.Directories()
	if target != "bin/MyApp/Debug" {
		t.Fatalf("target dir = %q, want %q", target, "bin/MyApp/Debug")
	}
	if objects != "obj/MyApp/Debug" {
		t.Fatalf("object dir = %q, want %q", objects, "obj/MyApp/Debug")
	}
}

func TestStageString(t *testing.T) {
	cases := map[Stage]string{
		StagePreprocessor: "preprocessor",
		StageC:            "c",
		StageCXX:          "c++",
		StageLink:         "link",
	}
	for stage, want := range cases {
		if got := stage.String(); got != want {
			t.Errorf("Stage(%d).String() = %q, want %q", stage, got, want)
		}
	}
}
