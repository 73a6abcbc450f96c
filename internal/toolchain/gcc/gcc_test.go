package gcc

import (
	"strings"
	"testing"

	"github.com/PremakeDevs/premake-dev/project"
)

func testProject(kind project.Kind) *project.Project {
	p := &project.Project{
		Name:     "app",
		Kind:     kind,
		Language: project.LanguageCPP,
		CXXFlags: []string{"-Wall", "-Wextra"},
	}
	cfg := &project.Configuration{
		Name:     "Debug",
		CXXFlags: []string{"-g", "-Wall"},
		Project:  p,
	}
	p.Configs = []*project.Configuration{cfg}
	return p
}

func TestAggregatePreprocessorBaseline(t *testing.T) {
	tc := New()
	p := testProject(project.KindConsoleApp)
	got := strings.Join(tc.Flags(p.Scope(), project.StagePreprocessor), " ")
	if got != "-MMD -MP" {
		t.Fatalf("preprocessor flags = %q, want %q", got, "-MMD -MP")
	}
}

func TestAggregateFlagsKeepOrderAndDuplicates(t *testing.T) {
	tc := New()
	p := testProject(project.KindConsoleApp)
	p.CXXFlags = []string{"-O2", "-Wall", "-O2"}
	got := strings.Join(tc.Flags(p.Scope(), project.StageCXX), " ")
	if got != "-O2 -Wall -O2" {
		t.Fatalf("c++ flags = %q, want %q", got, "-O2 -Wall -O2")
	}
}

func TestConfigurationFlagsAreIncremental(t *testing.T) {
	tc := New()
	p := testProject(project.KindConsoleApp)
	got := strings.Join(tc.Flags(p.Configs[0].Scope(), project.StageCXX), " ")
	// Only the configuration's own overrides, never the merged result.
	if got != "-g -Wall" {
		t.Fatalf("configuration c++ flags = %q, want %q", got, "-g -Wall")
	}
}

func TestSharedLibBaseline(t *testing.T) {
	tc := New()
	p := testProject(project.KindSharedLib)
	p.CXXFlags = nil

	if got := strings.Join(tc.Flags(p.Scope(), project.StageCXX), " "); got != "-fPIC" {
		t.Fatalf("c++ flags = %q, want %q", got, "-fPIC")
	}
	if got := strings.Join(tc.Flags(p.Scope(), project.StageLink), " "); got != "-shared" {
		t.Fatalf("link flags = %q, want %q", got, "-shared")
	}
}

func TestName(t *testing.T) {
	if got := New().Name(); got != "gcc" {
		t.Fatalf("Name = %q, want %q", got, "gcc")
	}
}
