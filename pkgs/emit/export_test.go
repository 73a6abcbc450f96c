package emit

import (
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func renderLines(lines ...string) func(*Document) error {
	return func(doc *Document) error {
		for _, l := range lines {
			doc.Line("%s", l)
		}
		return nil
	}
}

func TestExportWritesNewFile(t *testing.T) {
	fsys := memfs.New()

	changed, err := Export(fsys, "build/Makefile", renderLines("all:"))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !changed {
		t.Fatal("Export of a new file reported changed = false")
	}
	data, err := util.ReadFile(fsys, "build/Makefile")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := string(data); got != "all:\n" {
		t.Fatalf("content = %q, want %q", got, "all:\n")
	}
}

func TestExportIsIdempotent(t *testing.T) {
	fsys := memfs.New()

	if _, err := Export(fsys, "Makefile", renderLines("all:")); err != nil {
		t.Fatalf("first Export: %v", err)
	}
	first, err := util.ReadFile(fsys, "Makefile")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	changed, err := Export(fsys, "Makefile", renderLines("all:"))
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if changed {
		t.Fatal("unchanged content reported changed = true")
	}
	second, err := util.ReadFile(fsys, "Makefile")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("content drifted between identical exports: %q vs %q", first, second)
	}
}

func TestExportRewritesOnChange(t *testing.T) {
	fsys := memfs.New()

	if _, err := Export(fsys, "Makefile", renderLines("all:")); err != nil {
		t.Fatalf("first Export: %v", err)
	}
	changed, err := Export(fsys, "Makefile", renderLines("all:", "clean:"))
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if !changed {
		t.Fatal("changed content reported changed = false")
	}
	data, _ := util.ReadFile(fsys, "Makefile")
	if got := string(data); got != "all:\nclean:\n" {
		t.Fatalf("content = %q, want %q", got, "all:\nclean:\n")
	}
}

func TestExportRenderFailureWritesNothing(t *testing.T) {
	fsys := memfs.New()
	renderErr := errors.New("boom")

	if _, err := Export(fsys, "Makefile", renderLines("old")); err != nil {
		t.Fatalf("seed Export: %v", err)
	}

	_, err := Export(fsys, "Makefile", func(doc *Document) error {
		doc.Line("partial")
		return renderErr
	})
	if !errors.Is(err, renderErr) {
		t.Fatalf("Export error = %v, want %v", err, renderErr)
	}
	data, err := util.ReadFile(fsys, "Makefile")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := string(data); got != "old\n" {
		t.Fatalf("failed render perturbed the file: %q", got)
	}
}

func TestExportMissingFileAfterRenderFailure(t *testing.T) {
	fsys := memfs.New()

	_, err := Export(fsys, "Makefile", func(doc *Document) error {
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("Export did not surface the render error")
	}
	if _, err := fsys.Stat("Makefile"); !os.IsNotExist(err) {
		t.Fatalf("Stat after failed render = %v, want not-exist", err)
	}
}

func TestExportLeavesNoTemporaries(t *testing.T) {
	fsys := memfs.New()

	if _, err := Export(fsys, "out/Makefile", renderLines("all:")); err != nil {
		t.Fatalf("Export: %v", err)
	}
	entries, err := fsys.ReadDir("out")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "Makefile" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("directory contents = %v, want [Makefile]", names)
	}
}
