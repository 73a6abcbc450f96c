package gmake

import (
	"strings"

	"github.com/PremakeDevs/premake-dev/pkgs/emit"
	"github.com/PremakeDevs/premake-dev/project"
)

// cascade walks the project's configurations in declaration order and
// emits a mutually exclusive conditional chain: ifeq for the first
// branch, else ifeq for every subsequent one, one endif for the whole
// chain. Each branch's body is the configuration element pipeline run
// against that configuration's scope, one indent level deeper than the
// branch keyword.
//
// The comparison uses the lowercased configuration name; display text
// elsewhere keeps the declared case. Zero configurations render nothing.
// Indentation is restored to the pre-chain level after the terminator
// regardless of branch count.
func cascade(doc *emit.Document, p *project.Project) error {
	for i, cfg := range p.Configs {
		if i == 0 {
			doc.Line("ifeq ($(config), %s)", strings.ToLower(cfg.Name))
		} else {
			doc.Line("else ifeq ($(config), %s)", strings.ToLower(cfg.Name))
		}
		doc.Indent()
		err := configElements.Run(doc, cfg.Scope())
		doc.Outdent()
		if err != nil {
			return err
		}
	}
	if len(p.Configs) > 0 {
		doc.Line("endif")
		doc.Blank()
	}
	return nil
}
