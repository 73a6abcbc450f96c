package internal

import (
	"fmt"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/PremakeDevs/premake-dev/internal/actions"
)

func init() {
	for _, a := range registry.Actions() {
		rootCmd.AddCommand(exportCommand(a))
	}
}

// exportCommand builds one subcommand per registered action, named after
// its trigger.
func exportCommand(a *actions.Action) *cobra.Command {
	return &cobra.Command{
		Use:   a.Trigger,
		Short: a.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(a)
		},
	}
}

func runExport(a *actions.Action) error {
	wks, err := loadWorkspace()
	if err != nil {
		return err
	}
	if a.OnWorkspace != nil {
		if err := a.OnWorkspace(wks); err != nil {
			return fmt.Errorf("failed to export workspace %s: %w", wks.Name, err)
		}
	}
	for _, prj := range wks.Projects {
		if !a.Supports(prj) {
			log.Warnf("%s does not support %s projects in %s; generating anyway", a.Trigger, prj.Kind, prj.Language)
		}
		if a.OnProject == nil {
			continue
		}
		if err := a.OnProject(prj); err != nil {
			return fmt.Errorf("failed to export project %s: %w", prj.Name, err)
		}
	}
	return nil
}
