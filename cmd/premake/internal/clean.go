package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanAction string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove files generated by an action",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanAction, "action", "gmake", "Action whose generated files to remove")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	a, err := registry.Lookup(cleanAction)
	if err != nil {
		return err
	}
	wks, err := loadWorkspace()
	if err != nil {
		return err
	}
	for _, prj := range wks.Projects {
		if a.OnCleanTarget != nil {
			if err := a.OnCleanTarget(prj); err != nil {
				return fmt.Errorf("failed to clean targets of %s: %w", prj.Name, err)
			}
		}
		if a.OnCleanProject != nil {
			if err := a.OnCleanProject(prj); err != nil {
				return fmt.Errorf("failed to clean project %s: %w", prj.Name, err)
			}
		}
	}
	if a.OnCleanWorkspace != nil {
		if err := a.OnCleanWorkspace(wks); err != nil {
			return fmt.Errorf("failed to clean workspace %s: %w", wks.Name, err)
		}
	}
	return nil
}
