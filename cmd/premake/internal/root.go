package internal

import (
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var workspaceFile string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "premake",
	Short: "premake generates build files from resolved workspace descriptions",
	Long: `premake turns a resolved workspace description into concrete build
artifacts: GNU makefiles, or the project files of a registered IDE backend.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFile, "file", "f", "premake.json", "Workspace snapshot to export")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		}
	})
}
