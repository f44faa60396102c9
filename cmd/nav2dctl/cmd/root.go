package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "nav2dctl",
	Short: "build and inspect nav2d navigation meshes",
	Long: `nav2dctl is the command-line companion to nav2d:
	- author a scene of obstacles and surfaces in YAML,
	- build it into a navigation graph,
	- report the resulting obstacle, surface, NavPoint and connection counts.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once by
// main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
