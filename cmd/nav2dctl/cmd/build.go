package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sceneVal string

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "build a scene's navigation mesh and report its shape",
	Long: `Build authors every obstacle and surface described in a scene file,
settles the pipeline with one Update(), and prints the resulting obstacle,
surface, NavPoint and connection counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, err := LoadScene(sceneVal)
		if err != nil {
			return fmt.Errorf("loading scene: %w", err)
		}
		n, err := scene.Build()
		if err != nil {
			return fmt.Errorf("authoring scene: %w", err)
		}
		if err := n.Update(); err != nil {
			return fmt.Errorf("settling: %w", err)
		}

		fmt.Printf("obstacles: %d\n", len(n.Obstacles()))
		fmt.Printf("surfaces:  %d\n", len(n.Surfaces()))
		fmt.Printf("navpoints: %d\n", len(n.NavPoints()))
		fmt.Printf("connections: %d\n", len(n.Connections()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&sceneVal, "scene", "scene.yml", "scene file to build")
}
