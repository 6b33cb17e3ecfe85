package main

import (
	"os"

	"github.com/ford442/candy-world/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mapgen",
		Short: "Candy World declarative placement manifest generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var out string
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Run the full placement pipeline and write the map manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			projectPath := ""
			if len(args) == 1 {
				projectPath = args[0]
			}
			return runGenerate(projectPath, out, seed)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "override the manifest output path")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 derives one from the clock)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate generation parameters without running the pipeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			projectPath := ""
			if len(args) == 1 {
				projectPath = args[0]
			}
			return runValidate(projectPath)
		},
	}
}

func schemaCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Write the JSON schema of the manifest contract",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSchema(out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "assets/map.schema.json", "path to write the JSON schema")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with on-demand generation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			projectPath := ""
			if len(args) == 1 {
				projectPath = args[0]
			}
			srv := server.New(projectPath, port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
