/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package annotate provides the annotate command for whence.
package annotate

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/whence/config"
	"bennypowers.dev/whence/fs"
	"bennypowers.dev/whence/graph"
	"bennypowers.dev/whence/internal/logger"
)

// Cmd is the annotate cobra command.
var Cmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Add alias dependency types to a dependency graph",
	Long: `Read a dependency-graph result (JSON or YAML), classify every dependency edge
and put the alias dependency types in front of each edge's existing ones.

Examples:
  # Annotate in place
  whence annotate -o results.json results.json

  # Convert to YAML while annotating
  whence annotate --format yaml results.json > results.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "", "Output format: json, yaml (default: from the output or input file name)")
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().Int("concurrency", runtime.GOMAXPROCS(0), "Modules classified in parallel")
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	input := args[0]
	formatFrom := input
	if output != "" {
		formatFrom = output
	}
	format, err := outputFormat(formatFlag, formatFrom)
	if err != nil {
		return err
	}

	root := viper.GetString("root")
	filesystem := fs.NewOSFileSystem()

	project, err := config.LoadOrDefault(filesystem, root).LoadProject(filesystem, root)
	if err != nil {
		return err
	}
	c, err := project.Classifier()
	if err != nil {
		return err
	}

	result, err := graph.Load(filesystem, input)
	if err != nil {
		return err
	}
	if err := graph.Annotate(cmd.Context(), result, c, concurrency); err != nil {
		return err
	}
	logger.Debug("%d of %d edges aliased", result.Aliased(), result.Edges())

	data, err := graph.Encode(result, format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := filesystem.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}
	logger.Info("wrote %s", output)
	return nil
}

// outputFormat returns the requested format, or the one the file name
// suggests when none was requested.
func outputFormat(flag, name string) (graph.Format, error) {
	if flag != "" {
		return graph.ParseFormat(flag)
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return graph.FormatYAML, nil
	default:
		return graph.FormatJSON, nil
	}
}
