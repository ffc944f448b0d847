/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify provides the classify command for whence.
package classify

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	classifylib "bennypowers.dev/whence/classify"
	"bennypowers.dev/whence/config"
	"bennypowers.dev/whence/fs"
)

// Cmd is the classify cobra command.
var Cmd = &cobra.Command{
	Use:   "classify <specifier> <resolved>",
	Short: "Classify one resolved specifier",
	Long: `Print the dependency types explaining how a specifier resolved to a file.

Flags override the project configuration.

Examples:
  # Subpath import declared in package.json
  whence classify '#utils/date.js' src/utils/date.js

  # Bundler alias given on the command line
  whence classify --alias @=./src @/thing.js src/thing.js

  # Which mechanism and rule matched, as JSON
  whence classify --explain --format json @app/main src/app/main.ts`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().String("manifest", "", "Path of the package manifest (relative to --root)")
	Cmd.Flags().String("tsconfig", "", "Path of tsconfig.json (relative to --root)")
	Cmd.Flags().StringArray("alias", nil, "Bundler alias as key=target (repeatable)")
	Cmd.Flags().String("base-directory", "", "Base directory alias targets are interpreted against")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	Cmd.Flags().Bool("explain", false, "Show the mechanism and rule that matched")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	explain, _ := cmd.Flags().GetBool("explain")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (expected text or json)", format)
	}

	root := viper.GetString("root")
	filesystem := fs.NewOSFileSystem()

	cfg := config.LoadOrDefault(filesystem, root)
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	project, err := cfg.LoadProject(filesystem, root)
	if err != nil {
		return err
	}
	c, err := project.Classifier()
	if err != nil {
		return err
	}

	return writeVerdict(cmd.OutOrStdout(), c.Explain(args[0], args[1]), format, explain)
}

// applyFlags overrides cfg with the flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Manifest, _ = flags.GetString("manifest")
	}
	if flags.Changed("tsconfig") {
		cfg.TSConfig.Path, _ = flags.GetString("tsconfig")
		cfg.TSConfig.Disabled = false
	}
	if flags.Changed("base-directory") {
		cfg.BaseDirectory, _ = flags.GetString("base-directory")
	}
	if flags.Changed("alias") {
		specs, _ := flags.GetStringArray("alias")
		alias, err := parseAliases(specs)
		if err != nil {
			return err
		}
		cfg.Alias = alias
	}
	return nil
}

func parseAliases(specs []string) (map[string]string, error) {
	alias := make(map[string]string, len(specs))
	for _, spec := range specs {
		key, target, found := strings.Cut(spec, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid alias %q: expected key=target", spec)
		}
		alias[key] = target
	}
	return alias, nil
}

func writeVerdict(w io.Writer, v classifylib.Verdict, format string, explain bool) error {
	if format == "json" {
		var payload any = v.Tags
		if explain {
			payload = v
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	if !explain {
		if v.Matched() {
			_, err := fmt.Fprintln(w, strings.Join(v.Tags, " "))
			return err
		}
		return nil
	}

	if !v.Matched() {
		_, err := fmt.Fprintln(w, "not aliased")
		return err
	}
	label := cases.Title(language.English).String(string(v.Origin))
	_, err := fmt.Fprintf(w, "%s: %s\n  %s\n", label, v.Rule, strings.Join(v.Tags, " "))
	return err
}
