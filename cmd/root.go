/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for whence.
package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/whence/cmd/annotate"
	"bennypowers.dev/whence/cmd/classify"
	"bennypowers.dev/whence/cmd/version"
	"bennypowers.dev/whence/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "whence",
	Short: "Explain how module specifiers resolved",
	Long: `whence explains whether a resolved JavaScript or TypeScript import went through
an aliasing mechanism: a bundler alias, typechecker paths or baseUrl, a
package.json subpath import, or a workspace package.

Project settings are read from .config/whence.{yaml,yml,json} below --root.
Global flags may also be set with WHENCE_ environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("WHENCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(classify.Cmd)
	rootCmd.AddCommand(annotate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
