// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/DataDog/dlist-internal-go/internal/config"
	"github.com/DataDog/dlist-internal-go/internal/demo"
)

const (
	diagnosticsFlag = "diagnostics"
	separatorFlag   = "separator"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dlist-demo",
		Short:        "Replay the doubly linked list demonstration",
		Long:         "Replay a fixed sequence of list operations, narrating the outcome of each one and printing the list after the insertions and after the deletion.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := applyFlags(config.New(), cmd.Flags())
			_, err := demo.Run(cmd.OutOrStdout(), cfg)
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.Bool(diagnosticsFlag, config.DefaultDiagnosticsEnabled, "narrate the outcome of every list operation (overrides "+config.EnvDiagnosticsEnabled+")")
	flags.String(separatorFlag, config.DefaultDisplaySeparator, "separator placed between payloads when printing the list (overrides "+config.EnvDisplaySeparator+")")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", path.Base(os.Args[0]), version)
		},
	})

	return rootCmd
}

// applyFlags overrides cfg with the flags the user explicitly set.
func applyFlags(cfg config.Config, flags *pflag.FlagSet) config.Config {
	if flags.Changed(diagnosticsFlag) {
		cfg.DiagnosticsEnabled, _ = flags.GetBool(diagnosticsFlag)
	}
	if flags.Changed(separatorFlag) {
		cfg.DisplaySeparator, _ = flags.GetString(separatorFlag)
	}
	return cfg
}
