package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/attachcfg/internal/integration/debug/attach"
)

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the default debugOptions for the client OS",
		Args:  cobra.NoArgs,
		RunE:  runOptions,
	}
	cmd.Flags().Bool("all", false, "List every known option, marking the defaults")
	return cmd
}

func runOptions(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")

	defaults := attach.DefaultDebugOptions(env.platform)

	on := color.New(color.FgGreen, color.Bold)
	off := color.New(color.Faint)
	if !env.cfg.Output().Color {
		on.DisableColor()
		off.DisableColor()
	}

	out := cmd.OutOrStdout()
	if !all {
		for _, opt := range defaults {
			if _, err := on.Fprintln(out, opt); err != nil {
				return err
			}
		}
		return nil
	}

	for _, opt := range attach.KnownOptions() {
		var err error
		if slices.Contains(defaults, opt) {
			_, err = on.Fprintf(out, "* %s\n", opt)
		} else {
			_, err = off.Fprintf(out, "  %s\n", opt)
		}
		if err != nil {
			return fmt.Errorf("writing options: %w", err)
		}
	}
	return nil
}
