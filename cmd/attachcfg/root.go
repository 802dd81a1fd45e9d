package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "attachcfg",
		Short:         "Resolve Python debugger attach configurations",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("settings", "", "Settings file (TOML or YAML)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("os", "", "Debugger client OS: windows, darwin, linux")

	cmd.AddCommand(
		newResolveCmd(),
		newAdapterArgsCmd(),
		newOptionsCmd(),
		newListCmd(),
	)

	return cmd
}
