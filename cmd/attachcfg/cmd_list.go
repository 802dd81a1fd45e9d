package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/attachcfg/internal/project/workspace"
)

func newListCmd() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the attach configurations of a workspace or launch file",
		Long: `List prints the name and debugger type of every attach configuration in
--workspace-file and --launch-file, in file order. Any listed name can be
passed to resolve or adapter-args with --config-name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, &in)
		},
	}
	cmd.Flags().StringVar(&in.workspaceFile, "workspace-file", "", "A .code-workspace file")
	cmd.Flags().StringVar(&in.launchFile, "launch-file", "", "A launch.json file")
	return cmd
}

func runList(cmd *cobra.Command, in *inputFlags) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	ws, err := in.openWorkspace()
	if err != nil {
		return err
	}
	configs, err := in.launchConfigurations(ws)
	if err != nil {
		return err
	}

	attachConfigs := workspace.AttachConfigurations(configs)
	env.log.Debug("launch configurations read", "total", len(configs), "attach", len(attachConfigs))

	name := color.New(color.Bold)
	kind := color.New(color.Faint)
	if !env.cfg.Output().Color {
		name.DisableColor()
		kind.DisableColor()
	}
	out := cmd.OutOrStdout()
	for _, c := range attachConfigs {
		if _, err := fmt.Fprintf(out, "%s (%s)\n", name.Sprint(c.Name), kind.Sprint(c.Type)); err != nil {
			return fmt.Errorf("writing configurations: %w", err)
		}
	}
	return nil
}
