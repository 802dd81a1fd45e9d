package main

import (
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "resolve [file|-]",
		Short: "Fill in the defaults of an attach configuration",
		Long: `Resolve reads a partial attach configuration and prints it with every
missing field filled in. Keys already present are left exactly as written.

The configuration is read from a JSON or YAML file, from stdin when the
argument is "-", or from a named launch configuration (--config-name).
With no input an empty configuration is resolved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, &in)
		},
	}
	addInputFlags(cmd, &in)
	cmd.Flags().String("output", "", "Output format: json or yaml")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string, in *inputFlags) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	ws, err := in.openWorkspace()
	if err != nil {
		return err
	}
	r, err := in.newResolver(env, ws)
	if err != nil {
		return err
	}
	folder, err := in.explicitFolder(ws)
	if err != nil {
		return err
	}
	raw, err := in.readRequest(cmd, args, ws)
	if err != nil {
		return err
	}

	doc, err := r.ResolveDocument(ctx, folder, raw)
	if err != nil {
		return err
	}
	return writeDocument(cmd.OutOrStdout(), doc, env.cfg.Output())
}
