package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/attachcfg/internal/integration/debug/adapters"
	"github.com/dshills/attachcfg/internal/integration/debug/attach"
)

func newAdapterArgsCmd() *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "adapter-args [file|-]",
		Short: "Print the debugpy attach arguments for a configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdapterArgs(cmd, args, &in)
		},
	}
	addInputFlags(cmd, &in)
	cmd.Flags().String("output", "", "Output format: json or yaml")
	cmd.Flags().Bool("command", false, "Print the adapter command line instead")
	return cmd
}

func runAdapterArgs(cmd *cobra.Command, args []string, in *inputFlags) error {
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

	req, err := attach.ParseRequest(raw)
	if err != nil {
		return err
	}
	resolved, err := r.Resolve(ctx, folder, req)
	if err != nil {
		return err
	}

	adapterType := adapters.AdapterPython
	if resolved.Type != "" {
		adapterType = adapters.AdapterType(resolved.Type)
	}
	adapter, err := adapters.NewRegistry().Create(adapters.Config{
		Type:        adapterType,
		Name:        resolved.Name,
		AdapterPath: env.cfg.Adapter().PythonPath,
		LogToFile:   env.cfg.Adapter().LogToFile,
		Attach:      resolved,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showCommand, _ := cmd.Flags().GetBool("command"); showCommand {
		c, err := adapter.GetCommand()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, strings.Join(c.Args, " "))
		return err
	}

	if err := adapter.Validate(); err != nil {
		return fmt.Errorf("%s: %w", adapter.Name(), err)
	}
	attachArgs, err := adapter.GetAttachArgs()
	if err != nil {
		return err
	}
	env.log.Debug("attach arguments built",
		"adapter", string(adapter.Type()),
		"connection", adapter.GetConnectionType(),
		"address", adapter.GetAddress(),
	)
	return writeValue(out, attachArgs, env.cfg.Output())
}
