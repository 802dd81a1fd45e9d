package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/dshills/attachcfg/internal/editor"
	"github.com/dshills/attachcfg/internal/integration/debug/attach"
	"github.com/dshills/attachcfg/internal/logging"
	"github.com/dshills/attachcfg/internal/project/workspace"
)

// inputFlags describe where a request comes from and the editor state it
// is resolved against.
type inputFlags struct {
	workspaces    []string
	workspaceFile string
	launchFile    string
	folder        string
	activeFile    string
	language      string
	configName    string
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	f := cmd.Flags()
	f.StringArrayVarP(&in.workspaces, "workspace", "w", nil, "Workspace folder (repeatable, in order)")
	f.StringVar(&in.workspaceFile, "workspace-file", "", "A .code-workspace file supplying folders and launch configurations")
	f.StringVar(&in.launchFile, "launch-file", "", "A launch.json file to pick --config-name from")
	f.StringVar(&in.folder, "folder", "", "Folder to resolve against instead of inferring one")
	f.StringVar(&in.activeFile, "active-file", "", "Path of the document open in the editor")
	f.StringVar(&in.language, "language", "", "Language ID of the active document (detected from the extension by default)")
	f.StringVar(&in.configName, "config-name", "", "Name of the launch configuration to resolve")
}

func (in *inputFlags) openWorkspace() (*workspace.Workspace, error) {
	if in.workspaceFile != "" {
		ws, err := workspace.OpenFromWorkspaceFile(in.workspaceFile)
		if err != nil {
			return nil, err
		}
		for _, p := range in.workspaces {
			if err := ws.AddFolder(p); err != nil && !errors.Is(err, workspace.ErrFolderExists) {
				return nil, err
			}
		}
		return ws, nil
	}
	if len(in.workspaces) > 0 {
		return workspace.NewFromPaths(in.workspaces...)
	}
	return workspace.New(), nil
}

func (in *inputFlags) activeEditor() (editor.ActiveEditor, error) {
	if in.activeFile == "" {
		return editor.NoActiveEditor(), nil
	}
	path, err := filepath.Abs(in.activeFile)
	if err != nil {
		return nil, err
	}
	doc := editor.NewDocument(path)
	if in.language != "" {
		doc.LanguageID = in.language
	}
	return editor.NewStatic(doc), nil
}

// explicitFolder returns the --folder value as a workspace folder, reusing
// the workspace's entry when it has one. It returns nil when unset.
func (in *inputFlags) explicitFolder(ws *workspace.Workspace) (*workspace.Folder, error) {
	if in.folder == "" {
		return nil, nil
	}
	path, err := filepath.Abs(in.folder)
	if err != nil {
		return nil, err
	}
	if f, ok := ws.Lookup(path); ok {
		return &f, nil
	}
	f := workspace.NewFolder(path)
	return &f, nil
}

func (in *inputFlags) newResolver(env *runEnv, ws *workspace.Workspace) (*attach.Resolver, error) {
	ed, err := in.activeEditor()
	if err != nil {
		return nil, err
	}
	return attach.NewResolver(env.platform, ed, ws,
		attach.WithLogger(logging.WithComponent(env.log, "attach")),
	), nil
}

// launchConfigurations returns the workspace file's configurations followed
// by those of --launch-file.
func (in *inputFlags) launchConfigurations(ws *workspace.Workspace) ([]workspace.LaunchConfiguration, error) {
	configs := ws.LaunchConfigurations()
	if in.launchFile != "" {
		fromFile, err := workspace.LoadLaunchFile(in.launchFile)
		if err != nil {
			return nil, err
		}
		configs = append(configs, fromFile...)
	}
	return configs, nil
}

// readRequest returns the attach request as a JSON object. The request is
// taken from a named launch configuration, a file, stdin ("-"), or is empty
// when none is given. YAML input is converted to JSON.
func (in *inputFlags) readRequest(cmd *cobra.Command, args []string, ws *workspace.Workspace) ([]byte, error) {
	if in.configName != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--config-name cannot be combined with an input file")
		}
		configs, err := in.launchConfigurations(ws)
		if err != nil {
			return nil, err
		}
		lc, err := workspace.FindLaunchConfiguration(configs, in.configName)
		if err != nil {
			return nil, err
		}
		return lc.Raw, nil
	}

	if len(args) == 0 {
		return []byte("{}"), nil
	}

	var (
		data []byte
		err  error
	)
	name := args[0]
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	return requestJSON(name, data)
}

// requestJSON normalizes request text to JSON. JSON input may carry
// comments and trailing commas, which are blanked out; everything else
// keeps its formatting and key order.
func requestJSON(name string, data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []byte("{}"), nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	isYAML := ext == ".yaml" || ext == ".yml"
	if !isYAML {
		if j := bytes.TrimSpace(jsonc.ToJSON(trimmed)); len(j) > 0 && j[0] == '{' {
			return j, nil
		}
	}

	var v any
	if err := yaml.Unmarshal(trimmed, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting %s to JSON: %w", name, err)
	}
	return out, nil
}
