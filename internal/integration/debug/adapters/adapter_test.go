package adapters

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/attachcfg/internal/integration/debug/attach"
)

func TestAdapterTypeConstants(t *testing.T) {
	if AdapterPython != "python" {
		t.Errorf("AdapterPython should be 'python'")
	}
	if AdapterDebugpy != "debugpy" {
		t.Errorf("AdapterDebugpy should be 'debugpy'")
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}

	adapters := r.AvailableAdapters()
	if len(adapters) != 2 {
		t.Fatalf("expected 2 registered adapters, got %d", len(adapters))
	}
	if adapters[0] != AdapterDebugpy || adapters[1] != AdapterPython {
		t.Errorf("AvailableAdapters = %v, want sorted [debugpy python]", adapters)
	}
}

func TestRegistry_Create(t *testing.T) {
	r := NewRegistry()

	config := Config{
		Type:   AdapterDebugpy,
		Name:   "Test Config",
		Attach: &attach.ResolvedConfig{Request: "attach", Host: "localhost"},
	}

	adapter, err := r.Create(config)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if adapter.Type() != AdapterDebugpy {
		t.Errorf("expected debugpy adapter, got %v", adapter.Type())
	}
}

func TestRegistry_Create_NoAttach(t *testing.T) {
	r := NewRegistry()

	_, err := r.Create(Config{Type: AdapterPython})
	if err != ErrNoAttachConfig {
		t.Errorf("expected ErrNoAttachConfig, got %v", err)
	}
}

func TestRegistry_Create_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Create(Config{Type: "node"})
	if !errors.Is(err, ErrUnknownAdapter) {
		t.Fatalf("err = %v, want ErrUnknownAdapter", err)
	}
	if !strings.Contains(err.Error(), "[debugpy python]") {
		t.Errorf("error %q does not list the available adapters", err)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	r.Register("python3", NewPythonAdapter)

	if len(r.AvailableAdapters()) != 3 {
		t.Errorf("expected 3 adapters after registration, got %d", len(r.AvailableAdapters()))
	}
}
