// Package platform reports the operating system family of the debugger host.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnknownOS is returned by Parse for an unrecognized OS name.
var ErrUnknownOS = errors.New("unknown operating system")

// Family identifies an operating system family.
type Family int

const (
	// FamilyOther is any OS that is not Windows, macOS or Linux.
	FamilyOther Family = iota
	// FamilyWindows is Microsoft Windows.
	FamilyWindows
	// FamilyMac is Apple macOS.
	FamilyMac
	// FamilyLinux is Linux.
	FamilyLinux
)

// String returns a string representation of the family.
func (f Family) String() string {
	switch f {
	case FamilyWindows:
		return "windows"
	case FamilyMac:
		return "darwin"
	case FamilyLinux:
		return "linux"
	default:
		return "other"
	}
}

// Info describes the platform the debugger client runs on.
type Info struct {
	OS Family
}

// Current returns the platform of the running process.
func Current() Info {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a runtime.GOOS value to platform info.
// Unrecognized values map to FamilyOther.
func FromGOOS(goos string) Info {
	switch goos {
	case "windows":
		return Info{OS: FamilyWindows}
	case "darwin":
		return Info{OS: FamilyMac}
	case "linux":
		return Info{OS: FamilyLinux}
	default:
		return Info{OS: FamilyOther}
	}
}

// Parse parses a user-supplied OS name such as "windows", "macos" or "linux".
// An empty name yields the current platform.
func Parse(name string) (Info, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Current(), nil
	case "windows", "win", "win32":
		return Info{OS: FamilyWindows}, nil
	case "darwin", "macos", "mac", "osx":
		return Info{OS: FamilyMac}, nil
	case "linux":
		return Info{OS: FamilyLinux}, nil
	case "other", "unix", "freebsd", "openbsd", "netbsd":
		return Info{OS: FamilyOther}, nil
	default:
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownOS, name)
	}
}

// IsWindows reports whether the platform is Windows.
func (i Info) IsWindows() bool { return i.OS == FamilyWindows }

// IsMac reports whether the platform is macOS.
func (i Info) IsMac() bool { return i.OS == FamilyMac }

// IsLinux reports whether the platform is Linux.
func (i Info) IsLinux() bool { return i.OS == FamilyLinux }

// String returns the OS family name.
func (i Info) String() string { return i.OS.String() }
