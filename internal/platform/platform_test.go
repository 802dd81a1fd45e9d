package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		windows bool
		mac     bool
		linux   bool
	}{
		{"windows", true, false, false},
		{"Win32", true, false, false},
		{"darwin", false, true, false},
		{"macOS", false, true, false},
		{"linux", false, false, true},
		{" Linux ", false, false, true},
		{"freebsd", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Parse(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.windows, info.IsWindows())
			assert.Equal(t, tt.mac, info.IsMac())
			assert.Equal(t, tt.linux, info.IsLinux())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	info, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Current(), info)
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("plan9-ish")
	require.ErrorIs(t, err, ErrUnknownOS)
}

func TestFromGOOS(t *testing.T) {
	assert.True(t, FromGOOS("windows").IsWindows())
	assert.True(t, FromGOOS("darwin").IsMac())
	assert.True(t, FromGOOS("linux").IsLinux())
	assert.Equal(t, FamilyOther, FromGOOS("solaris").OS)
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "windows", FamilyWindows.String())
	assert.Equal(t, "darwin", FamilyMac.String())
	assert.Equal(t, "linux", FamilyLinux.String())
	assert.Equal(t, "other", FamilyOther.String())
}
