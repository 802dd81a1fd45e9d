package workspace

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

var (
	// ErrLaunchNotFound is returned when no launch configuration matches a name.
	ErrLaunchNotFound = errors.New("launch configuration not found")
	// ErrInvalidLaunch is returned for launch data that is not a JSON object.
	ErrInvalidLaunch = errors.New("invalid launch configuration JSON")
)

// LaunchConfiguration is one entry of a "configurations" array.
type LaunchConfiguration struct {
	Name    string
	Type    string
	Request string
	// Raw is the entry's JSON text with comments and trailing commas
	// blanked out.
	Raw []byte
}

// IsAttach reports whether the configuration is an attach request.
func (c LaunchConfiguration) IsAttach() bool {
	return c.Request == "attach"
}

// ParseLaunchConfigurations reads the configurations of a launch section:
// a whole launch.json file or the "launch" value of a workspace file. Both
// may carry // and /* */ comments and trailing commas.
func ParseLaunchConfigurations(data []byte) ([]LaunchConfiguration, error) {
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, ErrInvalidLaunch
	}

	list := gjson.GetBytes(data, "configurations")
	if !list.Exists() {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: configurations must be an array, got %s", ErrInvalidLaunch, list.Type)
	}

	entries := list.Array()
	configs := make([]LaunchConfiguration, 0, len(entries))
	for i, entry := range entries {
		if !entry.IsObject() {
			return nil, fmt.Errorf("%w: configuration %d is not an object", ErrInvalidLaunch, i)
		}
		configs = append(configs, LaunchConfiguration{
			Name:    entry.Get("name").String(),
			Type:    entry.Get("type").String(),
			Request: entry.Get("request").String(),
			Raw:     []byte(entry.Raw),
		})
	}
	return configs, nil
}

// LoadLaunchFile reads the configurations of a launch.json file.
func LoadLaunchFile(path string) ([]LaunchConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	configs, err := ParseLaunchConfigurations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return configs, nil
}

// FindLaunchConfiguration returns the first configuration named name,
// ignoring case.
func FindLaunchConfiguration(configs []LaunchConfiguration, name string) (LaunchConfiguration, error) {
	for _, c := range configs {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return LaunchConfiguration{}, fmt.Errorf("%w: %q", ErrLaunchNotFound, name)
}

// AttachConfigurations keeps only the attach requests of configs.
func AttachConfigurations(configs []LaunchConfiguration) []LaunchConfiguration {
	var result []LaunchConfiguration
	for _, c := range configs {
		if c.IsAttach() {
			result = append(result, c)
		}
	}
	return result
}
