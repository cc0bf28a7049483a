package plugin

import (
	"fmt"
	"plugin"
)

// Plugin is an extra built-in loaded from a shared object. Plugins always
// run in the shell's foreground; they never honor a background marker.
type Plugin interface {
	Name() string
	Execute(args []string) error
}

// Load opens a Go plugin and resolves its exported Plugin symbol.
func Load(path string) (Plugin, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plugin %s: %w", path, err)
	}

	sym, err := p.Lookup("Plugin")
	if err != nil {
		return nil, fmt.Errorf("plugin %s does not export 'Plugin' symbol: %w", path, err)
	}

	switch plug := sym.(type) {
	case Plugin:
		return plug, nil
	case *Plugin:
		return *plug, nil
	default:
		return nil, fmt.Errorf("plugin %s does not implement the Plugin interface", path)
	}
}

// LoadAll loads every listed plugin, keyed by name. Duplicate names are an
// error rather than a silent shadow.
func LoadAll(paths []string) (map[string]Plugin, error) {
	plugins := make(map[string]Plugin, len(paths))
	for _, path := range paths {
		plug, err := Load(path)
		if err != nil {
			return nil, err
		}
		if _, ok := plugins[plug.Name()]; ok {
			return nil, fmt.Errorf("duplicate plugin name %q from %s", plug.Name(), path)
		}
		plugins[plug.Name()] = plug
	}
	return plugins, nil
}
