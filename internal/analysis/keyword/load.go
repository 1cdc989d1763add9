package keyword

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// file is the on-disk layout. [[reply]] tables keep declaration order, which a
// plain TOML table would not.
//
//	default = "..."
//
//	[[reply]]
//	key = "مرحبا"
//	reply = "..."
type file struct {
	Default string  `toml:"default"`
	Reply   []Entry `toml:"reply"`
}

// Load reads a table from a TOML file.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword table %s: %w", path, err)
	}
	return Parse(string(raw))
}

// Parse decodes a table from TOML text.
func Parse(data string) (*Table, error) {
	var f file
	meta, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode keyword table: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("decode keyword table: unknown keys %s", strings.Join(keys, ", "))
	}
	return New(f.Reply, f.Default)
}

// LoadOrSeed returns the table at path, or the built-in one when path is empty.
func LoadOrSeed(path string) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return Seed(), nil
	}
	return Load(path)
}
