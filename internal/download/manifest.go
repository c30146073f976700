package download

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// manifestEntry is one file in a manifest.
type manifestEntry struct {
	URL      string   `yaml:"url"`
	Name     string   `yaml:"name"`
	Hash     string   `yaml:"hash"`
	HashType string   `yaml:"hashType"`
	Rename   []string `yaml:"rename"`
	Browser  bool     `yaml:"browser"`
}

type manifest struct {
	Files []manifestEntry `yaml:"files"`
}

// ParseManifest reads extra files from a YAML document of the form:
//
//	files:
//	  - url: https://example.com/plugin.zip
//	    name: plugin.zip
//	    hash: 9f86d081...
//	    rename: [plugin-1.0, plugin]
func ParseManifest(data []byte) ([]File, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cannot parse manifest: %v", err)
	}
	files := make([]File, 0, len(m.Files))
	for i, e := range m.Files {
		if e.URL == "" || e.Name == "" {
			return nil, fmt.Errorf("manifest entry %d: url and name are required", i)
		}
		if len(e.Rename) != 0 && len(e.Rename) != 2 {
			return nil, fmt.Errorf("manifest entry %d (%s): rename must hold two names, got %d", i, e.Name, len(e.Rename))
		}
		switch e.HashType {
		case "", "sha256", "md5":
		default:
			return nil, fmt.Errorf("manifest entry %d (%s): unsupported hash type %q", i, e.Name, e.HashType)
		}
		files = append(files, File{
			url:      e.URL,
			Name:     e.Name,
			hash:     e.Hash,
			hashType: e.HashType,
			Rename:   e.Rename,
			Browser:  e.Browser,
		})
	}
	return files, nil
}

// LoadManifest reads the manifest at path.
func LoadManifest(path string) ([]File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}
