package page

import (
	"errors"
	"fmt"
	"io"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// StylesheetAsset is the manifest asset key for the page stylesheet.
const StylesheetAsset = "page.stylesheet"

// Theme is the resolved view of a go-theme manifest handed to templates.
type Theme struct {
	Name       string            `json:"name"`
	Variant    string            `json:"variant"`
	Tokens     map[string]string `json:"tokens"`
	Stylesheet string            `json:"stylesheet"`
}

// ResolveTheme merges a manifest with one of its variants. Variant tokens and
// asset files override the base manifest; an unknown variant is an error.
func ResolveTheme(manifest *theme.Manifest, variant string) (*Theme, error) {
	if manifest == nil {
		return nil, errors.New("page: theme manifest is required")
	}
	variant = strings.TrimSpace(variant)

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	files := make(map[string]string, len(manifest.Assets.Files))
	for key, value := range manifest.Assets.Files {
		files[key] = value
	}
	prefix := manifest.Assets.Prefix

	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("page: theme %q has no variant %q", manifest.Name, variant)
		}
		for key, value := range v.Tokens {
			tokens[key] = value
		}
		for key, value := range v.Assets.Files {
			files[key] = value
		}
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	resolved := &Theme{
		Name:    manifest.Name,
		Variant: variant,
		Tokens:  tokens,
	}
	if file := files[StylesheetAsset]; file != "" {
		resolved.Stylesheet = assetURL(prefix, file)
	}
	return resolved, nil
}

func assetURL(prefix, file string) string {
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Assets   assetsFile             `yaml:"assets"`
	Variants map[string]variantFile `yaml:"variants"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
	Assets assetsFile        `yaml:"assets"`
}

// LoadManifest reads a YAML or JSON theme manifest.
func LoadManifest(r io.Reader) (*theme.Manifest, error) {
	var raw manifestFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("page: decode theme manifest: %w", err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, errors.New("page: theme manifest name is required")
	}

	manifest := &theme.Manifest{
		Name:    strings.TrimSpace(raw.Name),
		Version: raw.Version,
		Tokens:  raw.Tokens,
		Assets: theme.Assets{
			Prefix: raw.Assets.Prefix,
			Files:  raw.Assets.Files,
		},
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, v := range raw.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens: v.Tokens,
				Assets: theme.Assets{
					Prefix: v.Assets.Prefix,
					Files:  v.Assets.Files,
				},
			}
		}
	}
	return manifest, nil
}
