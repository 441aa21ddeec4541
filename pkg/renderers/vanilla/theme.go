package vanilla

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeSet selects among registered go-theme manifests. Registration goes
// through a go-theme registry so malformed manifests are rejected up front.
type ThemeSet struct {
	registry  manifestRegistry
	manifests map[string]*theme.Manifest
}

type manifestRegistry interface {
	Register(manifest *theme.Manifest) error
}

var _ theme.ThemeSelector = (*ThemeSet)(nil)

// NewThemeSet registers manifests in order.
func NewThemeSet(manifests ...*theme.Manifest) (*ThemeSet, error) {
	set := &ThemeSet{
		registry:  theme.NewRegistry(),
		manifests: make(map[string]*theme.Manifest, len(manifests)),
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := set.registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("vanilla: register theme %q: %w", manifest.Name, err)
		}
		set.manifests[manifest.Name] = manifest
	}
	return set, nil
}

// Select implements theme.ThemeSelector. Unknown variants fall back to the
// base manifest.
func (s *ThemeSet) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("vanilla: theme %q not registered", name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// themeTokens merges the base tokens with the selected variant's.
func themeTokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}

// cssVars turns tokens into custom properties ("brand" becomes "--brand").
func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

// stylesheetURL resolves the "vanilla.stylesheet" asset of the selection.
func stylesheetURL(selection *theme.Selection) string {
	if selection == nil || selection.Manifest == nil {
		return ""
	}
	const key = "vanilla.stylesheet"
	assets := selection.Manifest.Assets
	file := assets.Files[key]
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		if override := variant.Assets.Files[key]; override != "" {
			file = override
		}
	}
	if file == "" {
		return ""
	}
	if assets.Prefix == "" {
		return file
	}
	return strings.TrimRight(assets.Prefix, "/") + "/" + strings.TrimLeft(file, "/")
}
