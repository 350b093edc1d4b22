package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icv/internal/colour"
)

// Palette presets selectable with --preset.
const (
	PresetLight = "light"
	PresetDark  = "dark"
)

// paletteFlags binds a preset and per role overrides to a command.
type paletteFlags struct {
	preset    string
	overrides map[colour.Role]*string
}

func addPaletteFlags(cmd *cobra.Command) *paletteFlags {
	pf := &paletteFlags{overrides: make(map[colour.Role]*string, 4)}

	cmd.Flags().StringVar(&pf.preset, "preset", PresetLight, "base palette (light, dark)")
	usage := map[colour.Role]struct{ name, help string }{
		colour.RoleBackground: {"bg", "background colour"},
		colour.RoleText:       {"text", "text colour"},
		colour.RolePrimary:    {"primary", "primary (accent) colour"},
		colour.RoleSecondary:  {"secondary", "secondary (surface) colour"},
	}
	for _, role := range colour.Roles() {
		u := usage[role]
		pf.overrides[role] = cmd.Flags().String(u.name, "", u.help+" (hex or CSS name, default: from preset)")
	}
	return pf
}

// palette returns the preset with every given override applied.
func (pf *paletteFlags) palette() (colour.Palette, error) {
	p, err := presetPalette(pf.preset)
	if err != nil {
		return colour.Palette{}, err
	}
	for _, role := range colour.Roles() {
		value := *pf.overrides[role]
		if value == "" {
			continue
		}
		p = p.With(role, resolveColour(value))
	}
	return p, nil
}

func presetPalette(name string) (colour.Palette, error) {
	switch strings.ToLower(name) {
	case PresetLight:
		return colour.LightPalette(), nil
	case PresetDark:
		return colour.DarkPalette(), nil
	default:
		return colour.Palette{}, fmt.Errorf("invalid preset: %s (valid: %s, %s)", name, PresetLight, PresetDark)
	}
}

// resolveColour maps CSS colour names to hex. Anything else is passed through
// untouched so the configured invalid-colour policy decides what happens.
func resolveColour(value string) string {
	if hex, ok := colour.ResolveName(value); ok {
		return hex
	}
	return value
}

// parsePaletteArg parses a compare operand. It accepts a preset name or four
// comma separated colours (background,text,primary,secondary), optionally
// prefixed with "name=".
func parsePaletteArg(arg string) (string, colour.Palette, error) {
	name, spec, named := strings.Cut(arg, "=")
	if !named {
		spec = arg
		name = arg
	}

	if !strings.Contains(spec, ",") {
		p, err := presetPalette(strings.TrimSpace(spec))
		return name, p, err
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return "", colour.Palette{}, fmt.Errorf("palette %q: expected 4 colours (background,text,primary,secondary), got %d", arg, len(parts))
	}
	if !named {
		name = "custom"
	}

	var p colour.Palette
	for i, role := range colour.Roles() {
		p = p.With(role, resolveColour(strings.TrimSpace(parts[i])))
	}
	return name, p, nil
}
