package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No %s file found\n", result.ConfigPath)
		fmt.Fprintf(r.out, "⚠️  Without config, commands require an explicit --org flag\n")
	} else {
		fmt.Fprintln(r.out, "📋 Current config:")
		writeField(r.out, "Organization", notSet(result.Config.Organization))
		writeField(r.out, "Profile", result.Config.Profile)
		writeField(r.out, "API URL", notSet(result.Config.APIURL))
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	}

	if rt := result.Runtime; rt != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "⚙️  Effective settings:")
		writeField(r.out, "Organization", notSet(rt.OrganizationID))
		writeField(r.out, "API URL", notSet(rt.APIURL))
		writeField(r.out, "Token", maskToken(rt.Token))
		writeField(r.out, "Timeout", rt.Timeout.String())
		writeField(r.out, "Attempts", fmt.Sprintf("%d", rt.MaxAttempts))
		writeField(r.out, "Page size", fmt.Sprintf("%d", rt.PageSize))
		if rt.ConfigSource != "" {
			fmt.Fprintf(r.out, "\n📦 Config source: %s (profile %s)\n", getRelativePath(rt.ConfigSource), rt.Profile)
		}
	}

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyProfile:
		fmt.Fprintf(r.out, "✅ Reset profile to: default\n")
	case config.ConfigKeyOrganization:
		fmt.Fprintf(r.out, "✅ Removed organization from config (will be required as --org)\n")
	default:
		fmt.Fprintf(r.out, "✅ Removed %s from config\n", result.Key)
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func notSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func maskToken(token string) string {
	switch {
	case token == "":
		return "(not set)"
	case len(token) <= 8:
		return "********"
	default:
		return token[:4] + "…" + token[len(token)-4:]
	}
}
