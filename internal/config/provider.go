package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/govctl/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}

	cwd, _ := os.Getwd()
	govFilePath := findGovFile(cwd, dataDir)
	govFile, err := loadGovFile(govFilePath)
	if err != nil {
		return nil, err
	}

	// Profile values sit below flags, env and the local config file
	profileName := v.GetString("profile")
	if govFile != nil {
		if profile, ok := govFile.Profile[profileName]; ok {
			applyProfileDefaults(v, profile)
		} else if profileName != "default" {
			return nil, fmt.Errorf("profile %q not found in %s", profileName, govFilePath)
		}
	}

	cfg := &config.RuntimeConfig{
		DataDir:        dataDir,
		APIURL:         strings.TrimRight(v.GetString("api_url"), "/"),
		Token:          v.GetString("token"),
		Profile:        profileName,
		OrganizationID: v.GetString("organization"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Output:         config.OutputFormat(strings.ToLower(v.GetString("output"))),
		Timeout:        v.GetDuration("timeout"),
		MaxAttempts:    v.GetInt("max_attempts"),
		PageSize:       v.GetInt("page_size"),
		ConfigSource:   govFilePath,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyProfileDefaults(v *viper.Viper, profile config.ProfileConfig) {
	if profile.APIURL != "" {
		v.SetDefault("api_url", profile.APIURL)
	}
	if profile.Token != "" {
		v.SetDefault("token", profile.Token)
	}
	if profile.Organization != "" {
		v.SetDefault("organization", profile.Organization)
	}
	if profile.Timeout != "" {
		v.SetDefault("timeout", profile.Timeout)
	}
	if profile.MaxAttempts > 0 {
		v.SetDefault("max_attempts", profile.MaxAttempts)
	}
	if profile.PageSize > 0 {
		v.SetDefault("page_size", profile.PageSize)
	}
}

func validate(cfg *config.RuntimeConfig) error {
	switch cfg.Output {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
	default:
		return fmt.Errorf("invalid output format: %s (valid: table, json, yaml)", cfg.Output)
	}

	if cfg.APIURL != "" {
		u, err := url.Parse(cfg.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid api url: %q", cfg.APIURL)
		}
	}

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 25
	}

	return nil
}

// DefaultDataDir returns GOVCTL_HOME or ~/.govctl
func DefaultDataDir() string {
	if home := os.Getenv("GOVCTL_HOME"); home != "" {
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".govctl"
	}
	return filepath.Join(homeDir, ".govctl")
}

// SetupViper creates and configures a viper instance
func SetupViper(dataDir string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(dataDir)

	// Set up environment variables
	v.SetEnvPrefix("GOVCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("profile", "default")
	v.SetDefault("timeout", "30s")
	v.SetDefault("max_attempts", 1)
	v.SetDefault("page_size", 25)
	v.SetDefault("output", string(config.OutputTable))
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("data_dir", dataDir)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	// Only the global flags are configuration; command-local flags stay local
	if cmd != nil {
		cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// flagKey maps a flag name to its viper key ("api-url" -> "api_url", "org" -> "organization")
func flagKey(name string) string {
	if name == "org" {
		return "organization"
	}
	return strings.ReplaceAll(name, "-", "_")
}
