package usecase

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/config"
)

// ShowConfigResult contains the local config together with the resolved runtime settings
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool
	Runtime    *config.RuntimeConfig
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config *config.RuntimeConfig
	repo   LocalConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, repo LocalConfigRepository) *ShowConfig {
	return &ShowConfig{
		config: cfg,
		repo:   repo,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.repo.Exists()

	local, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     local,
		ConfigPath: uc.repo.GetPath(),
		Exists:     exists,
		Runtime:    uc.config,
	}, nil
}

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	repo LocalConfigRepository
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(repo LocalConfigRepository) *SetConfig {
	return &SetConfig{repo: repo}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(params.Value)
	if value == "" {
		return nil, domain.Required("value")
	}
	if key == config.ConfigKeyAPIURL {
		if u, err := url.Parse(value); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, domain.ValidationErr{Fields: []string{"api-url"}, Reason: fmt.Sprintf("invalid URL %q", value)}
		}
	}

	local, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case config.ConfigKeyOrganization:
		local.Organization = value
	case config.ConfigKeyProfile:
		local.Profile = value
	case config.ConfigKeyAPIURL:
		local.APIURL = value
	}

	if err := uc.repo.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.repo.GetPath(),
		Key:           key,
		Value:         value,
	}, nil
}

// RemoveConfigParams contains parameters for removing configuration
type RemoveConfigParams struct {
	Key string
}

// RemoveConfigResult contains the result of removing configuration
type RemoveConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	RemovedValue  string
}

// RemoveConfig is a use case for removing configuration values
type RemoveConfig struct {
	repo LocalConfigRepository
}

// NewRemoveConfig creates a new RemoveConfig use case
func NewRemoveConfig(repo LocalConfigRepository) *RemoveConfig {
	return &RemoveConfig{repo: repo}
}

// Run executes the remove config use case
func (uc *RemoveConfig) Run(ctx context.Context, params RemoveConfigParams) (*RemoveConfigResult, error) {
	if !uc.repo.Exists() {
		path := uc.repo.GetPath()
		if cwd, err := os.Getwd(); err == nil {
			if relPath, err := filepath.Rel(cwd, path); err == nil {
				path = relPath
			}
		}
		return nil, fmt.Errorf("no config file found at %s", path)
	}

	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	local, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var removed string
	switch key {
	case config.ConfigKeyOrganization:
		removed, local.Organization = local.Organization, ""
	case config.ConfigKeyProfile:
		removed, local.Profile = local.Profile, config.DefaultLocalConfig().Profile
	case config.ConfigKeyAPIURL:
		removed, local.APIURL = local.APIURL, ""
	}

	if err := uc.repo.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &RemoveConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.repo.GetPath(),
		Key:           key,
		RemovedValue:  removed,
	}, nil
}

func parseConfigKey(raw string) (config.ConfigKey, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if !config.IsValidConfigKey(key) {
		valid := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string {
			if k == config.ConfigKeyOrganization {
				return string(k) + " (org)"
			}
			return string(k)
		})
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(valid, ", "))
	}
	return config.NormalizeConfigKey(key), nil
}
