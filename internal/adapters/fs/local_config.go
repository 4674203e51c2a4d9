package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/govctl/internal/domain/config"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// LocalConfigFileName is the per-user state file inside the data dir
const LocalConfigFileName = "config.local.json"

// LocalConfigFile persists the active organization and profile as JSON
type LocalConfigFile struct {
	path string
}

// NewLocalConfigFile creates a LocalConfigFile inside the configured data dir
func NewLocalConfigFile(cfg *config.RuntimeConfig) *LocalConfigFile {
	return &LocalConfigFile{
		path: filepath.Join(cfg.DataDir, LocalConfigFileName),
	}
}

// Exists reports whether the file has been written
func (s *LocalConfigFile) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the file, returning defaults when it does not exist yet
func (s *LocalConfigFile) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return config.DefaultLocalConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	local := config.DefaultLocalConfig()
	if err := json.Unmarshal(data, local); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}
	if local.Profile == "" {
		local.Profile = config.DefaultLocalConfig().Profile
	}
	return local, nil
}

// Save writes the file through a temp file so readers never see a partial write
func (s *LocalConfigFile) Save(ctx context.Context, local *config.LocalConfig) error {
	data, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeAtomic(s.path, append(data, '\n'), 0600)
}

// GetPath returns the path of the file
func (s *LocalConfigFile) GetPath() string {
	return s.path
}

var _ usecase.LocalConfigRepository = (*LocalConfigFile)(nil)
