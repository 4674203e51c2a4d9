package config

// GovFileConfig is the parsed govctl.toml
type GovFileConfig struct {
	Profile map[string]ProfileConfig `toml:"profile"`
}

// ProfileConfig holds the settings of one named environment
type ProfileConfig struct {
	APIURL       string `toml:"api_url"`
	Token        string `toml:"token"`
	Organization string `toml:"organization"`
	Timeout      string `toml:"timeout"`
	MaxAttempts  int    `toml:"max_attempts"`
	PageSize     int    `toml:"page_size"`
}
