package config

// LocalConfig represents the local govctl configuration
type LocalConfig struct {
	Organization string `json:"organization,omitempty"`
	Profile      string `json:"profile"`
	APIURL       string `json:"api_url,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyOrganization ConfigKey = "organization"
	ConfigKeyProfile      ConfigKey = "profile"
	ConfigKeyAPIURL       ConfigKey = "api-url"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{
		Profile: "default",
	}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyOrganization,
		ConfigKeyProfile,
		ConfigKeyAPIURL,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "org" && validKey == ConfigKeyOrganization) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "org" -> "organization")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "org" {
		return ConfigKeyOrganization
	}
	return ConfigKey(key)
}
