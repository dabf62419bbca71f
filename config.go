package sdk

import (
	"github.com/trainboard/lib-secrets-go/internal/source"
	"github.com/trainboard/lib-secrets-go/model"
)

// Config is the set of secrets consumed by the speech firmware.
type Config = model.Secrets

// Default returns the committed placeholder values.
func Default() Config {
	return source.Defaults()
}

// LoadFromEnv builds the Config from WIFI_SSID, WIFI_PASSWORD, SPEECH_SERVER,
// ROOT_CA (or ROOT_CA_FILE) and API_KEY. Unset variables keep their
// placeholder.
func LoadFromEnv() (Config, error) {
	return source.FromEnv()
}

// LoadFromFile builds the Config from a .env or YAML file.
func LoadFromFile(path string) (Config, error) {
	return source.FromFile(path)
}

// Load uses SECRETS_FILE when it is set and the environment otherwise.
func Load() (Config, error) {
	return source.Load()
}
