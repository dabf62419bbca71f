// Package source builds model.Secrets from the environment or a secrets file.
// Every field defaults to its committed placeholder.
package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	cn "github.com/trainboard/lib-secrets-go/constant"
	libErr "github.com/trainboard/lib-secrets-go/error"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/pkg"
	"gopkg.in/yaml.v3"
)

// Defaults returns the committed placeholder secrets.
func Defaults() model.Secrets {
	return model.Secrets{
		SSID:     cn.SSID,
		Password: cn.Password,
		Server:   cn.Server,
		RootCA:   cn.RootCA,
		APIKey:   cn.APIKey,
	}
}

// FromEnv reads secrets from the process environment.
func FromEnv() (model.Secrets, error) {
	s := model.Secrets{
		SSID:     lookupEnv(cn.EnvSSID, cn.SSID),
		Password: lookupEnv(cn.EnvPassword, cn.Password),
		Server:   lookupEnv(cn.EnvServer, cn.Server),
		RootCA:   lookupEnv(cn.EnvRootCA, cn.RootCA),
		APIKey:   lookupEnv(cn.EnvAPIKey, cn.APIKey),
	}

	return withRootCAFile(s, os.Getenv(cn.EnvRootCAFile))
}

// lookupEnv falls back to def only when key is unset. An explicitly empty
// variable stays empty, as it does in .env and YAML files, so a blank SSID is
// reported as missing and a blank password selects an open network.
func lookupEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return def
}

// FromFile reads secrets from a .env or YAML file.
func FromFile(path string) (model.Secrets, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".env":
		return fromDotEnv(path)
	case ".yaml", ".yml":
		return fromYAML(path)
	default:
		if filepath.Base(path) == ".env" {
			return fromDotEnv(path)
		}

		return model.Secrets{}, &libErr.LoadError{
			Source: path,
			Err:    pkg.ValidateBusinessError(cn.ErrUnsupportedSource, "Secrets", path),
		}
	}
}

// Load reads secrets from the file named by SECRETS_FILE, or from the
// environment when it is unset.
func Load() (model.Secrets, error) {
	if path := os.Getenv(cn.EnvSecretsFile); path != "" {
		return FromFile(path)
	}

	return FromEnv()
}

func fromDotEnv(path string) (model.Secrets, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return model.Secrets{}, &libErr.LoadError{Source: path, Err: err}
	}

	get := func(key, def string) string {
		if v, ok := vars[key]; ok {
			return v
		}

		return def
	}

	s := model.Secrets{
		SSID:     get(cn.EnvSSID, cn.SSID),
		Password: get(cn.EnvPassword, cn.Password),
		Server:   get(cn.EnvServer, cn.Server),
		RootCA:   get(cn.EnvRootCA, cn.RootCA),
		APIKey:   get(cn.EnvAPIKey, cn.APIKey),
	}

	return withRootCAFile(s, resolve(path, vars[cn.EnvRootCAFile]))
}

// yamlSecrets uses pointers so an absent key keeps its placeholder while an
// explicit empty string (open network, no root CA) is honoured.
type yamlSecrets struct {
	SSID       *string `yaml:"ssid"`
	Password   *string `yaml:"password"`
	Server     *string `yaml:"server"`
	RootCA     *string `yaml:"root_ca"`
	RootCAFile string  `yaml:"root_ca_file"`
	APIKey     *string `yaml:"api_key"`
}

func fromYAML(path string) (model.Secrets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Secrets{}, &libErr.LoadError{Source: path, Err: err}
	}

	var raw yamlSecrets
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return model.Secrets{}, &libErr.LoadError{Source: path, Err: err}
	}

	s := Defaults()
	set(&s.SSID, raw.SSID)
	set(&s.Password, raw.Password)
	set(&s.Server, raw.Server)
	set(&s.RootCA, raw.RootCA)
	set(&s.APIKey, raw.APIKey)

	return withRootCAFile(s, resolve(path, raw.RootCAFile))
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// resolve makes a root CA path relative to the secrets file that names it.
func resolve(secretsPath, caPath string) string {
	if caPath == "" || filepath.IsAbs(caPath) {
		return caPath
	}

	return filepath.Join(filepath.Dir(secretsPath), caPath)
}

func withRootCAFile(s model.Secrets, caPath string) (model.Secrets, error) {
	if caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return model.Secrets{}, &libErr.LoadError{Source: caPath, Err: err}
		}

		s.RootCA = string(pem)
	}

	s.RootCA = pkg.NormalizePEM(s.RootCA)

	return s, nil
}
