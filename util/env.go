package util

import (
	"errors"

	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/pkg"
)

// ValidateEnvVariables checks that the values a firmware build cannot do
// without are present. Format checks belong to the validation package.
func ValidateEnvVariables(cfg *model.Secrets, l log.Logger) error {
	if cfg == nil {
		return errors.New("secrets config is nil")
	}

	if commons.IsNilOrEmpty(&cfg.SSID) {
		l.Errorf("Missing Wi-Fi SSID (code %s), set %s", cn.ErrMissingSSID.Error(), cn.EnvSSID)

		return pkg.ValidateBusinessError(cn.ErrMissingSSID, "Secrets")
	}

	if commons.IsNilOrEmpty(&cfg.Server) {
		l.Errorf("Missing server (code %s), set %s", cn.ErrMissingServer.Error(), cn.EnvServer)

		return pkg.ValidateBusinessError(cn.ErrMissingServer, "Secrets")
	}

	if commons.IsNilOrEmpty(&cfg.APIKey) {
		l.Errorf("Missing API key (code %s), set %s", cn.ErrMissingAPIKey.Error(), cn.EnvAPIKey)

		return pkg.ValidateBusinessError(cn.ErrMissingAPIKey, "Secrets")
	}

	return nil
}
