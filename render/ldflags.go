package render

import (
	"errors"
	"strings"

	"github.com/trainboard/lib-secrets-go/model"
)

// Go variable names set by LDFlags in the target package.
const (
	VarSSID     = "ssid"
	VarPassword = "password"
	VarServer   = "server"
	VarRootCA   = "rootCA"
	VarAPIKey   = "apiKey"
)

// ErrUnquotable is returned when a value contains both quote characters and
// cannot be passed through -ldflags.
var ErrUnquotable = errors.New("value contains both single and double quotes")

// LDFlags renders -X flags that set the string variables of pkgPath to s, for
// use as go build -ldflags or tinygo build -ldflags.
func LDFlags(pkgPath string, s model.Secrets) (string, error) {
	vars := []struct{ name, value string }{
		{VarSSID, s.SSID},
		{VarPassword, s.Password},
		{VarServer, s.Server},
		{VarRootCA, s.RootCA},
		{VarAPIKey, s.APIKey},
	}

	flags := make([]string, 0, len(vars))

	for _, v := range vars {
		arg, err := quote(pkgPath + "." + v.name + "=" + v.value)
		if err != nil {
			return "", errors.Join(errors.New(v.name), err)
		}

		flags = append(flags, "-X "+arg)
	}

	return strings.Join(flags, " "), nil
}

// quote follows the quoting rules the go command applies to -ldflags.
func quote(arg string) (string, error) {
	switch {
	case !strings.ContainsAny(arg, " \t\n\r'\""):
		return arg, nil
	case !strings.Contains(arg, "'"):
		return "'" + arg + "'", nil
	case !strings.Contains(arg, `"`):
		return `"` + arg + `"`, nil
	default:
		return "", ErrUnquotable
	}
}
