package pkg

import (
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-commons/commons"
)

// NormalizePEM turns literal "\n" escapes into newlines and trims surrounding
// whitespace, so a certificate can be passed through a single-line variable.
func NormalizePEM(pem string) string {
	pem = strings.ReplaceAll(pem, `\r\n`, "\n")
	pem = strings.ReplaceAll(pem, `\n`, "\n")
	pem = strings.ReplaceAll(pem, "\r\n", "\n")

	pem = strings.TrimSpace(pem)
	if pem == "" {
		return ""
	}

	return pem + "\n"
}

// Redact returns a log-safe description of a secret value
func Redact(secret string) string {
	if secret == "" {
		return "<empty>"
	}

	return "<redacted len=" + strconv.Itoa(len(secret)) + " sha256=" + commons.HashSHA256(secret)[:8] + ">"
}

// IsTrue reports whether an environment flag value is set to a true value
func IsTrue(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))

	return err == nil && b
}
