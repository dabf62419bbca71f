package validation

import (
	"errors"
	"strings"

	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/internal/config"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/pkg"
	"golang.org/x/net/idna"
)

const entityType = "Secrets"

// hostProfile rejects underscores, spaces and other characters that are not
// legal in a hostname, after mapping Unicode labels to punycode.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(true),
	idna.ValidateLabels(true),
	idna.VerifyDNSLength(true),
	idna.BidiRule(),
)

// ValidateSSID checks the SSID is non-empty and fits an 802.11 SSID element.
func ValidateSSID(ssid string) error {
	if ssid == "" {
		return cn.ErrMissingSSID
	}

	if len(ssid) > cn.MaxSSIDLength {
		return cn.ErrInvalidSSID
	}

	return nil
}

// ValidatePassword accepts an empty password (open network), a WPA2
// passphrase of printable ASCII, or a raw 64 digit hex PSK.
func ValidatePassword(password string) error {
	if password == "" {
		return nil
	}

	if len(password) == cn.PSKHexLength {
		if isHex(password) {
			return nil
		}

		return cn.ErrInvalidPassword
	}

	if len(password) < cn.MinPassphraseLength || len(password) > cn.MaxPassphraseLength {
		return cn.ErrInvalidPassword
	}

	for i := 0; i < len(password); i++ {
		if password[i] < 0x20 || password[i] > 0x7e {
			return cn.ErrInvalidPassword
		}
	}

	return nil
}

// ValidateServer checks the server is a bare, syntactically valid DNS name.
func ValidateServer(server string) error {
	if server == "" {
		return cn.ErrMissingServer
	}

	if strings.ContainsAny(server, "/:@ ") {
		return cn.ErrInvalidServer
	}

	ascii, err := hostProfile.ToASCII(strings.TrimSuffix(server, "."))
	if err != nil || ascii == "" || len(ascii) > cn.MaxHostnameLength {
		return cn.ErrInvalidServer
	}

	for _, label := range strings.Split(ascii, ".") {
		if label == "" || len(label) > cn.MaxLabelLength {
			return cn.ErrInvalidServer
		}

		if label[0] == '-' || label[len(label)-1] == '-' {
			return cn.ErrInvalidServer
		}
	}

	return nil
}

// ValidateRootCA is a structural check only: an empty value is allowed,
// otherwise the PEM text must begin with a BEGIN CERTIFICATE marker, end with
// an END CERTIFICATE marker, and every BEGIN must be closed before the next.
func ValidateRootCA(rootCA string) error {
	pem := strings.TrimSpace(rootCA)
	if pem == "" {
		return nil
	}

	if !strings.HasPrefix(pem, cn.PEMBeginCertificate) || !strings.HasSuffix(pem, cn.PEMEndCertificate) {
		return cn.ErrInvalidRootCA
	}

	open := false

	for _, line := range strings.Split(pem, "\n") {
		switch strings.TrimSpace(line) {
		case cn.PEMBeginCertificate:
			if open {
				return cn.ErrInvalidRootCA
			}

			open = true
		case cn.PEMEndCertificate:
			if !open {
				return cn.ErrInvalidRootCA
			}

			open = false
		}
	}

	if open {
		return cn.ErrInvalidRootCA
	}

	return nil
}

// ValidateAPIKey checks the API key is non-empty and has no whitespace.
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return cn.ErrMissingAPIKey
	}

	if strings.ContainsAny(apiKey, " \t\r\n") {
		return cn.ErrInvalidAPIKey
	}

	return nil
}

// Placeholders returns the fields that still hold their committed placeholder.
func Placeholders(s model.Secrets) []string {
	var fields []string

	if s.SSID == cn.SSID {
		fields = append(fields, cn.FieldSSID)
	}

	if s.Password == cn.Password {
		fields = append(fields, cn.FieldPassword)
	}

	if s.Server == cn.Server {
		fields = append(fields, cn.FieldServer)
	}

	if strings.TrimSpace(s.RootCA) == strings.TrimSpace(cn.RootCA) {
		fields = append(fields, cn.FieldRootCA)
	}

	if s.APIKey == cn.APIKey {
		fields = append(fields, cn.FieldAPIKey)
	}

	return fields
}

// MustReplace reports whether a placeholder field needs a real value before a
// release build. The server placeholder already names the production host.
func MustReplace(field string) bool {
	return field != cn.FieldServer
}

// Check runs every structural check on s. In strict mode a placeholder that
// MustReplace is an issue.
func Check(s model.Secrets, strict bool) model.Report {
	report := model.Report{
		Strict:       strict,
		Fingerprint:  config.GenerateFingerprint(s),
		Placeholders: Placeholders(s),
	}

	add := func(field string, err error, args ...any) {
		if err == nil {
			return
		}

		mapped := pkg.ValidateBusinessError(err, entityType, args...)

		var vErr pkg.ValidationError
		if errors.As(mapped, &vErr) {
			report.Issues = append(report.Issues, model.Issue{Field: field, Code: vErr.Code, Message: vErr.Message})
			return
		}

		report.Issues = append(report.Issues, model.Issue{Field: field, Code: err.Error(), Message: mapped.Error()})
	}

	add(cn.FieldSSID, ValidateSSID(s.SSID))
	add(cn.FieldPassword, ValidatePassword(s.Password))
	add(cn.FieldServer, ValidateServer(s.Server), s.Server)
	add(cn.FieldRootCA, ValidateRootCA(s.RootCA))
	add(cn.FieldAPIKey, ValidateAPIKey(s.APIKey))

	if strict {
		for _, field := range report.Placeholders {
			if MustReplace(field) {
				add(field, cn.ErrPlaceholderValue, field)
			}
		}
	}

	report.Valid = len(report.Issues) == 0

	return report
}

// Validate returns nil when s passes Check, otherwise the joined business
// errors of every issue.
func Validate(s model.Secrets, strict bool) error {
	report := Check(s, strict)
	if report.Valid {
		return nil
	}

	errs := make([]error, 0, len(report.Issues))
	for _, issue := range report.Issues {
		errs = append(errs, pkg.ValidationError{
			EntityType: entityType,
			Code:       issue.Code,
			Title:      issue.Field,
			Message:    issue.Message,
			Err:        codeError(issue.Code),
		})
	}

	return errors.Join(errs...)
}

var codeErrors = []error{
	cn.ErrMissingSSID, cn.ErrInvalidSSID, cn.ErrInvalidPassword,
	cn.ErrMissingServer, cn.ErrInvalidServer, cn.ErrInvalidRootCA,
	cn.ErrMissingAPIKey, cn.ErrInvalidAPIKey, cn.ErrPlaceholderValue,
}

func codeError(code string) error {
	for _, err := range codeErrors {
		if err.Error() == code {
			return err
		}
	}

	return nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}

	return true
}
