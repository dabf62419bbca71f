// Package render turns a set of secrets into the artifacts a firmware build
// consumes: the SECRETS.h header for the C++ firmware and -X linker flags for
// Go firmware. Rendering does not validate.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/model"
)

var headerTemplate = template.Must(template.New("secrets.h").Funcs(template.FuncMap{
	"cstr":  CString,
	"lines": pemLines,
}).Parse(`#ifndef {{ .Guard }}
#define {{ .Guard }}

// Generated by secretsctl, do not commit.

// ===================== USER WIFI CONFIG =====================
const char* {{ .Names.SSID }} = {{ cstr .S.SSID }};
const char* {{ .Names.Password }} = {{ cstr .S.Password }};

// ===================== SPEECH API CONFIG =====================
const char* {{ .Names.Server }} = {{ cstr .S.Server }};

// Root certificate (optional, used for secure HTTPS)
{{- if .S.RootCA }}
const char* {{ .Names.RootCA }} =
{{- range lines .S.RootCA }}
{{ cstr . }}
{{- end }};
{{- else }}
const char* {{ .Names.RootCA }} = "";
{{- end }}

const char* {{ .Names.APIKey }} = {{ cstr .S.APIKey }};

#endif  // {{ .Guard }}
`))

type headerNames struct {
	SSID, Password, Server, RootCA, APIKey string
}

// Header renders the firmware SECRETS.h for s.
func Header(s model.Secrets) ([]byte, error) {
	var buf bytes.Buffer

	err := headerTemplate.Execute(&buf, struct {
		Guard string
		Names headerNames
		S     model.Secrets
	}{
		Guard: cn.HeaderGuard,
		Names: headerNames{
			SSID:     cn.FieldSSID,
			Password: cn.FieldPassword,
			Server:   cn.FieldServer,
			RootCA:   cn.FieldRootCA,
			APIKey:   cn.FieldAPIKey,
		},
		S: s,
	})
	if err != nil {
		return nil, fmt.Errorf("render header: %w", err)
	}

	return buf.Bytes(), nil
}

// pemLines splits a certificate into lines that each keep their trailing
// newline, so every line becomes one C literal ending in \n.
func pemLines(pem string) []string {
	lines := strings.SplitAfter(pem, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}

	return lines
}

// CString quotes s as a C string literal. Control and non-ASCII bytes use
// three digit octal escapes, which unlike \x never absorb a following digit.
func CString(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '?':
			// Avoid forming trigraphs.
			b.WriteString(`\?`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
				continue
			}

			b.WriteByte(c)
		}
	}

	b.WriteByte('"')

	return b.String()
}
