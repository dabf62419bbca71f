package constant

// Placeholder firmware secrets. These are committed defaults only: real values
// are loaded from the environment or a secrets file and rendered into the
// firmware build, never compiled in from here.
const (
	// SSID is the Wi-Fi network the firmware joins
	SSID = "YOUR_WIFI_SSID"
	// Password is the WPA2 passphrase for SSID
	Password = "YOUR_WIFI_PASSWORD"
	// Server is the speech API host the firmware connects to
	Server = "speech.googleapis.com"
	// RootCA is the PEM certificate used to verify Server
	RootCA = "-----BEGIN CERTIFICATE-----\n" +
		"YOUR_CERTIFICATE_CONTENT\n" +
		"-----END CERTIFICATE-----\n"
	// APIKey authenticates requests to the speech API
	APIKey = "YOUR_API_KEY_HERE"
)

// Field names used in reports, errors and rendered output.
const (
	FieldSSID     = "ssid"
	FieldPassword = "password"
	FieldServer   = "server"
	FieldRootCA   = "root_ca"
	FieldAPIKey   = "ApiKey"
)

// PEM markers for the root certificate
const (
	PEMBeginCertificate = "-----BEGIN CERTIFICATE-----"
	PEMEndCertificate   = "-----END CERTIFICATE-----"
)

// HeaderGuard is the include guard of the rendered firmware header
const HeaderGuard = "_SECRETS_H"
