package constant

// Environment variable names
const (
	// Wi-Fi network name
	EnvSSID = "WIFI_SSID"

	// Wi-Fi passphrase, empty for open networks
	EnvPassword = "WIFI_PASSWORD"

	// Speech API host
	EnvServer = "SPEECH_SERVER"

	// Root certificate PEM, literal "\n" escapes are accepted
	EnvRootCA = "ROOT_CA"

	// Path to a root certificate PEM file, takes precedence over EnvRootCA
	EnvRootCAFile = "ROOT_CA_FILE"

	// Speech API key
	EnvAPIKey = "API_KEY"

	// Path to a .env or YAML secrets file
	EnvSecretsFile = "SECRETS_FILE"

	// Reject placeholder values when "true"
	EnvStrict = "SECRETS_STRICT"

	// Access key guarding the provisioning endpoints
	EnvProvisionAccessKey = "PROVISION_ACCESS_KEY"
)
