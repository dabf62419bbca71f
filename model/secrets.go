package model

// Secrets holds the five values the speech firmware reads at build time.
type Secrets struct {
	SSID     string `json:"ssid" yaml:"ssid"`
	Password string `json:"password" yaml:"password"`
	Server   string `json:"server" yaml:"server"`
	RootCA   string `json:"root_ca" yaml:"root_ca"`
	APIKey   string `json:"api_key" yaml:"api_key"`
}
