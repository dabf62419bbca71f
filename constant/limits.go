package constant

// 802.11 and DNS limits applied by structural validation
const (
	// MaxSSIDLength is the maximum SSID length in bytes
	MaxSSIDLength = 32
	// MinPassphraseLength is the shortest WPA2 passphrase
	MinPassphraseLength = 8
	// MaxPassphraseLength is the longest WPA2 passphrase
	MaxPassphraseLength = 63
	// PSKHexLength is the length of a raw hex-encoded pre-shared key
	PSKHexLength = 64
	// MaxHostnameLength is the maximum length of a DNS name
	MaxHostnameLength = 253
	// MaxLabelLength is the maximum length of a single DNS label
	MaxLabelLength = 63
)
