package model

// Issue is a single structural problem found in a Secrets value.
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Report contains the result of validating a Secrets value.
type Report struct {
	Valid        bool     `json:"valid"`
	Strict       bool     `json:"strict"`
	Fingerprint  string   `json:"fingerprint"`
	Placeholders []string `json:"placeholders,omitempty"`
	Issues       []Issue  `json:"issues,omitempty"`
}

// ErrorResponse contains error information returned by the provisioning API
type ErrorResponse struct {
	Code    string `json:"code"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}
