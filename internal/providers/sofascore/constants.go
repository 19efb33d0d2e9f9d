package sofascore

import "time"

const (
	defaultBaseURL     = "https://api.sofascore.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
	highlightsType     = "highlights"
)
