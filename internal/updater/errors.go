package updater

import "fmt"

// NetworkError wraps a transport-level failure (connection, timeout).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Status)
}

// ParseError reports a malformed release body.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed release body from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoAssetError reports a release that carries no downloadable artifact
// for the current platform.
type NoAssetError struct {
	Release string
	Asset   string
}

func (e *NoAssetError) Error() string {
	return fmt.Sprintf("release %s has no asset %q for this platform", e.Release, e.Asset)
}
