package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type githubRelease struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
		Size               int64  `json:"size"`
	} `json:"assets"`
	Body            string `json:"body"`
	PublishedAt     string `json:"published_at"`
	TargetCommitish string `json:"target_commitish"`
}

// simpleRelease is the simplified release format served by custom
// distribution endpoints: a version plus either one URL or a per-platform
// URL map.
type simpleRelease struct {
	Version     string          `json:"version"`
	DownloadURL json.RawMessage `json:"download_url"`
}

// FetchLatestRelease performs one release check for the given product
// against the configured source and normalizes the response. The request
// carries an identifying user agent and times out after a few seconds.
func FetchLatestRelease(ctx context.Context, src Source, product Product, profile Profile) (*Release, error) {
	return fetchRelease(ctx, src.URL(product), src.GitHubFormat, profile.AssetName(product), profile.Key())
}

func fetchRelease(ctx context.Context, url string, githubFormat bool, assetName, platformKey string) (*Release, error) {
	client := &http.Client{Timeout: fetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	if githubFormat {
		req.Header.Set("Accept", "application/vnd.github+json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	if githubFormat {
		return parseGitHubRelease(url, body)
	}
	return parseSimpleRelease(url, body, assetName, platformKey)
}

func parseGitHubRelease(url string, body []byte) (*Release, error) {
	var gr githubRelease
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	r := &Release{
		TagName: strings.TrimSpace(gr.TagName),
		Name:    strings.TrimSpace(gr.Name),
	}
	for _, a := range gr.Assets {
		r.Assets = append(r.Assets, Asset{
			Name:               a.Name,
			BrowserDownloadURL: a.BrowserDownloadURL,
			Size:               a.Size,
		})
	}
	if r.Version() == "" {
		return nil, &ParseError{URL: url, Err: fmt.Errorf("release has neither name nor tag_name")}
	}
	return r, nil
}

func parseSimpleRelease(url string, body []byte, assetName, platformKey string) (*Release, error) {
	var sr simpleRelease
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}
	version := strings.TrimSpace(sr.Version)
	if version == "" {
		return nil, &ParseError{URL: url, Err: fmt.Errorf("release has empty version")}
	}
	if len(sr.DownloadURL) == 0 {
		return nil, &ParseError{URL: url, Err: fmt.Errorf("release has no download_url")}
	}

	downloadURL, err := resolveDownloadURL(sr.DownloadURL, platformKey)
	if err != nil {
		return nil, err
	}

	// Synthesize a single-asset release named after the expected platform
	// asset so the rest of the pipeline treats both formats identically.
	return &Release{
		TagName: version,
		Name:    version,
		Assets: []Asset{{
			Name:               assetName,
			BrowserDownloadURL: downloadURL,
		}},
	}, nil
}

// resolveDownloadURL accepts either a single URL string (platform-agnostic)
// or a map keyed by platform ("osx-arm64", "osx-x64", "linux-x64", "win-x64").
func resolveDownloadURL(raw json.RawMessage, platformKey string) (string, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return "", &ParseError{Err: fmt.Errorf("empty download_url")}
		}
		return single, nil
	}

	var perPlatform map[string]string
	if err := json.Unmarshal(raw, &perPlatform); err != nil {
		return "", &ParseError{Err: fmt.Errorf("download_url is neither a string nor a platform map: %w", err)}
	}
	url, ok := perPlatform[platformKey]
	if !ok || strings.TrimSpace(url) == "" {
		return "", &NoAssetError{Asset: platformKey}
	}
	return url, nil
}
