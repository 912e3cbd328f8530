package updater

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/openuo-online/openuo-launcher/internal/logger"
)

// SourceConfigFileName is the optional release-source override, placed next
// to the launcher executable. Comments and trailing commas are tolerated so
// server operators can annotate the file.
const SourceConfigFileName = "update_source.json"

type sourceConfig struct {
	OpenUOURL       *string `json:"openuo_url"`
	LauncherURL     *string `json:"launcher_url"`
	UseGitHubFormat *bool   `json:"use_github_format"`
}

// Source is the resolved release source for one check: one URL per product
// and the response format to expect.
type Source struct {
	ClientURL    string
	LauncherURL  string
	GitHubFormat bool
}

// URL returns the release URL for the given product.
func (s Source) URL(product Product) string {
	if product == ProductLauncher {
		return s.LauncherURL
	}
	return s.ClientURL
}

// DefaultSource returns the built-in GitHub release endpoints.
func DefaultSource() Source {
	return Source{
		ClientURL:    defaultClientReleaseURL,
		LauncherURL:  defaultLauncherReleaseURL,
		GitHubFormat: true,
	}
}

// LoadSource reads update_source.json from baseDir and resolves the release
// source for this check. It is called fresh on every check so the file can
// change without restarting the launcher. A missing file means defaults; an
// unreadable or malformed file is logged and means defaults, never a failure.
func LoadSource(baseDir string) Source {
	src := DefaultSource()

	path := filepath.Join(baseDir, SourceConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read %s: %v", SourceConfigFileName, err)
		}
		return src
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		logger.Warn("failed to parse %s: %v", SourceConfigFileName, err)
		return src
	}
	var cfg sourceConfig
	if err := json.Unmarshal(std, &cfg); err != nil {
		logger.Warn("failed to parse %s: %v", SourceConfigFileName, err)
		return src
	}

	if cfg.OpenUOURL != nil && *cfg.OpenUOURL != "" {
		src.ClientURL = *cfg.OpenUOURL
	}
	if cfg.LauncherURL != nil && *cfg.LauncherURL != "" {
		src.LauncherURL = *cfg.LauncherURL
	}
	if cfg.UseGitHubFormat != nil {
		src.GitHubFormat = *cfg.UseGitHubFormat
	}
	logger.Info("using custom update source from %s", SourceConfigFileName)
	return src
}
