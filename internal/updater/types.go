package updater

import "time"

const (
	// Built-in release endpoints, overridable via update_source.json.
	defaultClientReleaseURL   = "https://api.github.com/repos/openuo-online/OpenUO/releases/latest"
	defaultLauncherReleaseURL = "https://api.github.com/repos/openuo-online/Another-OpenUO-Launcher/releases/latest"

	userAgent    = "OpenUO-Launcher"
	fetchTimeout = 8 * time.Second

	// RestartSentinelPrefix prefixes the version in the result of a
	// successful launcher self-update. The caller must relay the message,
	// wait briefly, then exit so the relaunched binary takes over.
	RestartSentinelPrefix = "UPDATE_AND_RESTART:"
)

// Product identifies which of the two updatable artifacts an operation
// targets: the managed game client or the launcher binary itself.
type Product int

const (
	ProductClient Product = iota
	ProductLauncher
)

func (p Product) String() string {
	if p == ProductLauncher {
		return "launcher"
	}
	return "client"
}

// Release is the normalized "latest known release" regardless of which
// source format it was fetched from.
type Release struct {
	TagName string
	Name    string
	Assets  []Asset
}

// Asset is one downloadable file belonging to a release.
type Asset struct {
	Name               string
	BrowserDownloadURL string
	Size               int64
}

// Version returns the human-visible version string for the release:
// the release name, falling back to the tag.
func (r *Release) Version() string {
	if r.Name != "" {
		return r.Name
	}
	return r.TagName
}

func findAssetByName(assets []Asset, want string) (*Asset, bool) {
	for i := range assets {
		if assets[i].Name == want {
			return &assets[i], true
		}
	}
	return nil, false
}
