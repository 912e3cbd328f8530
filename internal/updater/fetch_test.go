package updater

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchGitHubFormat(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{
			"tag_name": "v2024.03.01",
			"name": "2024.03.01",
			"assets": [
				{"name": "win-x64.zip", "browser_download_url": "http://example.com/win.zip", "size": 1000},
				{"name": "linux-x64.zip", "browser_download_url": "http://example.com/linux.zip", "size": 2000}
			]
		}`))
	}))
	defer srv.Close()

	rel, err := fetchRelease(context.Background(), srv.URL, true, "linux-x64.zip", "linux-x64")
	if err != nil {
		t.Fatalf("fetchRelease: %v", err)
	}
	if gotUA != userAgent {
		t.Errorf("User-Agent: got %q want %q", gotUA, userAgent)
	}
	if rel.Version() != "2024.03.01" {
		t.Errorf("Version: got %q", rel.Version())
	}
	if len(rel.Assets) != 2 {
		t.Fatalf("assets: got %d want 2", len(rel.Assets))
	}
	asset, ok := findAssetByName(rel.Assets, "linux-x64.zip")
	if !ok {
		t.Fatal("expected linux-x64.zip asset")
	}
	if asset.BrowserDownloadURL != "http://example.com/linux.zip" || asset.Size != 2000 {
		t.Errorf("asset: got %+v", asset)
	}
	if _, ok := findAssetByName(rel.Assets, "osx-arm64.zip"); ok {
		t.Error("unexpected asset match")
	}
}

func TestFetchGitHubFormatVersionFallsBackToTag(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v1.0.0", "assets": []}`))
	}))
	defer srv.Close()

	rel, err := fetchRelease(context.Background(), srv.URL, true, "linux-x64.zip", "linux-x64")
	if err != nil {
		t.Fatalf("fetchRelease: %v", err)
	}
	if rel.Version() != "v1.0.0" {
		t.Errorf("Version: got %q want v1.0.0", rel.Version())
	}
}

func TestFetchSimpleFormatSingleURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version": "1.2.3", "download_url": "http://x/y.zip"}`))
	}))
	defer srv.Close()

	rel, err := fetchRelease(context.Background(), srv.URL, false, "linux-x64.zip", "linux-x64")
	if err != nil {
		t.Fatalf("fetchRelease: %v", err)
	}
	if rel.Version() != "1.2.3" {
		t.Errorf("Version: got %q", rel.Version())
	}
	if len(rel.Assets) != 1 {
		t.Fatalf("assets: got %d want 1", len(rel.Assets))
	}
	if rel.Assets[0].Name != "linux-x64.zip" || rel.Assets[0].BrowserDownloadURL != "http://x/y.zip" {
		t.Errorf("asset: got %+v", rel.Assets[0])
	}
}

func TestFetchSimpleFormatPlatformMap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version": "1.2.3", "download_url": {"linux-x64": "http://x/y.zip", "win-x64": "http://x/w.zip"}}`))
	}))
	defer srv.Close()

	rel, err := fetchRelease(context.Background(), srv.URL, false, "linux-x64.zip", "linux-x64")
	if err != nil {
		t.Fatalf("fetchRelease: %v", err)
	}
	if rel.Assets[0].BrowserDownloadURL != "http://x/y.zip" {
		t.Errorf("asset URL: got %q", rel.Assets[0].BrowserDownloadURL)
	}

	// A platform absent from the map fails with NoAssetError.
	_, err = fetchRelease(context.Background(), srv.URL, false, "osx-arm64.zip", "osx-arm64")
	var noAsset *NoAssetError
	if !errors.As(err, &noAsset) {
		t.Fatalf("expected NoAssetError, got %v", err)
	}
}

func TestFetchErrorTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("http status", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := fetchRelease(context.Background(), srv.URL, true, "linux-x64.zip", "linux-x64")
		var httpErr *HTTPStatusError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected HTTPStatusError, got %v", err)
		}
		if httpErr.StatusCode != http.StatusNotFound {
			t.Errorf("StatusCode: got %d", httpErr.StatusCode)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tag_name": `))
		}))
		defer srv.Close()

		_, err := fetchRelease(context.Background(), srv.URL, true, "linux-x64.zip", "linux-x64")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})

	t.Run("empty release", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"assets": []}`))
		}))
		defer srv.Close()

		_, err := fetchRelease(context.Background(), srv.URL, true, "linux-x64.zip", "linux-x64")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})

	t.Run("network", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		_, err := fetchRelease(context.Background(), srv.URL, true, "linux-x64.zip", "linux-x64")
		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("expected NetworkError, got %v", err)
		}
	})
}
