package updater

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// installTestServer serves a simplified release pointing back at itself for
// the client archive download.
func installTestServer(t *testing.T, version string, archive []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/release", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"version": %q, "download_url": {"linux-x64": %q}}`, version, srv.URL+"/archive.zip")
	})
	mux.HandleFunc("/archive.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})
	return srv
}

func clientArchive(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	hdr := &zip.FileHeader{Name: "OpenUO", Method: zip.Deflate}
	hdr.SetMode(0o755)
	f, err := zw.CreateHeader(hdr)
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte("client binary"))
	f, err = zw.Create("Data/art.mul")
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte("game data"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// Not parallel: client installs share the per-asset temp download path.
func TestDownloadAndUnpackClient(t *testing.T) {
	srv := installTestServer(t, "2024.3.1", clientArchive(t))

	dir := t.TempDir()
	writeSourceConfig(t, dir, fmt.Sprintf(
		`{"openuo_url": %q, "use_github_format": false}`, srv.URL+"/release"))
	profile, _ := profileFor("linux", "amd64")
	u := &Updater{
		BaseDir:    dir,
		InstallDir: filepath.Join(dir, "OpenUO"),
		BinaryName: "OpenUO",
		Profile:    profile,
	}

	var progressCalls int
	version, err := u.DownloadAndUnpackClient(context.Background(), func(received, total int64) {
		progressCalls++
	})
	if err != nil {
		t.Fatalf("DownloadAndUnpackClient: %v", err)
	}
	if version != "2024.3.1" {
		t.Errorf("version: got %q", version)
	}
	if progressCalls == 0 {
		t.Error("no progress reported")
	}

	data, err := os.ReadFile(filepath.Join(u.InstallDir, "Data", "art.mul"))
	if err != nil || string(data) != "game data" {
		t.Errorf("extracted data file: %q, %v", data, err)
	}
	got, ok := u.InstalledClientVersion()
	if !ok || got != "2024.3.1" {
		t.Errorf("InstalledClientVersion: %q, %v", got, ok)
	}
}

// Not parallel: client installs share the per-asset temp download path.
func TestStartClientDownloadEventStream(t *testing.T) {
	srv := installTestServer(t, "2024.3.1", clientArchive(t))

	dir := t.TempDir()
	writeSourceConfig(t, dir, fmt.Sprintf(
		`{"openuo_url": %q, "use_github_format": false}`, srv.URL+"/release"))
	profile, _ := profileFor("linux", "amd64")
	u := &Updater{
		BaseDir:    dir,
		InstallDir: filepath.Join(dir, "client"),
		BinaryName: "OpenUO",
		Profile:    profile,
	}

	ch := u.StartClientDownload()
	var finished []DownloadEvent
	var lastProgress int64
	timeout := time.After(10 * time.Second)
loop:
	for {
		select {
		case ev := <-ch:
			if ev.Finished {
				finished = append(finished, ev)
				break loop
			}
			if ev.Received < lastProgress {
				t.Errorf("progress went backwards: %d after %d", ev.Received, lastProgress)
			}
			lastProgress = ev.Received
		case <-timeout:
			t.Fatal("timed out waiting for finished event")
		}
	}

	if len(finished) != 1 {
		t.Fatalf("finished events: got %d want 1", len(finished))
	}
	if finished[0].Err != "" || finished[0].Version != "2024.3.1" {
		t.Errorf("finished: %+v", finished[0])
	}
}

func TestDownloadAndUnpackClientNoMatchingAsset(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v1.0.0", "name": "1.0.0", "assets": [
			{"name": "win-x64.zip", "browser_download_url": "http://example.com/w.zip", "size": 10}
		]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeSourceConfig(t, dir, fmt.Sprintf(`{"openuo_url": %q}`, srv.URL))
	profile, _ := profileFor("linux", "amd64")
	u := &Updater{BaseDir: dir, InstallDir: t.TempDir(), BinaryName: "OpenUO", Profile: profile}

	_, err := u.DownloadAndUnpackClient(context.Background(), nil)
	if err == nil {
		t.Fatal("expected no-asset error")
	}
}
