package cmd

import (
	"strings"
	"testing"

	"github.com/openuo-online/openuo-launcher/internal/updater"
)

func TestDrainDownloadReturnsVersion(t *testing.T) {
	events := make(chan updater.DownloadEvent, 4)
	events <- updater.DownloadEvent{Received: 50, Total: 100}
	events <- updater.DownloadEvent{Received: 100, Total: 100}
	events <- updater.DownloadEvent{Finished: true, Version: "2024.05.01"}
	close(events)

	version, err := drainDownload(events, "client")
	if err != nil {
		t.Fatalf("drainDownload: %v", err)
	}
	if version != "2024.05.01" {
		t.Errorf("version = %q", version)
	}
}

func TestDrainDownloadReportsFailure(t *testing.T) {
	events := make(chan updater.DownloadEvent, 2)
	events <- updater.DownloadEvent{Received: 10, Total: 100}
	events <- updater.DownloadEvent{Finished: true, Err: "network error: boom"}
	close(events)

	_, err := drainDownload(events, "client")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "network error: boom") {
		t.Errorf("err = %v", err)
	}
}

func TestDrainDownloadClosedWithoutTerminal(t *testing.T) {
	events := make(chan updater.DownloadEvent)
	close(events)

	if _, err := drainDownload(events, "launcher"); err == nil {
		t.Fatal("expected error for stream without terminal event")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
