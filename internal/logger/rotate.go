package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RotatingFileWriter writes launcher logs to one file per day and prunes
// files older than the retention window.
type RotatingFileWriter struct {
	dir           string
	prefix        string
	retentionDays int

	mu         sync.Mutex
	day        string
	file       *os.File
	cleanupDay string
	now        func() time.Time
}

// NewRotatingFileWriter creates a daily-rotating log writer under dir.
func NewRotatingFileWriter(dir, prefix string, retentionDays int) (*RotatingFileWriter, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("log dir is empty")
	}
	if retentionDays <= 0 {
		retentionDays = 7
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "launcher"
	}

	w := &RotatingFileWriter{
		dir:           dir,
		prefix:        prefix,
		retentionDays: retentionDays,
		now:           time.Now,
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *RotatingFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	day := w.now().Format("2006-01-02")
	if err := w.ensureOpenLocked(day); err != nil {
		return 0, err
	}
	return w.file.Write(p)
}

func (w *RotatingFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.day = ""
	return err
}

func (w *RotatingFileWriter) ensureOpenLocked(day string) error {
	if w.file != nil && w.day == day {
		return nil
	}
	if w.file != nil {
		_ = w.file.Close()
		w.file = nil
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(w.dir, fmt.Sprintf("%s-%s.log", w.prefix, day))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w.file = f
	w.day = day

	// Prune at most once per day.
	if w.cleanupDay != day {
		w.pruneLocked()
		w.cleanupDay = day
	}
	return nil
}

func (w *RotatingFileWriter) pruneLocked() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return
	}

	cutoff := w.now().AddDate(0, 0, -w.retentionDays).Format("2006-01-02")
	wantPrefix := w.prefix + "-"
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, wantPrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		day := strings.TrimSuffix(strings.TrimPrefix(name, wantPrefix), ".log")
		if _, err := time.Parse("2006-01-02", day); err != nil {
			continue
		}
		if day < cutoff {
			_ = os.Remove(filepath.Join(w.dir, name))
		}
	}
}
