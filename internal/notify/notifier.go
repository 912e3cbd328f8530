// Package notify posts desktop notifications for update events. Sends go
// through a single queue goroutine so a slow or broken desktop notification
// backend never blocks the update pipeline.
package notify

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/openuo-online/openuo-launcher/internal/config"
)

const (
	appTitle      = "OpenUO Launcher"
	dedupeWindow  = 30 * time.Second
	queueCapacity = 16
)

var sendTimeout = 2 * time.Second

type event struct {
	title   string
	message string
	key     string
}

type Notifier struct {
	updateAvailable bool
	installFinished bool

	send func(title, message string, icon any) error

	ch   chan event
	stop chan struct{}
	done chan struct{}
}

var (
	mu      sync.RWMutex
	current *Notifier
)

// Configure starts (or replaces) the notifier per the launcher config.
func Configure(cfg *config.Config) {
	ConfigureWithSender(cfg, beeep.Notify)
}

// ConfigureWithSender is Configure with an injectable send function.
func ConfigureWithSender(cfg *config.Config, sender func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		current.shutdownLocked()
		current = nil
	}

	if !cfg.NotificationsEnabled() {
		return
	}

	n := &Notifier{
		updateAvailable: cfg.NotifyUpdateAvailable(),
		installFinished: cfg.NotifyInstallFinished(),
		send:            sender,
		ch:              make(chan event, queueCapacity),
		stop:            make(chan struct{}),
		done:            make(chan struct{}),
	}
	current = n
	go n.loop()
}

// Shutdown stops the notifier and waits briefly for the queue goroutine.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		return
	}
	current.shutdownLocked()
	current = nil
}

func (n *Notifier) shutdownLocked() {
	select {
	case <-n.stop:
		// already closed
	default:
		close(n.stop)
	}
	select {
	case <-n.done:
	case <-time.After(5 * time.Second):
	}
}

func get() *Notifier {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// UpdateAvailable announces that a newer release of product was found.
func UpdateAvailable(product string, version string) {
	n := get()
	if n == nil || !n.updateAvailable {
		return
	}
	product = strings.TrimSpace(product)
	version = strings.TrimSpace(version)
	if product == "" || version == "" {
		return
	}
	msg := fmt.Sprintf("%s %s is available", product, version)
	n.enqueue(appTitle, msg, "available:"+product+":"+version)
}

// InstallFinished announces that product finished installing.
func InstallFinished(product string, version string) {
	n := get()
	if n == nil || !n.installFinished {
		return
	}
	product = strings.TrimSpace(product)
	if product == "" {
		return
	}
	msg := product + " installed"
	if version = strings.TrimSpace(version); version != "" {
		msg = fmt.Sprintf("%s %s installed", product, version)
	}
	n.enqueue(appTitle, msg, "installed:"+product+":"+version)
}

// InstallFailed announces a failed download or install.
func InstallFailed(product string, errMsg string) {
	n := get()
	if n == nil {
		return
	}
	product = strings.TrimSpace(product)
	if product == "" {
		return
	}
	msg := product + " update failed"
	if errMsg = strings.TrimSpace(errMsg); errMsg != "" {
		msg = fmt.Sprintf("%s update failed: %s", product, errMsg)
	}
	n.enqueue(appTitle, msg, "failed:"+product)
}

func (n *Notifier) enqueue(title string, message string, key string) {
	message = strings.Join(strings.Fields(message), " ")
	if message == "" {
		return
	}
	select {
	case n.ch <- event{title: title, message: message, key: key}:
	default:
		// best-effort: drop if overloaded
	}
}

func (n *Notifier) loop() {
	defer close(n.done)

	lastSent := make(map[string]time.Time)

	for {
		select {
		case <-n.stop:
			return
		case ev := <-n.ch:
			now := time.Now()
			if t, ok := lastSent[ev.key]; ok && now.Sub(t) < dedupeWindow {
				continue
			}
			lastSent[ev.key] = now

			if n.send == nil {
				continue
			}
			done := make(chan error, 1)
			go func() {
				done <- n.send(ev.title, ev.message, nil)
			}()
			select {
			case err := <-done:
				if err != nil {
					fmt.Fprintf(os.Stderr, "openuo-launcher: notification failed: %v\n", err)
				}
			case <-time.After(sendTimeout):
				fmt.Fprintf(os.Stderr, "openuo-launcher: notification timed out after %s\n", sendTimeout)
			}
		}
	}
}
