package updater

import "time"

// DefaultCheckInterval is how long the scheduler waits between periodic
// re-checks while no check is outstanding.
const DefaultCheckInterval = 600 * time.Second

// CheckScheduler is the caller-side guard around TriggerUpdateCheck: it
// tracks which products have a check outstanding and refuses to dispatch a
// second one for the same product until its result has been observed. It is
// owned by a single goroutine (the event-polling loop) and is not
// synchronized.
type CheckScheduler struct {
	Interval time.Duration

	trigger          func(client, launcher bool) <-chan UpdateEvent
	checkingClient   bool
	checkingLauncher bool
	lastTrigger      time.Time
}

// NewCheckScheduler wraps trigger, normally (*Updater).TriggerUpdateCheck.
func NewCheckScheduler(trigger func(client, launcher bool) <-chan UpdateEvent) *CheckScheduler {
	return &CheckScheduler{
		Interval: DefaultCheckInterval,
		trigger:  trigger,
	}
}

// Trigger dispatches a check for the requested products, masking out any
// product that already has one outstanding. Returns nil when every
// requested product was masked and nothing was dispatched.
func (s *CheckScheduler) Trigger(client, launcher bool) <-chan UpdateEvent {
	client = client && !s.checkingClient
	launcher = launcher && !s.checkingLauncher
	if !client && !launcher {
		return nil
	}
	if client {
		s.checkingClient = true
	}
	if launcher {
		s.checkingLauncher = true
	}
	s.lastTrigger = time.Now()
	return s.trigger(client, launcher)
}

// MaybeTrigger re-checks both products when the interval has elapsed and no
// check is outstanding. Returns nil when it is not yet time.
func (s *CheckScheduler) MaybeTrigger() <-chan UpdateEvent {
	if s.checkingClient || s.checkingLauncher {
		return nil
	}
	if time.Since(s.lastTrigger) <= s.Interval {
		return nil
	}
	return s.Trigger(true, true)
}

// Observe clears the outstanding flag for the product an event reports on.
// Feed it every event read from the check channel.
func (s *CheckScheduler) Observe(ev UpdateEvent) {
	switch ev.Kind {
	case UpdateClientResult:
		s.checkingClient = false
	case UpdateLauncherResult:
		s.checkingLauncher = false
	case UpdateDone:
		s.checkingClient = false
		s.checkingLauncher = false
	}
}

// Busy reports whether any check is outstanding.
func (s *CheckScheduler) Busy() bool {
	return s.checkingClient || s.checkingLauncher
}
