package updater

// DownloadEvent is one item of the event stream produced by a background
// download/install operation. Progress events arrive in byte order and
// always precede the single terminal finished event.
type DownloadEvent struct {
	// Progress snapshot, valid while Finished is false. Total is 0 when
	// the server did not declare a content length.
	Received int64
	Total    int64

	// Finished marks the terminal event. Exactly one is sent per
	// operation: Version carries the installed version on success
	// (or the restart sentinel for a launcher self-update), Err carries
	// a formatted error message on failure.
	Finished bool
	Version  string
	Err      string
}

// UpdateEventKind tags an UpdateEvent.
type UpdateEventKind int

const (
	// UpdateClientResult carries the remote client version or an error.
	UpdateClientResult UpdateEventKind = iota
	// UpdateLauncherResult carries the remote launcher version or an error.
	UpdateLauncherResult
	// UpdateDone is always the final event of a check invocation.
	UpdateDone
)

// UpdateEvent is one item of the event stream produced by a version check.
// Errors cross the channel pre-formatted; consumers only display text.
type UpdateEvent struct {
	Kind    UpdateEventKind
	Version string
	Err     string
}
