package updater

import (
	"context"
	"sync"
)

// TriggerUpdateCheck starts one background version check per requested
// product and returns the channel their outcomes arrive on. Each requested
// product yields exactly one result event carrying either the remote
// version string or a formatted error message; a final UpdateDone event
// follows once both have reported. The channel is buffered for the full
// event count, so an abandoned check never leaks a goroutine.
func (u *Updater) TriggerUpdateCheck(checkClient, checkLauncher bool) <-chan UpdateEvent {
	ch := make(chan UpdateEvent, 3)

	var wg sync.WaitGroup
	run := func(product Product, kind UpdateEventKind) {
		defer wg.Done()
		ev := UpdateEvent{Kind: kind}
		rel, err := FetchLatestRelease(context.Background(), u.source(), product, u.Profile)
		if err != nil {
			ev.Err = err.Error()
		} else {
			ev.Version = rel.Version()
		}
		ch <- ev
	}

	if checkClient {
		wg.Add(1)
		go run(ProductClient, UpdateClientResult)
	}
	if checkLauncher {
		wg.Add(1)
		go run(ProductLauncher, UpdateLauncherResult)
	}

	go func() {
		wg.Wait()
		ch <- UpdateEvent{Kind: UpdateDone}
	}()
	return ch
}
