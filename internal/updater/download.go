package updater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

const downloadChunkSize = 16 * 1024

// ProgressFunc receives (bytes received so far, total expected). Total is 0
// when the server did not declare a content length; callers must render
// received-only progress in that case.
type ProgressFunc func(received, total int64)

// downloadAsset streams the response body to dest in fixed-size chunks,
// reporting progress after every chunk. The payload is never buffered in
// memory. There is no overall deadline: large client archives on slow links
// take as long as they take. On failure the partial file is removed.
func downloadAsset(ctx context.Context, url, dest string, progress ProgressFunc) error {
	return downloadAssetChunked(ctx, url, dest, downloadChunkSize, progress)
}

func downloadAssetChunked(ctx context.Context, url, dest string, chunkSize int, progress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	var received int64
	buf := make([]byte, chunkSize)
	for {
		// ReadFull keeps chunks aligned: every progress step is one full
		// chunk except the last.
		n, rerr := io.ReadFull(resp.Body, buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				_ = f.Close()
				_ = os.Remove(dest)
				return werr
			}
			received += int64(n)
			if progress != nil {
				progress(received, total)
			}
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			_ = f.Close()
			_ = os.Remove(dest)
			return &NetworkError{URL: url, Err: rerr}
		}
	}

	if total > 0 && received < total {
		_ = f.Close()
		_ = os.Remove(dest)
		return &NetworkError{URL: url, Err: fmt.Errorf("connection closed after %d of %d bytes", received, total)}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		return err
	}
	return nil
}

// copyFile copies src to dst with the given mode, syncing before close.
func copyFile(dst, src string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return err
	}
	return out.Close()
}
