package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ErrDownload is returned when a release asset cannot be fetched.
var ErrDownload = errors.New("download failed")

// Download fetches url into destPath, reporting percentage progress to
// stderr when the server announces a content length.
func (r *Resolver) Download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", ErrDownload, err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: fetching %s: %v", ErrDownload, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrDownload, url, resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrDownload, destPath, err)
	}
	defer f.Close()

	total := resp.ContentLength
	var downloaded int64
	lastPercent := -1

	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("%w: writing download: %v", ErrDownload, writeErr)
			}
			downloaded += int64(n)
			if total > 0 {
				percent := int(downloaded * 100 / total)
				if percent != lastPercent {
					fmt.Fprintf(os.Stderr, "\rDownloading... %d%%", percent)
					lastPercent = percent
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("%w: reading download stream: %v", ErrDownload, readErr)
		}
	}
	if total > 0 {
		fmt.Fprintln(os.Stderr)
	}

	return f.Close()
}
