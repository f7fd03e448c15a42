// Package fetch acquires workbook bytes from cloud-share links
// (SharePoint, OneDrive, Dropbox, Google Drive).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

var client = &http.Client{Timeout: defaultTimeout}

// HTTPError reports a non-200 response from the share host.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("could not download file (HTTP %d) from %s", e.StatusCode, e.URL)
}

// CoerceDownloadURL rewrites a share link into a direct-download link:
// SharePoint/OneDrive links get download=1, Dropbox links get dl=1, and
// Google Drive file links become uc?export=download. Anything unparseable
// or unrecognized is returned verbatim.
func CoerceDownloadURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	host := u.Hostname()
	q := u.Query()
	switch {
	case strings.HasSuffix(host, "sharepoint.com"), strings.HasSuffix(host, "1drv.ms"):
		if !q.Has("download") {
			q.Set("download", "1")
		}
	case strings.HasSuffix(host, "dropbox.com"):
		q.Set("dl", "1")
	case host == "drive.google.com":
		if id := driveFileID(u.Path); id != "" {
			return "https://drive.google.com/uc?export=download&id=" + id
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// driveFileID extracts the file ID from a /file/d/<id>/... path.
func driveFileID(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "file" && parts[i+1] == "d" {
			return parts[i+2]
		}
	}
	return ""
}

// Download fetches the workbook bytes behind a share link, coercing it to
// direct-download form first. Non-200 responses return an *HTTPError; for
// SharePoint/OneDrive that usually means the link permissions are not set
// to "anyone with the link".
func Download(ctx context.Context, rawURL string) ([]byte, error) {
	direct := CoerceDownloadURL(strings.TrimSpace(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, direct, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: direct}
	}
	return io.ReadAll(resp.Body)
}
