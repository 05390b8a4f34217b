package source

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/whatif"
	"github.com/etnz/whatif/date"
	"github.com/rs/zerolog"
)

// IsURL reports whether 'path' is an http or https address.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// FetchJSON downloads a JSON price history and reads it like ReadJSON.
func FetchJSON(ctx context.Context, client *http.Client, addr, path string, fields map[string]string) ([]whatif.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return ReadJSON(resp.Body, path, fields)
}

// DailyClient returns a client that caches successful responses on disk in
// 'dir' until the end of the day. A price history changes once a day at most.
// Cache failures are logged to 'log', the response is served anyway.
func DailyClient(dir string, log zerolog.Logger) *http.Client {
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport, dir: dir, today: date.Today, log: log}}
}

// diskCache implements a disk cache for HTTP responses, with one key per day.
type diskCache struct {
	base  http.RoundTripper
	dir   string
	today func() date.Date
	log   zerolog.Logger
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", c.today(), req.Method, req.URL)
	key = fmt.Sprintf("wif-%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}
	resp, err := c.base.RoundTrip(req)
	if err != nil || resp.StatusCode >= 300 {
		return resp, err
	}
	if err := c.put(key, resp); err != nil {
		c.log.Warn().Err(err).Stringer("url", req.URL).Msg("cannot cache http response")
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores the response on disk. DumpResponse leaves resp.Body readable.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}
