// Package httpcache provides an http.Client whose GET responses are cached
// for the day, on disk or in redis, and a helper to GET JSON documents.
package httpcache

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/etnz/invest/date"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// UserAgent is sent with every request made by GetJSON. Some quote servers
// reject requests without one.
const UserAgent = "inv/1.0 (+https://github.com/etnz/invest)"

// Transport implements a cache for HTTP responses.
//
// Keys include the current day, so cached entries expire every day.
type Transport struct {
	Base  http.RoundTripper // http.DefaultTransport if nil
	Store Store
	Log   *zap.Logger // no logs if nil
	Today func() date.Date

	group singleflight.Group
}

// RoundTrip implements the http.RoundTripper interface. It serves GET
// requests from the Store when possible, otherwise it performs the request
// and caches successful responses.
func (c *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	if req.Method != http.MethodGet || c.Store == nil {
		return base.RoundTrip(req)
	}

	today := date.Today
	if c.Today != nil {
		today = c.Today
	}
	key := Key(today(), req)

	if content, err := c.Store.Get(req.Context(), key); err == nil {
		resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
		if err == nil {
			log.Debug("cache hit", zap.String("host", req.URL.Host), zap.String("path", req.URL.Path))
			return resp, nil
		}
		log.Warn("corrupted cache entry (ignored)", zap.String("key", key), zap.Error(err))
	}

	// concurrent identical requests share one round trip.
	content, err, shared := c.group.Do(key, func() (any, error) {
		return c.fetch(base, log, req, key)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug("shared response", zap.String("host", req.URL.Host), zap.String("path", req.URL.Path))
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content.([]byte))), req)
}

// fetch performs req and returns the raw response. Successful responses are
// stored under key.
func (c *Transport) fetch(base http.RoundTripper, log *zap.Logger, req *http.Request, key string) ([]byte, error) {
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	log.Debug("http",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.String("status", resp.Status),
	)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", req.URL.Host, err)
	}
	if resp.StatusCode >= 300 {
		return content, nil
	}
	if err := c.Store.Put(req.Context(), key, content); err != nil {
		log.Warn("cache write err (ignored)", zap.Error(err))
	}
	return content, nil
}

// Key returns the cache key of req on a given day.
func Key(on date.Date, req *http.Request) string {
	key := fmt.Sprintf("%s %s %s", on, req.Method, req.URL.String())
	return fmt.Sprintf("inv-%x", sha1.Sum([]byte(key)))
}

// NewClient returns an http.Client caching into store. A nil store disables
// caching.
func NewClient(store Store, log *zap.Logger) *http.Client {
	client := new(http.Client)
	if store != nil {
		client.Transport = &Transport{Base: http.DefaultTransport, Store: store, Log: log}
	}
	return client
}

// StatusError reports a response whose status is not 200 OK.
type StatusError struct {
	Host, Path string
	StatusCode int
	Status     string
	Body       []byte // first bytes of the body, for diagnostics
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot http GET %v%v: %v", e.Host, e.Path, e.Status)
}

const maxErrorBody = 4 << 10

// GetJSON performs an HTTP GET request to addr and unmarshals the JSON
// response body into data. A response other than 200 OK is a *StatusError.
func GetJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Host:       req.URL.Host,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
