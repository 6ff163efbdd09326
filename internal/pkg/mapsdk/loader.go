package mapsdk

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	httpclient "github.com/piresc/maproute/internal/pkg/http"
	"github.com/piresc/maproute/internal/pkg/logger"
)

// Loader performs the one-time load of the web map SDK. Until a load has
// succeeded the geometry capability is reported as unavailable.
type Loader struct {
	sdkURL string
	apiKey string
	client *httpclient.Client
	codec  *GeometryCodec

	mu       sync.Mutex
	loaded   bool
	inflight *loadCall

	loads atomic.Int32
}

type loadCall struct {
	done chan struct{}
	err  error
}

// NewLoader creates a loader for the SDK script at sdkURL
func NewLoader(sdkURL, apiKey string, client *httpclient.Client) *Loader {
	return &Loader{
		sdkURL: sdkURL,
		apiKey: apiKey,
		client: client,
		codec:  NewGeometryCodec(),
	}
}

// Load fetches the SDK if it is not present yet and then invokes callback.
// When the SDK is already present the callback runs synchronously and no
// request is made. Concurrent callers share a single in-flight load. On
// failure the callback is not invoked.
func (l *Loader) Load(ctx context.Context, callback func()) error {
	l.mu.Lock()
	if l.loaded {
		l.mu.Unlock()
		if callback != nil {
			callback()
		}
		return nil
	}

	call := l.inflight
	leader := call == nil
	if leader {
		call = &loadCall{done: make(chan struct{})}
		l.inflight = call
	}
	l.mu.Unlock()

	if leader {
		call.err = l.fetch(ctx)

		l.mu.Lock()
		l.inflight = nil
		if call.err == nil {
			l.loaded = true
		}
		l.mu.Unlock()
		close(call.done)
	} else {
		select {
		case <-call.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if call.err != nil {
		return call.err
	}

	if callback != nil {
		callback()
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context) error {
	l.loads.Add(1)

	resp, err := l.client.Get(ctx, l.scriptURL())
	if err != nil {
		logger.Error("Failed to load map SDK", logger.Err(err))
		return fmt.Errorf("failed to load map sdk: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("Map SDK load rejected", logger.Int("status_code", resp.StatusCode))
		return fmt.Errorf("map sdk load failed with status %d", resp.StatusCode)
	}

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("failed to read map sdk: %w", err)
	}

	logger.Info("Map SDK loaded")
	return nil
}

func (l *Loader) scriptURL() string {
	sep := "?"
	if strings.Contains(l.sdkURL, "?") {
		sep = "&"
	}
	return l.sdkURL + sep + "key=" + url.QueryEscape(l.apiKey)
}

// Loaded reports whether the SDK namespace is present
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Geometry implements GeometryProvider
func (l *Loader) Geometry() (*GeometryCodec, bool) {
	if !l.Loaded() {
		return nil, false
	}
	return l.codec, true
}

// Loads returns how many network loads have been attempted
func (l *Loader) Loads() int {
	return int(l.loads.Load())
}
