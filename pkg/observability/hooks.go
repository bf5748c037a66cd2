// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about descriptor fetches and dependency extraction.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFetchHooks(&myFetchHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Fetch().OnFetchStart(ctx, url)
//	// ... perform request ...
//	observability.Fetch().OnFetchComplete(ctx, url, status, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Fetch Hooks
// =============================================================================

// FetchHooks receives events from descriptor retrieval.
type FetchHooks interface {
	// OnFetchStart records an outgoing descriptor request.
	OnFetchStart(ctx context.Context, url string)

	// OnFetchComplete records the outcome of a descriptor request.
	// statusCode is 0 when no response was received.
	OnFetchComplete(ctx context.Context, url string, statusCode, size int, duration time.Duration, err error)
}

// =============================================================================
// Extract Hooks
// =============================================================================

// ExtractHooks receives events from dependency extraction.
type ExtractHooks interface {
	// OnExtractComplete records how many dependencies were kept after filtering.
	OnExtractComplete(ctx context.Context, url string, kept int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFetchHooks is a no-op implementation of FetchHooks.
type NoopFetchHooks struct{}

func (NoopFetchHooks) OnFetchStart(context.Context, string) {}
func (NoopFetchHooks) OnFetchComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopExtractHooks is a no-op implementation of ExtractHooks.
type NoopExtractHooks struct{}

func (NoopExtractHooks) OnExtractComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	fetchHooks   FetchHooks   = NoopFetchHooks{}
	extractHooks ExtractHooks = NoopExtractHooks{}
	hooksMu      sync.RWMutex
)

// SetFetchHooks registers custom fetch hooks.
// This should be called once at application startup before any fetch.
func SetFetchHooks(h FetchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fetchHooks = h
	}
}

// SetExtractHooks registers custom extract hooks.
func SetExtractHooks(h ExtractHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		extractHooks = h
	}
}

// Fetch returns the registered fetch hooks.
func Fetch() FetchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fetchHooks
}

// Extract returns the registered extract hooks.
func Extract() ExtractHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return extractHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	fetchHooks = NoopFetchHooks{}
	extractHooks = NoopExtractHooks{}
}
