package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports fetch and extract events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnFetchStart(_ context.Context, url string) {
	h.logger.Debug("GET", "url", url)
}

func (h *logHooks) OnFetchComplete(_ context.Context, url string, status, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "url", url, "status", status, "err", err)
		return
	}
	h.logger.Debug("fetch complete", "status", status, "bytes", size, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnExtractComplete(_ context.Context, url string, kept int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("extract failed", "url", url, "err", err)
		return
	}
	h.logger.Debug("extract complete", "kept", kept, "duration", d.Round(time.Millisecond))
}
