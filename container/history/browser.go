// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package history provides a browser style navigation history with back
// and forward movement over previously visited pages.
package history

import (
	"context"
	"iter"
	"log/slog"

	"cloudeng.io/dsa/container/list"
	"cloudeng.io/logging/ctxlog"
)

type options struct {
	logger *slog.Logger
}

// Option represents an option to New.
type Option func(o *options)

// WithLogger sets the logger used to record visits and navigation.
// Events are logged at debug level. A nil logger selects the default,
// ctxlog.Logger(context.Background()).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithContextLogger uses the logger stored in ctx, see ctxlog.Logger.
func WithContextLogger(ctx context.Context) Option {
	return func(o *options) {
		o.logger = ctxlog.Logger(ctx)
	}
}

// Browser records the pages visited in a single browser tab. Visiting a
// page discards any pages that could previously be reached by moving
// forward. Moving back or forward by more steps than are available stops
// at the oldest or newest page respectively, it is never an error.
type Browser struct {
	cursor *list.Cursor[string]
	logger *slog.Logger
}

// New returns a Browser whose history consists of homepage alone.
func New(homepage string, opts ...Option) *Browser {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = ctxlog.Logger(context.Background())
	}
	return &Browser{
		cursor: list.NewCursor(homepage),
		logger: o.logger.With("component", "history"),
	}
}

// Visit visits url from the current page, clearing all forward history.
func (b *Browser) Visit(url string) {
	discarded := b.cursor.Len() - b.cursor.Pos() - 1
	b.cursor.VisitAndTruncate(url)
	b.logger.Debug("visit", "url", url, "discarded", discarded, "len", b.cursor.Len())
}

// Back moves back by up to steps pages and returns the current page.
func (b *Browser) Back(steps int) string {
	from := b.cursor.Pos()
	url := b.cursor.Retreat(steps)
	b.logNavigation("back", steps, from-b.cursor.Pos(), url)
	return url
}

// Forward moves forward by up to steps pages and returns the current page.
func (b *Browser) Forward(steps int) string {
	from := b.cursor.Pos()
	url := b.cursor.Advance(steps)
	b.logNavigation("forward", steps, b.cursor.Pos()-from, url)
	return url
}

func (b *Browser) logNavigation(dir string, requested, moved int, url string) {
	if requested > moved {
		b.logger.Debug(dir, "url", url, "requested", requested, "moved", moved, "clamped", true)
		return
	}
	b.logger.Debug(dir, "url", url, "moved", moved)
}

// Current returns the current page.
func (b *Browser) Current() string {
	return b.cursor.Value()
}

// CanGoBack reports whether there is a page before the current one.
func (b *Browser) CanGoBack() bool {
	return b.cursor.CanRetreat()
}

// CanGoForward reports whether there is a page after the current one.
func (b *Browser) CanGoForward() bool {
	return b.cursor.CanAdvance()
}

// Len returns the number of pages in the history.
func (b *Browser) Len() int {
	return b.cursor.Len()
}

// Pages returns an iterator over all of the pages in the history,
// oldest first.
func (b *Browser) Pages() iter.Seq[string] {
	return b.cursor.Forward()
}
