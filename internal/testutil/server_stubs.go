package testutil

import (
	"context"
	"errors"
	"net/http"
)

// ErrListen is returned by ErrHTTPServer when no Err is set.
var ErrListen = errors.New("listen failure")

func addrOr(addr string) string {
	if addr == "" {
		return ":0"
	}
	return addr
}

func handlerOr(h http.Handler) http.Handler {
	if h == nil {
		return http.NotFoundHandler()
	}
	return h
}

// StubHTTPServer counts lifecycle calls and returns the configured errors.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenCalls   int
	ShutdownCalls int
	ListenErr     error
	ShutdownErr   error
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(context.Context) error {
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string          { return addrOr(s.AddrVal) }
func (s *StubHTTPServer) Handler() http.Handler { return handlerOr(s.HandlerVal) }

// BlockingHTTPServer holds Shutdown until Unblock closes or ctx expires.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error { return nil }

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string          { return addrOr(b.AddrVal) }
func (b *BlockingHTTPServer) Handler() http.Handler { return handlerOr(b.HandlerVal) }

// ErrHTTPServer fails ListenAndServe immediately with Err, or ErrListen.
type ErrHTTPServer struct {
	Err           error
	ShutdownCalls int
}

func (e *ErrHTTPServer) ListenAndServe() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrListen
}

func (e *ErrHTTPServer) Shutdown(context.Context) error {
	e.ShutdownCalls++
	return nil
}

func (e *ErrHTTPServer) Addr() string          { return ":0" }
func (e *ErrHTTPServer) Handler() http.Handler { return handlerOr(nil) }

// CloseableHTTPServer behaves like a server that was already shut down.
type CloseableHTTPServer struct {
	ShutdownCalls int
}

func (c *CloseableHTTPServer) ListenAndServe() error { return http.ErrServerClosed }

func (c *CloseableHTTPServer) Shutdown(context.Context) error {
	c.ShutdownCalls++
	return nil
}

func (c *CloseableHTTPServer) Addr() string          { return ":0" }
func (c *CloseableHTTPServer) Handler() http.Handler { return handlerOr(nil) }
