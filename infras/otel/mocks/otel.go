// Package mocks provides an in-memory otel.Otel for tests. Spans are not exported; the
// names of opened spans and the errors traced on them are kept for assertions.
package mocks

import (
	"context"
	"rentdesk/infras/otel"
	"sync"
)

type Otel struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewOtel() *Otel {
	return &Otel{}
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, &scope{otel: o}
}

// Spans returns the names of the spans opened so far.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

// Errors returns the errors traced so far.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

type scope struct {
	otel *Otel
}

func (s *scope) End() {}

func (s *scope) TraceError(err error) {
	s.otel.mu.Lock()
	s.otel.errors = append(s.otel.errors, err)
	s.otel.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(string) {}

func (s *scope) SetAttribute(string, any) {}

func (s *scope) SetAttributes(map[string]any) {}
