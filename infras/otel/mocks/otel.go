// Package mocks provides a tracer that records nothing, for tests.
package mocks

import (
	"bloom/infras/otel"
	"context"
)

type otelImpl struct{}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

type scopeImpl struct{}

func NewScope() otel.Scope {
	return &scopeImpl{}
}

func (s *scopeImpl) End() {}
func (s *scopeImpl) TraceError(_ error) {}
func (s *scopeImpl) TraceIfError(_ error) {}
func (s *scopeImpl) AddEvent(_ string) {}
func (s *scopeImpl) SetAttribute(_ string, _ any) {}
func (s *scopeImpl) SetAttributes(_ map[string]any) {}
