package service

import (
	"slices"

	"github.com/aretw0/introspection"

	"github.com/aretw0/quire/pkg/core"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes           int          `json:"notes"`
	Visible         int          `json:"visible"`
	Filters         core.Filters `json:"filters"`
	Sort            string       `json:"sort"`
	Persistent      bool         `json:"persistent"`
	Warnings        []string     `json:"warnings,omitempty"`
	EventBufferSize int          `json:"event_buffer_size"`
	StoreType       string       `json:"store_type"`
	Store           any          `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	visible := len(s.Visible())

	s.mu.RLock()
	defer s.mu.RUnlock()

	storeType := "kv"
	var storeState any
	if comp, ok := s.store.KV().(introspection.Component); ok {
		storeType = comp.ComponentType()
	}
	if in, ok := s.store.KV().(introspection.Introspectable); ok {
		storeState = in.State()
	}

	return ServiceState{
		Notes:           len(s.notes),
		Visible:         visible,
		Filters:         s.filters,
		Sort:            string(s.sort),
		Persistent:      s.persistent,
		Warnings:        slices.Clone(s.warnings),
		EventBufferSize: s.eventBufferSize,
		StoreType:       storeType,
		Store:           storeState,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
