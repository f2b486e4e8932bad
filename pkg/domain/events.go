package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPrompt  EventType = "prompt"
	EventResolve EventType = "resolve"
	EventFailure EventType = "failure"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// OptionEvent describes one step of collecting an option.
type OptionEvent struct {
	EventBase
	OptionID    string     `json:"option_id"`
	OptionType  OptionType `json:"option_type"`
	UsedDefault bool       `json:"used_default,omitempty"`
	Err         error      `json:"-"`
}

// NewOptionEvent stamps an event for the given binding.
func NewOptionEvent(kind EventType, b Binding) *OptionEvent {
	return &OptionEvent{
		EventBase:  EventBase{Timestamp: time.Now(), Type: kind},
		OptionID:   b.ID,
		OptionType: b.Type,
	}
}

// LifecycleHooks defines callbacks for collector observability.
type LifecycleHooks struct {
	OnPrompt  func(context.Context, *OptionEvent)
	OnResolve func(context.Context, *OptionEvent)
	OnFailure func(context.Context, *OptionEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnPrompt:  chain(h.OnPrompt, other.OnPrompt),
		OnResolve: chain(h.OnResolve, other.OnResolve),
		OnFailure: chain(h.OnFailure, other.OnFailure),
	}
}

func chain(a, b func(context.Context, *OptionEvent)) func(context.Context, *OptionEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *OptionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
