package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventOpen           EventType = "open"
	EventInvocation     EventType = "invocation"
	EventInvocationFail EventType = "invocation_fail"
)

// InvocationEvent describes one calculator invocation (or its Open call).
type InvocationEvent struct {
	WallTime   time.Time `json:"wall_time"`
	Type       EventType `json:"type"`
	Calculator string    `json:"calculator"`
	Frame      Timestamp `json:"frame"`
	Err        error     `json:"-"`
}

// LifecycleHooks defines callbacks for host observability. Any field may be
// nil; the host skips unset hooks.
type LifecycleHooks struct {
	OnOpen            func(context.Context, *InvocationEvent)
	OnInvocation      func(context.Context, *InvocationEvent)
	OnInvocationError func(context.Context, *InvocationEvent)
}
