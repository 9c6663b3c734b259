package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// WaitCmd blocks on ch and delivers the next event as a tea.Msg, or nil once
// ctx ends or ch closes.
func WaitCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// Listener holds one subscription open across update cycles. The model calls
// Next again each time it handles an event.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// Listen subscribes to sub until ctx ends.
func Listen[T any](ctx context.Context, sub Subscriber[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: sub.Subscribe(ctx)}
}

// Next waits for the following event. A nil listener yields a nil command.
func (l *Listener[T]) Next() tea.Cmd {
	if l == nil {
		return nil
	}
	return WaitCmd(l.ctx, l.ch)
}
