package engine

import "github.com/gdamore/tcell/v2"

// EventPump bridges the blocking Screen.PollEvent to a channel the main
// loop can select over. The goroutine exits when the screen is finalized
// (PollEvent returns nil) and closes the channel.
type EventPump struct {
	screen tcell.Screen
	ch     chan tcell.Event
	crash  func(any)
}

// NewEventPump creates a pump over the screen with the given buffer depth.
func NewEventPump(screen tcell.Screen, buffer int) *EventPump {
	return &EventPump{
		screen: screen,
		ch:     make(chan tcell.Event, buffer),
	}
}

// SetCrashHandler installs the panic hook for the pump goroutine. The main
// package injects terminal cleanup here so engine stays screen-agnostic.
func (p *EventPump) SetCrashHandler(fn func(any)) {
	p.crash = fn
}

// Events returns the event channel. Closed when the pump exits.
func (p *EventPump) Events() <-chan tcell.Event {
	return p.ch
}

// Start launches the polling goroutine.
func (p *EventPump) Start() {
	go func() {
		defer func() {
			if r := recover(); r != nil && p.crash != nil {
				p.crash(r)
			}
		}()
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				close(p.ch)
				return
			}
			p.ch <- ev
		}
	}()
}
