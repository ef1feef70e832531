package sms

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Simulator is an in-process Transport that acknowledges every message,
// reporting the sent outcome after sentDelay and the delivered outcome after
// a further deliverDelay. It stands in for a real radio during development
// and in end-to-end tests.
type Simulator struct {
	sentDelay    time.Duration
	deliverDelay time.Duration

	connected atomic.Bool

	mu        sync.RWMutex
	sent      StatusHandler
	delivered StatusHandler
}

func NewSimulator(sentDelay, deliverDelay time.Duration) *Simulator {
	return &Simulator{sentDelay: sentDelay, deliverDelay: deliverDelay}
}

func (t *Simulator) Connect() error {
	t.connected.Store(true)
	return nil
}

func (t *Simulator) Disconnect() {
	t.connected.Store(false)
}

func (t *Simulator) IsConnected() bool {
	return t.connected.Load()
}

func (t *Simulator) BindSentHandler(handler StatusHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = handler
}

func (t *Simulator) BindDeliveredHandler(handler StatusHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.delivered = handler
}

func (t *Simulator) Send(id, recipient, body string) error {
	if !t.IsConnected() {
		return errors.New("transport not connected")
	}

	go func() {
		time.Sleep(t.sentDelay)
		t.fire(id, func() StatusHandler { return t.sent })
		time.Sleep(t.deliverDelay)
		t.fire(id, func() StatusHandler { return t.delivered })
	}()

	return nil
}

func (t *Simulator) fire(id string, get func() StatusHandler) {
	t.mu.RLock()
	handler := get()
	t.mu.RUnlock()
	if handler != nil {
		handler(id, true)
	}
}
