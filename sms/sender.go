package sms

import (
	"context"
	"time"

	"github.com/cskr/pubsub"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	OUT = "out"

	queueCapacity = 100
)

type sms struct {
	Id        string
	Recipient string
	Body      string
}

// Sender queues outbound messages and pushes them through the transport at a
// bounded rate. Send never blocks on the radio and never returns an error:
// a transport failure is reported through the sent handler as a failed
// submission outcome.
type Sender interface {
	Start(ctx context.Context) error
	Send(id, recipient, body string)
	BindSentHandler(handler StatusHandler)
	BindDeliveredHandler(handler StatusHandler)
}

type sender struct {
	transport   Transport
	ps          *pubsub.PubSub
	out         chan interface{}
	limiter     *rate.Limiter
	sentHandler StatusHandler
}

func NewSender(transport Transport, perSec int) Sender {
	if perSec <= 0 {
		perSec = 1
	}
	ps := pubsub.New(queueCapacity)
	return &sender{
		transport: transport,
		ps:        ps,
		out:       ps.Sub(OUT),
		limiter:   rate.NewLimiter(rate.Limit(perSec), 1),
	}
}

func (s *sender) Start(ctx context.Context) error {
	if err := s.transport.Connect(); err != nil {
		return err
	}

	go s.keepConnected(ctx)
	go s.processOutgoing(ctx)

	return nil
}

func (s *sender) BindSentHandler(handler StatusHandler) {
	//kept locally too, so a synchronous send failure resolves to the same place
	s.sentHandler = handler
	s.transport.BindSentHandler(handler)
}

func (s *sender) BindDeliveredHandler(handler StatusHandler) {
	s.transport.BindDeliveredHandler(handler)
}

func (s *sender) Send(id, recipient, body string) {
	s.ps.Pub(sms{Id: id, Recipient: recipient, Body: body}, OUT)
}

func (s *sender) keepConnected(ctx context.Context) {
	for {
		if !s.transport.IsConnected() {
			if err := s.transport.Connect(); err != nil {
				zap.L().Error("Error reconnecting transport", zap.Error(err))
			}
		}
		select {
		case <-ctx.Done():
			s.transport.Disconnect()
			return
		case <-time.After(time.Second):
		}
	}
}

func (s *sender) processOutgoing(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case val, ok := <-s.out:
			if !ok {
				return
			}
			msg := val.(sms)
			if err := s.limiter.Wait(ctx); err != nil {
				return
			}
			if err := s.transport.Send(msg.Id, msg.Recipient, msg.Body); err != nil {
				zap.L().Error("Error sending message",
					zap.String("id", msg.Id), zap.Error(err))
				if s.sentHandler != nil {
					s.sentHandler(msg.Id, false)
				}
			}
		}
	}
}
