package service

import (
	"context"
	"time"

	"github.com/quansoft/sms-gateway/dao"
	"github.com/quansoft/sms-gateway/model"
	"github.com/quansoft/sms-gateway/sms"
	"go.uber.org/zap"
)

const DefaultScanInterval = 5 * time.Second

// Dispatcher drains the queue at a fixed cadence: every interval it hands all
// queued messages (oldest first) to the sender and marks them sending.
// Outcomes come back later through the status handlers; the loop itself never
// waits on them.
type Dispatcher struct {
	messageDao dao.MessageDao
	sender     sms.Sender
	interval   time.Duration
}

func NewDispatcher(messageDao dao.MessageDao, sender sms.Sender, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = DefaultScanInterval
	}
	return &Dispatcher{messageDao: messageDao, sender: sender, interval: interval}
}

// Run blocks until ctx is canceled. A failed scan is logged and retried on
// the next cycle; a single message's failure never stops the loop.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		d.DispatchQueued()
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.interval):
		}
	}
}

// DispatchQueued performs one scan of the queue.
func (d *Dispatcher) DispatchQueued() {
	msgs, err := d.messageDao.GetQueued()
	if err != nil {
		zap.L().Warn("Error fetching queued messages", zap.Error(err))
		return
	}

	for _, msg := range msgs {
		d.sender.Send(msg.Id, msg.Recipient, msg.Content)
		//optimistic: the send has been handed over, outcome pending
		if err := d.messageDao.UpdateStatus(msg.Id, model.StatusSending); err != nil {
			zap.L().Warn("Error marking message as sending",
				zap.String("id", msg.Id), zap.Error(err))
		}
	}
}
