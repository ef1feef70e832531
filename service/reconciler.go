package service

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/quansoft/sms-gateway/model"
	"github.com/quansoft/sms-gateway/util"
	"go.uber.org/zap"
)

// The two handlers below reconcile transport-reported outcomes onto message
// state. The transport only offers best-effort unordered callbacks, so the
// writes are deliberately last-write-wins: re-applying a status is harmless
// and no causal ordering is enforced between the two outcomes. A report for
// a deleted message is a no-op in the dao.

func (s *service) HandleSentStatus(id string, ok bool) {
	status := model.StatusSent
	if !ok {
		status = model.StatusFailed
	}
	if err := s.messageDao.UpdateStatus(id, status); err != nil {
		zap.L().Error("Error updating sent status", zap.String("id", id), zap.Error(err))
	}
}

func (s *service) HandleDeliveredStatus(id string, ok bool) {
	status := model.StatusDelivered
	if !ok {
		status = model.StatusFailed
	}
	if err := s.messageDao.UpdateStatus(id, status); err != nil {
		zap.L().Error("Error updating delivery status", zap.String("id", id), zap.Error(err))
		return
	}

	if util.IsBlank(s.webhook) {
		return
	}
	s.notifyWebhook(id)
}

// notifyWebhook POSTs the message (with its final status) to the configured
// webhook after a delivery outcome.
func (s *service) notifyWebhook(id string) {
	msg, err := s.messageDao.GetOneById(id)
	if err != nil {
		zap.L().Error("Error loading message for webhook", zap.String("id", id), zap.Error(err))
		return
	}

	body, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("Error encoding webhook payload", zap.Error(err))
		return
	}

	req, err := http.NewRequest(http.MethodPost, s.webhook, bytes.NewBuffer(body))
	if err != nil {
		zap.L().Error("Error calling web hook", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		zap.L().Error("Error calling web hook", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode <= 202) {
		zap.L().Warn("Webhook returned unexpected status", zap.String("status", resp.Status))
	}
}
