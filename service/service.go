package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/quansoft/sms-gateway/dao"
	"github.com/quansoft/sms-gateway/model"
	"github.com/quansoft/sms-gateway/service/dto"
	"github.com/quansoft/sms-gateway/sms"
	"github.com/quansoft/sms-gateway/util"
)

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

type Service interface {
	//SendMessage queues a single message for sending
	SendMessage(req dto.SendRequest) (dto.QueuedMessage, error)
	//SendBulk records a campaign (idempotently) and queues one message per entry
	SendBulk(req dto.BulkRequest) (dto.BulkReceipt, error)
	//Messages returns the message history, newest first
	Messages() ([]model.Message, error)
	//DeleteMessage removes a single message
	DeleteMessage(id string) error
	//DeleteCampaign removes a campaign and all its messages
	DeleteCampaign(id string) error

	//transport outcome handlers, bound to the sender by NewService
	HandleSentStatus(id string, ok bool)
	HandleDeliveredStatus(id string, ok bool)
}

type service struct {
	sender      sms.Sender
	messageDao  dao.MessageDao
	campaignDao dao.CampaignDao
	httpClient  *http.Client
	webhook     string
}

func NewService(sender sms.Sender, messageDao dao.MessageDao, campaignDao dao.CampaignDao, webhook string) Service {
	service := &service{
		sender:      sender,
		messageDao:  messageDao,
		campaignDao: campaignDao,
		webhook:     webhook,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}

	sender.BindSentHandler(service.HandleSentStatus)
	sender.BindDeliveredHandler(service.HandleDeliveredStatus)

	return service
}

func (s *service) SendMessage(req dto.SendRequest) (dto.QueuedMessage, error) {
	if util.IsBlank(req.To) || util.IsBlank(req.Message) {
		return dto.QueuedMessage{}, NewInvalidPayloadError("Missing 'to' or 'message' parameter.")
	}

	id := req.MessageID
	if util.IsBlank(id) {
		id = uuid.NewString()
	}

	msg := model.Message{
		Id:        id,
		Recipient: req.To,
		Content:   req.Message,
		Status:    model.StatusQueued,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.messageDao.Save(msg); err != nil {
		return dto.QueuedMessage{}, err
	}

	return dto.QueuedMessage{MessageId: id, Status: model.StatusQueued}, nil
}

func (s *service) SendBulk(req dto.BulkRequest) (dto.BulkReceipt, error) {
	if len(req.Messages) == 0 {
		return dto.BulkReceipt{}, NewInvalidPayloadError("The 'Bulk Messages' list cannot be empty.")
	}

	now := time.Now().UnixMilli()
	campaign := model.Campaign{
		Id:        req.Id,
		Name:      req.Name,
		Timestamp: now,
	}

	msgs := make([]model.Message, 0, len(req.Messages))
	for _, bulkMsg := range req.Messages {
		msgs = append(msgs, model.Message{
			Id:         uuid.NewString(),
			Recipient:  bulkMsg.To,
			Content:    bulkMsg.Message,
			Status:     model.StatusQueued,
			Timestamp:  now,
			CampaignId: req.Id,
		})
	}

	if err := s.campaignDao.CreateWithMessages(campaign, msgs); err != nil {
		return dto.BulkReceipt{}, err
	}

	return dto.BulkReceipt{
		Status:  "success",
		Message: fmt.Sprintf("%d messages have been queued for sending.", len(msgs)),
		BulkId:  req.Id,
	}, nil
}

func (s *service) Messages() ([]model.Message, error) {
	return s.messageDao.GetAll()
}

func (s *service) DeleteMessage(id string) error {
	return s.messageDao.DeleteById(id)
}

func (s *service) DeleteCampaign(id string) error {
	return s.campaignDao.Delete(id)
}
