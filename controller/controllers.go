package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quansoft/sms-gateway/service"
	"github.com/quansoft/sms-gateway/service/dto"
	"go.uber.org/zap"
)

const sysMalfunction = "System malfunction. Please, try later"

// GetMessages godoc
// @Summary List messages
// @Description Returns the message history, newest first
// @Produce json
// @Param Authorization header string true "Auth token"
// @Success 200 {array} model.Message
// @Failure 403 "Unauthorized"
// @Router /messages [get]
func GetMessagesFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		msgs, err := srv.Messages()
		if err != nil {
			zap.L().Error("Error listing messages", zap.Error(err))
			return c.String(http.StatusInternalServerError, sysMalfunction)
		}

		return c.JSON(http.StatusOK, msgs)
	}
}

// Send godoc
// @Summary Queue a message
// @Description Queues a single message for sending
// @Accept json
// @Produce json
// @Param Authorization header string true "Auth token"
// @Param message body dto.SendRequest true "Message"
// @Success 200 {object} dto.QueuedMessage
// @Failure 400 "error description"
// @Failure 403 "Unauthorized"
// @Router /send [post]
func GetSendFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.SendRequest)
		if err := c.Bind(req); err != nil {
			return err
		}

		queued, err := srv.SendMessage(*req)
		if err != nil {
			switch err.(type) {
			case *service.InvalidPayloadErr:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				zap.L().Error("Error queuing message", zap.Error(err))
				return c.String(http.StatusInternalServerError, sysMalfunction)
			}
		}

		return c.JSON(http.StatusOK, queued)
	}
}

// SendBulk godoc
// @Summary Queue a campaign
// @Description Records a campaign and queues one message per entry
// @Accept json
// @Produce json
// @Param Authorization header string true "Auth token"
// @Param bulk body dto.BulkRequest true "Campaign"
// @Success 202 {object} dto.BulkReceipt
// @Failure 400 "error description"
// @Failure 403 "Unauthorized"
// @Router /send-bulk [post]
func GetSendBulkFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.BulkRequest)
		if err := c.Bind(req); err != nil {
			return err
		}

		receipt, err := srv.SendBulk(*req)
		if err != nil {
			switch err.(type) {
			case *service.InvalidPayloadErr:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				zap.L().Error("Error queuing campaign", zap.Error(err))
				return c.String(http.StatusInternalServerError, sysMalfunction)
			}
		}

		return c.JSON(http.StatusAccepted, receipt)
	}
}
