package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/quansoft/sms-gateway/controller"
	"github.com/quansoft/sms-gateway/dao"
	_ "github.com/quansoft/sms-gateway/docs"
	"github.com/quansoft/sms-gateway/service"
	"github.com/quansoft/sms-gateway/settings"
	"github.com/quansoft/sms-gateway/sms"
	"github.com/quansoft/sms-gateway/util"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Sms gateway HTTP API
// @description Local HTTP gateway that queues sms messages for delivery through the device radio

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file loaded")
	}

	//open message store
	db, err := dao.Open(util.GetEnv("DB_PATH", "sms-gateway.db"))
	if err != nil {
		zap.L().Fatal("Error opening database", zap.Error(err))
	}
	defer db.Close()

	prefs := settings.NewProvider(db)

	token, err := prefs.GetAuthToken()
	if err != nil {
		zap.L().Fatal("Error reading auth token", zap.Error(err))
	}
	zap.L().Info("Gateway auth token", zap.String("token", token))

	//create transport and sender
	transport := sms.NewSimulator(
		time.Duration(util.GetEnvAsInt("SIM_SENT_MS", 200))*time.Millisecond,
		time.Duration(util.GetEnvAsInt("SIM_DELIVER_MS", 800))*time.Millisecond,
	)
	sender := sms.NewSender(transport, util.GetEnvAsInt("SMS_PER_SEC", 5))

	messageDao := dao.NewMessageDao(db)
	campaignDao := dao.NewCampaignDao(db)

	smsService := service.NewService(sender, messageDao, campaignDao, util.GetEnv("WEB_HOOK", ""))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//start sender and queue dispatcher
	if err := sender.Start(ctx); err != nil {
		zap.L().Fatal("Error starting sender", zap.Error(err))
	}

	dispatcher := service.NewDispatcher(messageDao, sender,
		time.Duration(util.GetEnvAsInt("SCAN_INTERVAL_SEC", 5))*time.Second)
	go dispatcher.Run(ctx)

	//attach http handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(requestLogger())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	bindRoutes(e, smsService, prefs)

	port, err := prefs.GetPort()
	if err != nil {
		zap.L().Fatal("Error reading server port", zap.Error(err))
	}

	//start http server, bound to all interfaces for LAN reachability
	go func() {
		if err := e.Start("0.0.0.0:" + strconv.Itoa(port)); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Error starting http server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Error shutting down http server", zap.Error(err))
	}
}

func bindRoutes(e *echo.Echo, srv service.Service, prefs settings.Provider) {
	auth := controller.AuthMiddleware(prefs.GetAuthToken)

	e.GET("/messages", controller.GetMessagesFunc(srv), auth)
	e.POST("/send", controller.GetSendFunc(srv), auth)
	e.POST("/send-bulk", controller.GetSendBulkFunc(srv), auth)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	})
}
