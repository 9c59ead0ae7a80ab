package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	httpadapter "github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/kndri/selah-journaling/internal/config"
	"github.com/kndri/selah-journaling/internal/container"
	"github.com/kndri/selah-journaling/internal/router"
)

func main() {
	c := container.New()
	defer c.ReminderContainer.Scheduler.CancelAll()

	r := router.New(router.RouterConfig{
		UserHandler:          c.UserContainer.Handler,
		InsightHandler:       c.InsightContainer.Handler,
		TranscriptionHandler: c.TranscriptionContainer.Handler,
		ReflectionHandler:    c.ReflectionContainer.Handler,
		StreakHandler:        c.StreakContainer.Handler,
		ReminderHandler:      c.ReminderContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	addr := config.Getenv("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		config.Logger().WithField("addr", addr).Info("Listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Logger().WithError(err).Fatal("server failed")
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
