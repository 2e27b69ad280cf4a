package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/origintrace/marketplace/internal/aigw"
	"github.com/origintrace/marketplace/internal/config"
	"github.com/origintrace/marketplace/internal/es"
	"github.com/origintrace/marketplace/internal/httpserver"
	"github.com/origintrace/marketplace/internal/logging"
	"github.com/origintrace/marketplace/internal/mykafka"
	"github.com/origintrace/marketplace/internal/service"
	"github.com/origintrace/marketplace/internal/store"
)

const deviceIndex = "device"

func main() {
	configuration, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	st, err := store.Open(configuration.DBPath)
	if err != nil {
		log.Fatalf("store open error: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KafkaAddress != "" {
		prod = mykafka.NewProducer([]string{configuration.KafkaAddress})
	}

	var searchHandler *httpserver.SearchHandler
	deviceHandler := &httpserver.DeviceHandler{}
	cartHandler := &httpserver.CartHandler{}
	if configuration.ESURL != "" {
		client, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		searchHandler = &httpserver.SearchHandler{ES: client, Index: deviceIndex}
		deviceHandler.ES = client
		deviceHandler.Index = deviceIndex
		cartHandler.ES = client
		cartHandler.Index = deviceIndex
	}

	gateway := aigw.NewClient(configuration.AIURL, configuration.AITimeout)
	svc := service.New(st, gateway)

	deviceHandler.Svc = svc
	deviceHandler.Producer = prod
	cartHandler.Svc = svc
	cartHandler.Producer = prod

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), httpserver.RequestLogger(logger))

	deps := httpserver.Deps{
		UserHandler:     &httpserver.UserHandler{Svc: svc, Producer: prod},
		DeviceHandler:   deviceHandler,
		ContractHandler: &httpserver.ContractHandler{Svc: svc, Producer: prod},
		ReportHandler:   &httpserver.ReportHandler{Svc: svc, Producer: prod},
		CartHandler:     cartHandler,
		AIHandler:       &httpserver.AIHandler{Svc: svc},
		SearchHandler:   searchHandler,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := st.Close(); err != nil {
		log.Printf("store close error: %v", err)
	}

	if prod != nil {
		if err := prod.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
