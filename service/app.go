package service

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const defaultListenAddr = ":8080"
const defaultWebhooksDBPath = "webhooks.db"

// RunApp mirrors the teacher's App.go: read config from the environment,
// build the container, start the dispatcher's worker pool, serve.
func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	webhooksDBPath := os.Getenv("WEBHOOKS_DB_FILEPATH")
	if webhooksDBPath == "" {
		webhooksDBPath = defaultWebhooksDBPath
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	container, err := BuildServiceContainer(webhooksDBPath, logger)
	if err != nil {
		return fmt.Errorf("build service container: %w", err)
	}

	container.WebhookDispatcher.Start()
	defer container.WebhookDispatcher.Close()
	defer container.Database.Close()

	logger.Info("listening", "addr", listenAddr)
	return http.ListenAndServe(listenAddr, container.Router)
}

// HandleExitError mirrors the teacher's App.go exit-code convention.
func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}
	return 0
}
