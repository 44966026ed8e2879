package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/octabyte/smartsaas-go/config"
	"github.com/octabyte/smartsaas-go/stub"
	"github.com/octabyte/smartsaas-go/utils/logger"
)

func main() {
	cfg, err := config.ParseStub()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:       cfg.LogLevel,
		Env:         cfg.Env,
		ServiceName: "smartsaas-stub",
	})
	defer logger.Sync()

	server := stub.New(stub.Config{JWTSecret: cfg.JWTSecret})

	logger.LogInfof("stub backend listening on %s", cfg.Addr)
	if err := server.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.LogFatal(err.Error())
	}
}
