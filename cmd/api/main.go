package main

import (
	"context"
	"log"

	"rest-user-service/cmd/api/app"
	"rest-user-service/cmd/api/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}

func run() error {
	application, err := app.New()
	if err != nil {
		return err
	}

	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	return application.Run(ctx)
}
