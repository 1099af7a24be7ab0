package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	// Packages
	api "github.com/mutablelogic/go-voice/pkg/api"
)

type ServerCmd struct {
	Listen string `flag:"" help:"Address to listen on" default:"localhost:8080"`
	Base   string `flag:"" help:"Base path for the API" default:"/api/v1"`
}

func (cmd *ServerCmd) Run(app *Globals) error {
	server := &http.Server{
		Addr:              cmd.Listen,
		Handler:           api.RegisterEndpoints(cmd.Base, app.client, nil, app.Debug),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Shut down when the context is cancelled
	go func() {
		<-app.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Print(err)
		}
	}()

	log.Printf("Listening on %q, speech provider %q", cmd.Listen, app.client.SpeechProvider())
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
