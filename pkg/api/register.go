package api

import (
	"context"
	"errors"
	"net/http"
	"os"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/logger"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/client"
	"github.com/mutablelogic/go-voice/pkg/client/openai"
	"github.com/mutablelogic/go-voice/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////
// TYPES

// Service is the speech service exposed by the API
type Service interface {
	client.Transcriber
	client.Synthesizer

	ListModels(context.Context) ([]schema.Model, error)
	ListVoices(context.Context) ([]schema.Voice, error)
}

/////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StripPath   = "text/strip"
	MetricsPath = "metrics"
)

/////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func RegisterEndpoints(base string, service Service, mux *http.ServeMux, debug bool) *http.ServeMux {
	// Create a new router
	if mux == nil {
		mux = http.NewServeMux()
	}

	// Create a logger and metrics
	logger := logger.New(os.Stderr, logger.Term, debug)
	metrics := NewMetrics()

	// Not Found: GET /
	//   returns a not found response
	mux.HandleFunc("/", logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		httpresponse.Error(w, httpresponse.ErrNotFound)
	}))

	// Health: GET /v1/health
	//   returns an empty OK response
	mux.HandleFunc(types.JoinPath(base, "health"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			httpresponse.Empty(w, http.StatusOK)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// List Models: GET /v1/models
	//   returns transcription and speech models
	mux.HandleFunc(types.JoinPath(base, "models"), logger.HandleFunc(metrics.instrument("models", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			ListModels(r.Context(), w, service)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	})))

	// List Voices: GET /v1/voices
	//   returns speech voices and their groups
	mux.HandleFunc(types.JoinPath(base, "voices"), logger.HandleFunc(metrics.instrument("voices", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			ListVoices(r.Context(), w, service)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	})))

	// Translate: POST /v1/audio/translations
	//   Translates audio into english
	mux.HandleFunc(types.JoinPath(base, openai.TranslatePath), logger.HandleFunc(metrics.instrument("translate", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			TranslateFile(r.Context(), service, w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	})))

	// Transcribe: POST /v1/audio/transcriptions
	//   Transcribes audio into the input language - language parameter should be set to the source
	//   language of the audio
	mux.HandleFunc(types.JoinPath(base, openai.TranscribePath), logger.HandleFunc(metrics.instrument("transcribe", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			TranscribeFile(r.Context(), service, w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	})))

	// Speech: POST /v1/audio/speech
	//   Synthesizes the input, after removing reasoning markup, and returns audio
	mux.HandleFunc(types.JoinPath(base, openai.SpeechPath), logger.HandleFunc(metrics.instrument("speech", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Speak(r.Context(), service, metrics, w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	})))

	// Strip: POST /v1/text/strip
	//   Returns the input with reasoning markup removed
	mux.HandleFunc(types.JoinPath(base, StripPath), logger.HandleFunc(metrics.instrument("strip", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			StripText(w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	})))

	// Metrics: GET /v1/metrics
	mux.Handle(types.JoinPath(base, MetricsPath), metrics.Handler())

	// Return mux
	return mux
}

/////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// errorResponse keeps the status of validation errors, and reports anything
// else as an upstream failure
func errorResponse(w http.ResponseWriter, err error) error {
	var code httpresponse.Err
	if errors.As(err, &code) {
		return httpresponse.Error(w, code, err.Error())
	}
	return httpresponse.Error(w, httpresponse.ErrGatewayError, err.Error())
}
