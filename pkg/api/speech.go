package api

import (
	"context"
	"io"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httprequest"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/client"
	"github.com/mutablelogic/go-voice/pkg/thinking"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type reqSpeech struct {
	Input        string   `json:"input"`
	Model        *string  `json:"model,omitempty"`
	Voice        *string  `json:"voice,omitempty"`
	Provider     *string  `json:"provider,omitempty"`
	Format       *string  `json:"response_format,omitempty"`
	Speed        *float64 `json:"speed,omitempty"`
	Instructions *string  `json:"instructions,omitempty"`
}

type reqStrip struct {
	Input string `json:"input"`
}

type respStrip struct {
	Text string `json:"text"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Speak returns the synthesized input as audio
func Speak(ctx context.Context, service Service, metrics *Metrics, w http.ResponseWriter, r *http.Request) error {
	var req reqSpeech
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Set options
	opts := []client.SpeechOpt{}
	if req.Provider != nil {
		opts = append(opts, client.OptProvider(types.PtrString(req.Provider)))
	}
	if req.Model != nil {
		opts = append(opts, client.OptSpeechModel(types.PtrString(req.Model)))
	}
	if req.Voice != nil {
		opts = append(opts, client.OptVoice(types.PtrString(req.Voice)))
	}
	if req.Format != nil {
		opts = append(opts, client.OptSpeechFormat(types.PtrString(req.Format)))
	}
	if req.Speed != nil {
		opts = append(opts, client.OptSpeed(types.PtrFloat64(req.Speed)))
	}
	if req.Instructions != nil {
		opts = append(opts, client.OptInstructions(types.PtrString(req.Instructions)))
	}

	// Synthesize
	speech, err := service.Speak(ctx, req.Input, opts...)
	if err != nil {
		return errorResponse(w, err)
	}
	metrics.speechBytes(speech.Provider, len(speech.Data))

	// Return the audio
	return httpresponse.Write(w, http.StatusOK, speech.ContentType, func(w io.Writer) (int, error) {
		return w.Write(speech.Data)
	})
}

// StripText returns the input with reasoning markup removed
func StripText(w http.ResponseWriter, r *http.Request) error {
	var req reqStrip
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}
	return httpresponse.JSON(w, http.StatusOK, 2, respStrip{
		Text: thinking.Strip(req.Input),
	})
}
