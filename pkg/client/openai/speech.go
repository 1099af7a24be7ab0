package openai

import (
	"context"
	"slices"
	"strings"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Speech synthesizes the input text and returns the audio
func (c *Client) Speech(ctx context.Context, req SpeechRequest) (*SpeechResponse, error) {
	var response SpeechResponse

	if strings.TrimSpace(req.Input) == "" {
		return nil, httpresponse.ErrBadRequest.With("input is required")
	}

	// Set defaults
	if req.Model == "" {
		req.Model = ModelTTS1
	} else if !slices.Contains(SpeechModels, req.Model) {
		return nil, httpresponse.ErrBadRequest.Withf("invalid model %q, must be one of %v", req.Model, SpeechModels)
	}
	if req.Voice == "" {
		req.Voice = DefaultVoice
	} else if !slices.Contains(Voices, req.Voice) {
		return nil, httpresponse.ErrBadRequest.Withf("invalid voice %q, must be one of %v", req.Voice, Voices)
	}
	if format := types.PtrString(req.Format); format != "" && !slices.Contains(SpeechFormats, format) {
		return nil, httpresponse.ErrBadRequest.Withf("invalid format %q, must be one of %v", format, SpeechFormats)
	}
	if req.Speed != nil && (*req.Speed < MinSpeed || *req.Speed > MaxSpeed) {
		return nil, httpresponse.ErrBadRequest.Withf("speed %v out of range", *req.Speed)
	}

	// Voice instructions only apply to gpt-4o-mini-tts
	if req.Model != ModelGPT4oMiniTTS || strings.TrimSpace(types.PtrString(req.Instructions)) == "" {
		req.Instructions = nil
	}

	// Create JSON request, and execute it
	if payload, err := client.NewJSONRequest(req); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(SpeechPath)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
