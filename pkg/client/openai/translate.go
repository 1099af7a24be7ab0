package openai

import (
	"context"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-voice/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Translate performs a transcription request and returns the result in english
func (c *Client) Translate(ctx context.Context, req TranslationRequest) (*TranscriptionResponse, error) {
	var response TranscriptionResponse

	// Set default model, only whisper-1 translates
	if req.Model == "" {
		req.Model = ModelWhisper
	} else if req.Model != ModelWhisper {
		return nil, httpresponse.ErrNotImplemented.Withf("translation with model %q is not supported", req.Model)
	}

	// Check file, set path if not provided
	if err := checkFile(&req); err != nil {
		return nil, err
	}

	// Create multipart request, and execute it
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(TranslatePath)); err != nil {
		return nil, err
	}

	// Return success
	response.Task = schema.TaskTranslate
	return &response, nil
}
