package openai

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe performs a transcription request in the language of the speech
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error) {
	var response TranscriptionResponse

	// Set default model
	if req.Model == "" {
		req.Model = Models[0]
	} else if !slices.Contains(Models, req.Model) {
		return nil, httpresponse.ErrBadRequest.Withf("invalid model %q, must be one of %v", req.Model, Models)
	}

	// The gpt-4o models only return json or text
	if format := types.PtrString(req.Format); format != "" && req.Model != ModelWhisper {
		if format != FormatJson && format != FormatText {
			return nil, httpresponse.ErrBadRequest.Withf("format %q not supported by model %q", format, req.Model)
		}
	}

	// Check file, set path if not provided
	if err := checkFile(&req.TranslationRequest); err != nil {
		return nil, err
	}

	// Create multipart request, and execute it
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(TranscribePath)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func checkFile(req *TranslationRequest) error {
	if req.File.Body == nil {
		return httpresponse.ErrBadRequest.With("file is required")
	}
	if req.File.Path == "" {
		if f, ok := req.File.Body.(*os.File); ok {
			req.File.Path = filepath.Base(f.Name())
		} else {
			req.File.Path = "audio.wav"
		}
	}
	return nil
}
