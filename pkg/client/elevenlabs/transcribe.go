package elevenlabs

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe converts speech to text, optionally identifying speakers
func (c *Client) Transcribe(ctx context.Context, req TranscribeRequest) (*TranscribeResponse, error) {
	var response TranscribeResponse

	// Set default model
	if req.Model == "" {
		req.Model = Models[0]
	} else if !slices.Contains(Models, req.Model) {
		return nil, httpresponse.ErrBadRequest.Withf("invalid model %q, must be one of %v", req.Model, Models)
	}

	// Check file
	if req.File.Body == nil {
		return nil, httpresponse.ErrBadRequest.With("file is required")
	}
	if req.File.Path == "" {
		if f, ok := req.File.Body.(*os.File); ok {
			req.File.Path = filepath.Base(f.Name())
		} else {
			req.File.Path = "audio.wav"
		}
	}

	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(TranscribePath)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
