package elevenlabs

import (
	"context"
	"net/url"
	"slices"
	"strings"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Speech synthesizes text with a voice and returns the audio
func (c *Client) Speech(ctx context.Context, req SpeechRequest) (*SpeechResponse, error) {
	var response SpeechResponse

	if strings.TrimSpace(req.Text) == "" {
		return nil, httpresponse.ErrBadRequest.With("text is required")
	}

	// Set defaults
	if req.Voice == "" {
		req.Voice = DefaultVoice
	}
	if req.Model == "" {
		req.Model = ModelMultilingualV2
	} else if !slices.Contains(SpeechModels, req.Model) {
		return nil, httpresponse.ErrBadRequest.Withf("invalid model %q, must be one of %v", req.Model, SpeechModels)
	}
	if req.Format == "" {
		req.Format = DefaultFormat
	}
	if req.VoiceSettings == nil {
		req.VoiceSettings = &VoiceSettings{
			Stability:       DefaultStability,
			SimilarityBoost: DefaultSimilarity,
		}
	}

	// Create JSON request, and execute it
	query := url.Values{}
	query.Set("output_format", req.Format)
	if payload, err := client.NewJSONRequest(req); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(SpeechPath, req.Voice), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
