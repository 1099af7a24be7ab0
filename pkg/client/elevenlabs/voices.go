package elevenlabs

import (
	"context"

	// Packages
	"github.com/mutablelogic/go-client"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListVoices returns the voices available to the account, including
// cloned and generated voices
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	var response struct {
		Voices []Voice `json:"voices"`
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath(VoicesPath)); err != nil {
		return nil, err
	}
	return response.Voices, nil
}
