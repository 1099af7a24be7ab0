package api

import (
	"context"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-voice/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type respModels struct {
	Object string         `json:"object,omitempty"`
	Models []schema.Model `json:"models"`
}

type respVoices struct {
	Object string         `json:"object,omitempty"`
	Groups []string       `json:"groups"`
	Voices []schema.Voice `json:"voices"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func ListModels(ctx context.Context, w http.ResponseWriter, service Service) error {
	models, err := service.ListModels(ctx)
	if err != nil {
		return errorResponse(w, err)
	}
	return httpresponse.JSON(w, http.StatusOK, 2, respModels{
		Object: "list",
		Models: models,
	})
}

// ListVoices returns voices ordered by group
func ListVoices(ctx context.Context, w http.ResponseWriter, service Service) error {
	voices, err := service.ListVoices(ctx)
	if err != nil {
		return errorResponse(w, err)
	}
	groups, names := schema.GroupVoices(voices)
	resp := respVoices{
		Object: "list",
		Groups: names,
		Voices: make([]schema.Voice, 0, len(voices)),
	}
	for _, name := range names {
		resp.Voices = append(resp.Voices, groups[name]...)
	}
	return httpresponse.JSON(w, http.StatusOK, 2, resp)
}
