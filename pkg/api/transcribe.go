package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	// Packages
	"github.com/mutablelogic/go-client/pkg/multipart"
	"github.com/mutablelogic/go-server/pkg/httprequest"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/client"
	"github.com/mutablelogic/go-voice/pkg/client/openai"
	"github.com/mutablelogic/go-voice/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type reqTranscribe struct {
	Model       string         `json:"model"`
	File        multipart.File `json:"file"`
	Language    *string        `json:"language,omitempty"`
	Prompt      *string        `json:"prompt,omitempty"`
	Temperature *float64       `json:"temperature,omitempty"`
	Format      *string        `json:"response_format,omitempty"`
	Diarize     *bool          `json:"diarize,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func TranscribeFile(ctx context.Context, service Service, w http.ResponseWriter, r *http.Request) error {
	// Read the request
	var req reqTranscribe
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	} else if err := req.Validate(); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Perform the transcription
	result, err := service.Transcribe(ctx, req.Model, req.File.Body, req.opts(true)...)
	if err != nil {
		return errorResponse(w, err)
	}

	// Response to client
	return response(w, types.PtrString(req.Format), result)
}

func TranslateFile(ctx context.Context, service Service, w http.ResponseWriter, r *http.Request) error {
	// Read the request
	var req reqTranscribe
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	} else if err := req.Validate(); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Cannot diarize when translating
	if types.PtrBool(req.Diarize) {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, "Cannot diarize when translating")
	}

	// Perform the translation
	result, err := service.Translate(ctx, req.Model, req.File.Body, req.opts(false)...)
	if err != nil {
		return errorResponse(w, err)
	}

	// Response to client
	return response(w, types.PtrString(req.Format), result)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Validate the request
func (req reqTranscribe) Validate() error {
	if req.File.Body == nil {
		return errors.New("missing file")
	}
	if format := types.PtrString(req.Format); format != "" && !slices.Contains(openai.Formats, format) {
		return fmt.Errorf("invalid response format %q", format)
	}
	return nil
}

// opts returns the client options for the request. Subtitle formats require
// timed segments, which the client rejects for models without them.
func (req reqTranscribe) opts(transcribe bool) []client.Opt {
	opts := []client.Opt{client.OptPath(req.File.Path)}
	if transcribe && req.Language != nil {
		opts = append(opts, client.OptLanguage(types.PtrString(req.Language)))
	}
	if req.Prompt != nil {
		opts = append(opts, client.OptPrompt(types.PtrString(req.Prompt)))
	}
	if req.Temperature != nil {
		opts = append(opts, client.OptTemperature(types.PtrFloat64(req.Temperature)))
	}
	if types.PtrBool(req.Diarize) {
		opts = append(opts, client.OptDiarize())
	}
	switch types.PtrString(req.Format) {
	case openai.FormatVerboseJson, openai.FormatSrt, openai.FormatVtt:
		opts = append(opts, client.OptSegments())
	}
	return opts
}

func response(w http.ResponseWriter, format string, response *schema.Transcription) error {
	switch strings.ToLower(format) {
	case openai.FormatJson, openai.FormatVerboseJson:
		return httpresponse.JSON(w, http.StatusOK, 2, response)
	case openai.FormatText, "":
		return httpresponse.Write(w, http.StatusOK, types.ContentTypeTextPlain, func(w io.Writer) (int, error) {
			return w.Write([]byte(response.Content()))
		})
	case openai.FormatSrt:
		return httpresponse.Write(w, http.StatusOK, "application/x-subrip", func(w io.Writer) (int, error) {
			for _, seg := range response.Segments {
				if err := seg.WriteSRT(w); err != nil {
					return 0, err
				}
			}
			return 0, nil
		})
	case openai.FormatVtt:
		return httpresponse.Write(w, http.StatusOK, "text/vtt", func(w io.Writer) (int, error) {
			if _, err := io.WriteString(w, "WEBVTT\n\n"); err != nil {
				return 0, err
			}
			for _, seg := range response.Segments {
				if err := seg.WriteVTT(w); err != nil {
					return 0, err
				}
			}
			return 0, nil
		})
	}

	// Error - invalid format
	return httpresponse.Error(w, httpresponse.ErrBadRequest, "Invalid response format: "+format)
}
