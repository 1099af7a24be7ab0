package client

import (
	"context"
	"io"
	"path/filepath"
	"slices"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-voice/pkg/client/elevenlabs"
	"github.com/mutablelogic/go-voice/pkg/client/native"
	"github.com/mutablelogic/go-voice/pkg/client/openai"
	"github.com/mutablelogic/go-voice/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config selects the providers and their defaults. Providers without
// credentials are not created.
type Config struct {
	OpenAIKey          string
	OpenAIEndpoint     string // Optional, for OpenAI-compatible servers
	ElevenLabsKey      string
	ElevenLabsEndpoint string // Optional
	SpeechProvider     string // openai, elevenlabs or native
	SpeechModel        string
	SpeechVoice        string
	SpeechInstructions string
	TranscribeModel    string
	NativeCommand      string // espeak-ng compatible binary
}

type Client struct {
	config     Config
	openai     *openai.Client
	elevenlabs *elevenlabs.Client
	native     *native.Client
}

// Transcriber converts speech into text
type Transcriber interface {
	Transcribe(ctx context.Context, model string, r io.Reader, opt ...Opt) (*schema.Transcription, error)
	Translate(ctx context.Context, model string, r io.Reader, opt ...Opt) (*schema.Transcription, error)
}

// Synthesizer converts text into speech
type Synthesizer interface {
	Speak(ctx context.Context, text string, opt ...SpeechOpt) (*schema.Speech, error)
}

var _ Transcriber = (*Client)(nil)
var _ Synthesizer = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// Speech providers
	Providers = []string{openai.Name, elevenlabs.Name, native.Name}
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client, with openai, elevenlabs and native clients
func New(config Config, opts ...client.ClientOpt) (*Client, error) {
	self := new(Client)
	self.config = config

	// openai client
	if key := config.OpenAIKey; key != "" {
		opts := opts
		if config.OpenAIEndpoint != "" {
			opts = append(slices.Clone(opts), client.OptEndpoint(config.OpenAIEndpoint))
		}
		if client, err := openai.New(key, opts...); err != nil {
			return nil, err
		} else {
			self.openai = client
		}
	}

	// elevenlabs client
	if key := config.ElevenLabsKey; key != "" {
		opts := opts
		if config.ElevenLabsEndpoint != "" {
			opts = append(slices.Clone(opts), client.OptEndpoint(config.ElevenLabsEndpoint))
		}
		if client, err := elevenlabs.New(key, opts...); err != nil {
			return nil, err
		} else {
			self.elevenlabs = client
		}
	}

	// native client, which is optional unless it is the speech provider
	if client, err := native.New(config.NativeCommand); err == nil {
		self.native = client
	} else if config.SpeechProvider == native.Name {
		return nil, err
	}

	// Choose a speech provider when not set
	switch self.config.SpeechProvider {
	case "":
		switch {
		case self.openai != nil:
			self.config.SpeechProvider = openai.Name
		case self.elevenlabs != nil:
			self.config.SpeechProvider = elevenlabs.Name
		case self.native != nil:
			self.config.SpeechProvider = native.Name
		}
	case openai.Name, elevenlabs.Name, native.Name:
		// No-op
	default:
		return nil, httpresponse.ErrBadRequest.Withf("invalid speech provider %q, must be one of %v", config.SpeechProvider, Providers)
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SpeechProvider returns the provider used for speech when none is requested
func (c *Client) SpeechProvider() string {
	return c.config.SpeechProvider
}

// List models for transcription, translation and speech
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	result := make([]schema.Model, 0, 10)
	if c.openai != nil {
		result = appendModels(result, openai.Name, schema.TaskTranscribe, openai.Models...)
		result = appendModels(result, openai.Name, schema.TaskSpeech, openai.SpeechModels...)
	}
	if c.elevenlabs != nil {
		result = appendModels(result, elevenlabs.Name, schema.TaskTranscribe, elevenlabs.Models...)
		result = appendModels(result, elevenlabs.Name, schema.TaskSpeech, elevenlabs.SpeechModels...)
	}
	if c.native != nil {
		result = appendModels(result, native.Name, schema.TaskSpeech, filepath.Base(c.native.Path()))
	}

	// Return success
	return result, nil
}

// List voices for speech, across all providers
func (c *Client) ListVoices(ctx context.Context) ([]schema.Voice, error) {
	var result []schema.Voice
	if c.openai != nil {
		result = append(result, openai.VoiceList()...)
	}
	if c.elevenlabs != nil {
		voices, err := c.elevenlabs.ListVoices(ctx)
		if err != nil {
			return nil, err
		}
		for _, voice := range voices {
			result = append(result, voice.Schema())
		}
	}
	if c.native != nil {
		voices, err := c.native.ListVoices(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, voices...)
	}

	// Return success
	return result, nil
}

// Transcribe performs a transcription request in the language of the speech
func (c *Client) Transcribe(ctx context.Context, model string, r io.Reader, opt ...Opt) (*schema.Transcription, error) {
	var response *schema.Transcription
	model = c.transcribeModel(model)
	switch {
	case c.openai != nil && slices.Contains(openai.Models, model):
		if req, err := applyOpts(apiopenai, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.openai.Transcribe(ctx, req.openai); err != nil {
			return nil, err
		} else {
			response = resp.Segments()
		}
	case c.elevenlabs != nil && slices.Contains(elevenlabs.Models, model):
		if req, err := applyOpts(apielevenlabs, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.elevenlabs.Transcribe(ctx, req.elevenlabs); err != nil {
			return nil, err
		} else {
			response = resp.Segments()
		}
	default:
		return nil, httpresponse.ErrNotImplemented.Withf("model %q is not supported", model)
	}

	// Return success
	response.Model = model
	return response, nil
}

// Translate performs a transcription request and returns the result in english
func (c *Client) Translate(ctx context.Context, model string, r io.Reader, opt ...Opt) (*schema.Transcription, error) {
	var response *schema.Transcription
	model = c.transcribeModel(model)
	switch {
	case c.openai != nil && slices.Contains(openai.Models, model):
		if req, err := applyOpts(apiopenai, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.openai.Translate(ctx, req.openai.TranslationRequest); err != nil {
			return nil, err
		} else {
			response = resp.Segments()
		}
	case c.elevenlabs != nil && slices.Contains(elevenlabs.Models, model):
		return nil, httpresponse.ErrNotImplemented.Withf("translation with model %q is not supported", model)
	default:
		return nil, httpresponse.ErrNotImplemented.Withf("model %q is not supported", model)
	}

	// Return success
	response.Model = model
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// transcribeModel returns the model to use when none is given
func (c *Client) transcribeModel(model string) string {
	switch {
	case model != "":
		return model
	case c.config.TranscribeModel != "":
		return c.config.TranscribeModel
	case c.openai != nil:
		return openai.ModelWhisper
	case c.elevenlabs != nil:
		return elevenlabs.Models[0]
	default:
		return ""
	}
}

func appendModels(result []schema.Model, provider, task string, models ...string) []schema.Model {
	for _, model := range models {
		result = append(result, schema.Model{
			Id:       model,
			Provider: provider,
			Task:     task,
		})
	}
	return result
}
