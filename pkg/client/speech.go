package client

import (
	"context"
	"strings"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/client/elevenlabs"
	"github.com/mutablelogic/go-voice/pkg/client/native"
	"github.com/mutablelogic/go-voice/pkg/client/openai"
	"github.com/mutablelogic/go-voice/pkg/schema"
	"github.com/mutablelogic/go-voice/pkg/thinking"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Speech options
type speechopts struct {
	provider, model, voice string
	format, instructions   string
	speed                  *float64
}

type SpeechOpt func(*speechopts) error

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the speech provider, overriding the configured one
func OptProvider(v string) SpeechOpt {
	return func(o *speechopts) error {
		o.provider = v
		return nil
	}
}

// Set the speech model
func OptSpeechModel(v string) SpeechOpt {
	return func(o *speechopts) error {
		o.model = v
		return nil
	}
}

// Set the voice
func OptVoice(v string) SpeechOpt {
	return func(o *speechopts) error {
		o.voice = v
		return nil
	}
}

// Set the audio format (mp3, opus, aac, flac, wav, pcm)
func OptSpeechFormat(v string) SpeechOpt {
	return func(o *speechopts) error {
		o.format = v
		return nil
	}
}

// Set the relative speed, where 1.0 is normal
func OptSpeed(v float64) SpeechOpt {
	return func(o *speechopts) error {
		if v <= 0 {
			return httpresponse.ErrBadRequest.Withf("speed %v out of range", v)
		}
		o.speed = types.Float64Ptr(v)
		return nil
	}
}

// Set instructions for the voice. Only gpt-4o-mini-tts uses them.
func OptInstructions(v string) SpeechOpt {
	return func(o *speechopts) error {
		o.instructions = v
		return nil
	}
}

// Speak removes reasoning markup from the text and synthesizes what remains
func (c *Client) Speak(ctx context.Context, text string, opt ...SpeechOpt) (*schema.Speech, error) {
	var o speechopts
	for _, opt := range opt {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	// Configured defaults only apply to the configured provider
	if o.provider == "" {
		o.provider = c.config.SpeechProvider
	}
	if o.provider == c.config.SpeechProvider {
		o.model = firstOf(o.model, c.config.SpeechModel)
		o.voice = firstOf(o.voice, c.config.SpeechVoice)
		o.instructions = firstOf(o.instructions, c.config.SpeechInstructions)
	}

	text = thinking.Strip(text)
	if strings.TrimSpace(text) == "" {
		return nil, httpresponse.ErrBadRequest.With("nothing to speak")
	}

	switch o.provider {
	case openai.Name:
		if c.openai == nil {
			break
		}
		return c.speakOpenAI(ctx, text, o)
	case elevenlabs.Name:
		if c.elevenlabs == nil {
			break
		}
		return c.speakElevenLabs(ctx, text, o)
	case native.Name:
		if c.native == nil {
			break
		}
		return c.speakNative(ctx, text, o)
	case "":
		return nil, httpresponse.ErrNotImplemented.With("no speech provider configured")
	default:
		return nil, httpresponse.ErrBadRequest.Withf("invalid speech provider %q, must be one of %v", o.provider, Providers)
	}

	return nil, httpresponse.ErrNotImplemented.Withf("speech provider %q is not configured", o.provider)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) speakOpenAI(ctx context.Context, text string, o speechopts) (*schema.Speech, error) {
	req := openai.SpeechRequest{
		Model: firstOf(o.model, openai.ModelTTS1),
		Input: text,
		Voice: firstOf(o.voice, openai.DefaultVoice),
		Speed: o.speed,
	}
	if o.format != "" {
		req.Format = types.StringPtr(o.format)
	}
	if o.instructions != "" {
		req.Instructions = types.StringPtr(o.instructions)
	}
	resp, err := c.openai.Speech(ctx, req)
	if err != nil {
		return nil, err
	}
	return &schema.Speech{
		Provider:    openai.Name,
		Model:       req.Model,
		Voice:       req.Voice,
		ContentType: firstOf(resp.ContentType, schema.ContentType(firstOf(o.format, openai.DefaultSpeechFormat))),
		Data:        resp.Data,
	}, nil
}

func (c *Client) speakElevenLabs(ctx context.Context, text string, o speechopts) (*schema.Speech, error) {
	req := elevenlabs.SpeechRequest{
		Text:  text,
		Model: firstOf(o.model, elevenlabs.ModelMultilingualV2),
		Voice: firstOf(o.voice, elevenlabs.DefaultVoice),
	}

	// Short format names map to an output format, others pass through
	format := firstOf(o.format, "mp3")
	if v, exists := elevenlabs.Formats[format]; exists {
		req.Format = v
	} else {
		req.Format = format
	}
	if o.speed != nil {
		req.VoiceSettings = &elevenlabs.VoiceSettings{
			Stability:       elevenlabs.DefaultStability,
			SimilarityBoost: elevenlabs.DefaultSimilarity,
			Speed:           o.speed,
		}
	}

	resp, err := c.elevenlabs.Speech(ctx, req)
	if err != nil {
		return nil, err
	}
	return &schema.Speech{
		Provider:    elevenlabs.Name,
		Model:       req.Model,
		Voice:       req.Voice,
		ContentType: firstOf(resp.ContentType, schema.ContentType(format)),
		Data:        resp.Data,
	}, nil
}

func (c *Client) speakNative(ctx context.Context, text string, o speechopts) (*schema.Speech, error) {
	if o.format != "" && o.format != "wav" {
		return nil, httpresponse.ErrBadRequest.Withf("format %q not supported by %s", o.format, native.Name)
	}
	req := native.SpeechRequest{
		Text:  text,
		Voice: o.voice,
		Rate:  native.Rate(types.PtrFloat64(o.speed)),
	}
	data, err := c.native.Speech(ctx, req)
	if err != nil {
		return nil, err
	}
	return &schema.Speech{
		Provider:    native.Name,
		Voice:       req.Voice,
		ContentType: native.ContentType,
		Data:        data,
	}, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
