package openai

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-client/pkg/multipart"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranslationRequest struct {
	Model       string         `json:"model"` // whisper-1
	File        multipart.File `json:"file"`
	Prompt      *string        `json:"prompt,omitempty"`
	Format      *string        `json:"response_format,omitempty"` // json, text, srt, verbose_json, or vtt
	Temperature *float64       `json:"temperature,omitempty"`     // 0.0 -> 1.0
}

type TranscriptionRequest struct {
	TranslationRequest
	Include  []string `json:"include[],omitempty"` // logprobs
	Language *string  `json:"language,omitempty"`  // Transcription only en, es, fr, etc.
}

type TranscriptionResponse struct {
	Task     string                  `json:"task,omitempty"`
	Language string                  `json:"language,omitempty"`
	Duration schema.Timestamp        `json:"duration,omitempty"`
	Text     string                  `json:"text,omitempty"`
	Segment  []*TranscriptionSegment `json:"segments,omitempty"`
}

type TranscriptionSegment struct {
	Id               int32            `json:"id"`
	Seek             uint32           `json:"seek"`
	Start            schema.Timestamp `json:"start"`
	End              schema.Timestamp `json:"end"`
	Text             string           `json:"text"`
	AvgLogProb       *float64         `json:"avg_logprob,omitempty"`
	CompressionRatio *float64         `json:"compression_ratio,omitempty"`
	NoSpeechProb     *float64         `json:"no_speech_prob,omitempty"`
}

type SpeechRequest struct {
	Model        string   `json:"model"`                     // tts-1, tts-1-hd, gpt-4o-mini-tts
	Input        string   `json:"input"`                     // Text to speak
	Voice        string   `json:"voice"`                     // alloy, echo, ...
	Instructions *string  `json:"instructions,omitempty"`    // gpt-4o-mini-tts only
	Format       *string  `json:"response_format,omitempty"` // mp3, opus, aac, flac, wav, pcm
	Speed        *float64 `json:"speed,omitempty"`           // 0.25 -> 4.0
}

type SpeechResponse struct {
	ContentType string
	Data        []byte
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Endpoint       = "https://api.openai.com/v1/"
	TranscribePath = "audio/transcriptions" // Endpoint for transcription
	TranslatePath  = "audio/translations"   // Endpoint for translation
	SpeechPath     = "audio/speech"         // Endpoint for speech synthesis
)

const (
	FormatJson        = "json"
	FormatVerboseJson = "verbose_json"
	FormatText        = "text"
	FormatSrt         = "srt"
	FormatVtt         = "vtt"
)

const (
	ModelWhisper         = "whisper-1"
	ModelGPT4oTranscribe = "gpt-4o-transcribe"
	ModelGPT4oMini       = "gpt-4o-mini-transcribe"
	ModelTTS1            = "tts-1"
	ModelTTS1HD          = "tts-1-hd"
	ModelGPT4oMiniTTS    = "gpt-4o-mini-tts"
	DefaultVoice         = "alloy"
	DefaultSpeechFormat  = "mp3"
	MinSpeed, MaxSpeed   = 0.25, 4.0
)

var (
	// Models for transcription. Only whisper-1 translates.
	Models = []string{ModelWhisper, ModelGPT4oTranscribe, ModelGPT4oMini}

	// Response formats for transcription and translation
	Formats = []string{
		FormatJson, FormatVerboseJson, FormatText, FormatSrt, FormatVtt,
	}

	// Models for speech synthesis
	SpeechModels = []string{ModelTTS1, ModelTTS1HD, ModelGPT4oMiniTTS}

	// Voices for speech synthesis
	Voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer", "coral"}

	// Audio formats for speech synthesis
	SpeechFormats = []string{"mp3", "opus", "aac", "flac", "wav", "pcm"}
)

/////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s TranscriptionRequest) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s TranscriptionResponse) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s SpeechRequest) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

/////////////////////////////////////////////////////////////////////////////////
// UNMARSHALL

func (s *TranscriptionResponse) Unmarshal(header http.Header, r io.Reader) error {
	mimetype, err := types.ParseContentType(header.Get(types.ContentTypeHeader))
	if err != nil {
		return err
	}
	switch mimetype {
	case types.ContentTypeJSON:
		return json.NewDecoder(r).Decode(s)
	case types.ContentTypeTextPlain, "application/x-subrip", "text/vtt":
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		} else {
			s.Text = string(data)
		}
		return nil
	}

	// Decode error
	return httpresponse.ErrBadRequest.Withf("Unsupported content type %q", mimetype)
}

// Speech responses are raw audio in the requested format
func (s *SpeechResponse) Unmarshal(header http.Header, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.ContentType = header.Get(types.ContentTypeHeader)
	s.Data = data
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Segments converts the response into a provider-independent transcription
func (s *TranscriptionResponse) Segments() *schema.Transcription {
	resp := &schema.Transcription{
		Task:     s.Task,
		Provider: Name,
		Language: s.Language,
		Duration: s.Duration,
		Text:     s.Text,
		Segments: make([]*schema.Segment, 0, len(s.Segment)),
	}
	if resp.Task == "" {
		resp.Task = schema.TaskTranscribe
	}
	for _, seg := range s.Segment {
		resp.Segments = append(resp.Segments, &schema.Segment{
			Id:    seg.Id,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return resp
}

// VoiceList returns the synthesis voices as schema voices
func VoiceList() []schema.Voice {
	result := make([]schema.Voice, 0, len(Voices))
	for _, voice := range Voices {
		result = append(result, schema.Voice{
			Id:       voice,
			Name:     cases.Title(language.English).String(voice),
			Group:    Name,
			Provider: Name,
		})
	}
	return result
}
