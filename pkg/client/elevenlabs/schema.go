package elevenlabs

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-client/pkg/multipart"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranscribeRequest struct {
	Model          string         `json:"model_id"` // scribe_v1, scribe_v1_experimental
	File           multipart.File `json:"file"`
	Language       *string        `json:"language_code,omitempty"`
	TagAudioEvents *bool          `json:"tag_audio_events,omitempty"`
	NumSpeakers    *uint64        `json:"num_speakers,omitempty"`
	Timestamps     *string        `json:"timestamps_granularity,omitempty"` // none, word, character
	Diarize        *bool          `json:"diarize,omitempty"`
}

type TranscribeWord struct {
	Text    string  `json:"text"`
	Type    string  `json:"type"`              // word, spacing, audio_event
	Logprob float64 `json:"logprob,omitempty"` // -inf -> 0.0
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker *string `json:"speaker_id,omitempty"`
}

type TranscribeResponse struct {
	Language    string           `json:"language_code"`
	Probability float64          `json:"language_probability"`
	Text        string           `json:"text"`
	Words       []TranscribeWord `json:"words,omitempty"`
}

type SpeechRequest struct {
	Voice         string         `json:"-"` // Path parameter
	Format        string         `json:"-"` // Query parameter, mp3_44100_128, pcm_24000, ...
	Text          string         `json:"text"`
	Model         string         `json:"model_id,omitempty"`
	LanguageCode  *string        `json:"language_code,omitempty"`
	VoiceSettings *VoiceSettings `json:"voice_settings,omitempty"`
}

type VoiceSettings struct {
	Stability       float64  `json:"stability"`
	SimilarityBoost float64  `json:"similarity_boost"`
	Style           *float64 `json:"style,omitempty"`
	Speed           *float64 `json:"speed,omitempty"`
	UseSpeakerBoost *bool    `json:"use_speaker_boost,omitempty"`
}

type SpeechResponse struct {
	ContentType string
	Data        []byte
}

type Voice struct {
	Id       string            `json:"voice_id"`
	Name     string            `json:"name"`
	Category string            `json:"category,omitempty"` // premade, cloned, generated, professional
	Labels   map[string]string `json:"labels,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Endpoint       = "https://api.elevenlabs.io/v1"
	TranscribePath = "speech-to-text" // Endpoint for transcription
	SpeechPath     = "text-to-speech" // Endpoint for synthesis, followed by the voice
	VoicesPath     = "voices"         // Endpoint for listing voices
)

const (
	ModelMultilingualV2 = "eleven_multilingual_v2"
	ModelFlashV25       = "eleven_flash_v2_5"
	DefaultVoice        = "21m00Tcm4TlvDq8ikWAM" // Rachel
	DefaultFormat       = "mp3_44100_128"
	DefaultStability    = 0.5
	DefaultSimilarity   = 0.75
)

var (
	// Models for transcription
	Models = []string{"scribe_v1", "scribe_v1_experimental"}

	// Models for speech synthesis
	SpeechModels = []string{ModelMultilingualV2, ModelFlashV25}

	// Output formats by short format name
	Formats = map[string]string{
		"mp3": DefaultFormat,
		"pcm": "pcm_24000",
	}
)

/////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s TranscribeResponse) String() string {
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

// Segments folds words into segments, starting a new segment when the
// speaker changes or an audio event occurs
func (r *TranscribeResponse) Segments() *schema.Transcription {
	t := &schema.Transcription{
		Task:     schema.TaskTranscribe,
		Provider: Name,
		Language: r.Language,
		Text:     r.Text,
	}
	for _, word := range r.Words {
		t.Segments = appendSegment(t.Segments, word)
	}
	if n := len(t.Segments); n > 0 {
		t.Duration = t.Segments[n-1].End
	}
	return t
}

// Schema returns the voice as a schema voice, grouped by category
func (v Voice) Schema() schema.Voice {
	return schema.Voice{
		Id:       v.Id,
		Name:     v.Name,
		Group:    v.Category,
		Provider: Name,
	}
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

const audioEvent = "audio_event"

func appendSegment(slice []*schema.Segment, word TranscribeWord) []*schema.Segment {
	speaker := types.PtrString(word.Speaker)
	if word.Type == audioEvent {
		speaker = audioEvent
	}

	// Extend the current segment when the speaker is unchanged
	if n := len(slice); n > 0 {
		seg := slice[n-1]
		if word.Type != audioEvent && seg.Speaker != audioEvent && (word.Speaker == nil || seg.Speaker == speaker) {
			seg.End = schema.SecToTimestamp(word.End)
			seg.Text += word.Text
			return slice
		}
	}

	return append(slice, &schema.Segment{
		Id:      int32(len(slice) + 1),
		Start:   schema.SecToTimestamp(word.Start),
		End:     schema.SecToTimestamp(word.End),
		Text:    word.Text,
		Speaker: speaker,
	})
}
