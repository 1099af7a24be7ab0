package schema

import (
	"encoding/json"
	"strings"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Timestamp is a duration which marshals as seconds
type Timestamp time.Duration

// Transcription is the provider-independent result of a transcription or
// translation request
type Transcription struct {
	Task     string     `json:"task,omitempty"`
	Provider string     `json:"provider,omitempty" writer:",width:10"`
	Model    string     `json:"model,omitempty" writer:",width:20"`
	Language string     `json:"language,omitempty" writer:",width:8"`
	Duration Timestamp  `json:"duration,omitempty" writer:",width:8,right"`
	Text     string     `json:"text,omitempty" writer:",width:60,wrap"`
	Segments []*Segment `json:"segments,omitempty" writer:",width:40,wrap"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TaskTranscribe = "transcribe"
	TaskTranslate  = "translate"
	TaskSpeech     = "speech"
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t *Transcription) String() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(t).Seconds())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return err
	}
	*t = SecToTimestamp(seconds)
	return nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SecToTimestamp converts fractional seconds to a Timestamp
func SecToTimestamp(sec float64) Timestamp {
	return Timestamp(time.Duration(sec * float64(time.Second)))
}

// Content returns the text of the transcription. When the provider returned
// segments but no text, the segment text is joined instead.
func (t *Transcription) Content() string {
	if t == nil {
		return ""
	}
	if text := strings.TrimSpace(t.Text); text != "" || len(t.Segments) == 0 {
		return text
	}
	var b strings.Builder
	for _, seg := range t.Segments {
		b.WriteString(seg.Text)
	}
	return strings.TrimSpace(b.String())
}
