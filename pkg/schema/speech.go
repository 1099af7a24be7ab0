package schema

import (
	"fmt"
	"io"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Speech is synthesized audio
type Speech struct {
	Provider    string `json:"provider"`
	Model       string `json:"model,omitempty"`
	Voice       string `json:"voice,omitempty"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// Audio content types by format name
	contentTypes = map[string]string{
		"mp3":  "audio/mpeg",
		"opus": "audio/opus",
		"aac":  "audio/aac",
		"flac": "audio/flac",
		"wav":  "audio/wav",
		"pcm":  "audio/pcm",
	}
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Speech) String() string {
	return fmt.Sprintf("<speech provider=%q model=%q voice=%q content_type=%q bytes=%d>", s.Provider, s.Model, s.Voice, s.ContentType, len(s.Data))
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ContentType returns the content type for an audio format name, or
// application/octet-stream when the format is unknown
func ContentType(format string) string {
	if ct, exists := contentTypes[format]; exists {
		return ct
	}
	return "application/octet-stream"
}

// WriteTo writes the audio data to w
func (s *Speech) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Data)
	return int64(n), err
}
