package main

import (
	"io"
	"log"
	"os"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-voice/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// SpeakCmd takes its provider, voice and instructions from the global flags
type SpeakCmd struct {
	Text   string   `arg:"" optional:"" help:"Text to speak, read from stdin when omitted"`
	Out    string   `flag:"" short:"o" help:"Output file, or - for stdout" default:"speech"`
	Model  string   `flag:"" help:"Speech model"`
	Format string   `flag:"" help:"Audio format (mp3, opus, aac, flac, wav, pcm)"`
	Speed  *float64 `flag:"" help:"Relative speed, where 1.0 is normal"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *SpeakCmd) Run(app *Globals) error {
	text, err := textOrStdin(cmd.Text)
	if err != nil {
		return err
	}

	// Set options
	opts := []client.SpeechOpt{}
	if cmd.Model != "" {
		opts = append(opts, client.OptSpeechModel(cmd.Model))
	}
	if cmd.Format != "" {
		opts = append(opts, client.OptSpeechFormat(cmd.Format))
	}
	if cmd.Speed != nil {
		opts = append(opts, client.OptSpeed(*cmd.Speed))
	}

	// Synthesize
	speech, err := app.client.Speak(app.ctx, text, opts...)
	if err != nil {
		return err
	}

	// Write to stdout
	if cmd.Out == "-" {
		_, err := speech.WriteTo(os.Stdout)
		return err
	}

	// Write to a file, with an extension for the content type
	path := cmd.Out
	if !strings.Contains(path, ".") {
		path += extension(speech.ContentType)
	}
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := speech.WriteTo(w); err != nil {
		return err
	}
	log.Printf("Wrote %d bytes to %q (%s)", len(speech.Data), path, speech)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func textOrStdin(text string) (string, error) {
	if text != "" {
		return text, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func extension(contentType string) string {
	switch {
	case strings.Contains(contentType, "mpeg"):
		return ".mp3"
	case strings.Contains(contentType, "wav"):
		return ".wav"
	case strings.Contains(contentType, "opus"), strings.Contains(contentType, "ogg"):
		return ".opus"
	case strings.Contains(contentType, "aac"):
		return ".aac"
	case strings.Contains(contentType, "flac"):
		return ".flac"
	default:
		return ".pcm"
	}
}
