package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	client "github.com/mutablelogic/go-voice/pkg/client"
	openai "github.com/mutablelogic/go-voice/pkg/client/openai"
	schema "github.com/mutablelogic/go-voice/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranslateCmd struct {
	Path        string   `arg:"" help:"Path to audio file" type:"existingfile"`
	Model       string   `flag:"" help:"Model to use"`
	Format      string   `flag:"" help:"Output format" default:"text" enum:"json,verbose_json,text,vtt,srt"`
	Temperature *float64 `flag:"" help:"Temperature"`
	Prompt      *string  `flag:"prompt" help:"Prompt to guide the model's style or continue a previous audio segment"`
}

type TranscribeCmd struct {
	TranslateCmd
	Language string `flag:"language" help:"Language to transcribe"`
	Diarize  bool   `flag:"" help:"Diarize the transcription"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TranscribeCmd) Run(app *Globals) error {
	params := cmd.TranslateCmd.params()
	if cmd.Language != "" {
		params = append(params, client.OptLanguage(cmd.Language))
	}
	if cmd.Diarize {
		params = append(params, client.OptDiarize())
	}
	return cmd.run(app, false, params)
}

func (cmd *TranslateCmd) Run(app *Globals) error {
	return cmd.run(app, true, cmd.params())
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *TranslateCmd) params() []client.Opt {
	params := []client.Opt{
		client.OptPath(filepath.Base(cmd.Path)),
	}
	switch cmd.Format {
	case openai.FormatVerboseJson, openai.FormatSrt, openai.FormatVtt:
		params = append(params, client.OptSegments())
	}
	if cmd.Temperature != nil {
		params = append(params, client.OptTemperature(types.PtrFloat64(cmd.Temperature)))
	}
	if cmd.Prompt != nil {
		params = append(params, client.OptPrompt(types.PtrString(cmd.Prompt)))
	}
	return params
}

func (cmd *TranslateCmd) run(app *Globals, translate bool, params []client.Opt) error {
	// Open the audio file
	f, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Transcribe or translate
	var result *schema.Transcription
	if translate {
		result, err = app.client.Translate(app.ctx, cmd.Model, f, params...)
	} else {
		result, err = app.client.Transcribe(app.ctx, cmd.Model, f, params...)
	}
	if err != nil {
		return err
	}

	// Write the result
	var buf bytes.Buffer
	switch cmd.Format {
	case "json", "verbose_json":
		fmt.Println(result)
		return nil
	case "srt":
		for _, segment := range result.Segments {
			if err := segment.WriteSRT(&buf); err != nil {
				return err
			}
		}
	case "vtt":
		buf.WriteString("WEBVTT\n\n")
		for _, segment := range result.Segments {
			if err := segment.WriteVTT(&buf); err != nil {
				return err
			}
		}
	case "text":
		if len(result.Segments) == 0 {
			buf.WriteString(result.Content())
		}
		for _, segment := range result.Segments {
			if err := segment.WriteText(&buf); err != nil {
				return err
			}
		}
	}
	fmt.Println(buf.String())
	return nil
}
