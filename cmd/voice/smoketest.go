package main

import (
	"os"
	"path/filepath"
	"time"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	client "github.com/mutablelogic/go-voice/pkg/client"
	openai "github.com/mutablelogic/go-voice/pkg/client/openai"
)

type SmokeTestCmd struct {
	Path string `arg:"" optional:"" help:"Audio file to transcribe" default:"${SAMPLE_FILE}"`
}

type smokeResult struct {
	Model  string        `json:"model" writer:",width:24"`
	Time   time.Duration `json:"time" writer:",width:12,right"`
	Result string        `json:"result" writer:",wrap,width:60"`
}

func (cmd *SmokeTestCmd) Run(app *Globals) error {
	if app.OpenAIKey == "" {
		return httpresponse.ErrBadRequest.With("OPENAI_API_KEY is not set")
	} else if _, err := os.Stat(cmd.Path); err != nil {
		return httpresponse.ErrNotFound.Withf("%q: run the sample command first", cmd.Path)
	}

	// Transcribe with each model, recording failures rather than stopping
	results := make([]smokeResult, 0, len(openai.Models))
	for _, model := range openai.Models {
		result := smokeResult{Model: model}
		start := time.Now()
		text, err := cmd.transcribe(app, model)
		result.Time = time.Since(start).Truncate(time.Millisecond)
		if err != nil {
			result.Result = "error: " + err.Error()
		} else {
			result.Result = text
		}
		results = append(results, result)

		// Stop on interrupt
		if app.ctx.Err() != nil {
			break
		}
	}

	return app.writer.Write(results, tablewriter.OptHeader())
}

func (cmd *SmokeTestCmd) transcribe(app *Globals, model string) (string, error) {
	f, err := os.Open(cmd.Path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	result, err := app.client.Transcribe(app.ctx, model, f, client.OptPath(filepath.Base(cmd.Path)))
	if err != nil {
		return "", err
	}
	return result.Content(), nil
}
