package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	schema "github.com/mutablelogic/go-voice/pkg/schema"
)

type ModelsCmd struct {
	Task string `flag:"" help:"Only list models for a task" enum:"all,transcribe,speech" default:"all"`
}

type VoicesCmd struct {
	Only string `flag:"" help:"Only list voices for a provider"`
}

func (cmd ModelsCmd) Run(app *Globals) error {
	models, err := app.client.ListModels(app.ctx)
	if err != nil {
		return err
	}
	result := make([]schema.Model, 0, len(models))
	for _, model := range models {
		if cmd.Task == "all" || model.Task == cmd.Task {
			result = append(result, model)
		}
	}
	if len(result) == 0 {
		return httpresponse.ErrNotFound.With("no models found")
	} else {
		return app.writer.Write(result, tablewriter.OptHeader())
	}
}

func (cmd VoicesCmd) Run(app *Globals) error {
	voices, err := app.client.ListVoices(app.ctx)
	if err != nil {
		return err
	}

	// Order by group
	groups, names := schema.GroupVoices(voices)
	result := make([]schema.Voice, 0, len(voices))
	for _, name := range names {
		for _, voice := range groups[name] {
			if cmd.Only == "" || voice.Provider == cmd.Only {
				result = append(result, voice)
			}
		}
	}
	if len(result) == 0 {
		return httpresponse.ErrNotFound.With("no voices found")
	} else {
		return app.writer.Write(result, tablewriter.OptHeader())
	}
}
