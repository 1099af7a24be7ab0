package main

import (
	"log"

	// Packages
	ffmpeg "github.com/mutablelogic/go-voice/pkg/ffmpeg"
)

type ConvertCmd struct {
	Path   string `arg:"" help:"Audio file to convert" type:"existingfile"`
	Out    string `flag:"" short:"o" help:"Output file, defaults to <name>_converted.mp3"`
	FFmpeg string `flag:"ffmpeg" help:"Path to ffmpeg" default:"ffmpeg"`
}

func (cmd *ConvertCmd) Run(app *Globals) error {
	f, err := ffmpeg.New(cmd.FFmpeg)
	if err != nil {
		return err
	}

	// Check ffmpeg runs
	version, err := f.Check(app.ctx)
	if err != nil {
		return err
	} else if app.Debug {
		log.Print(version)
	}

	// Convert
	out := cmd.Out
	if out == "" {
		out = ffmpeg.OutputPath(cmd.Path)
	}
	log.Printf("Converting %q to %q", cmd.Path, out)
	if err := f.Convert(app.ctx, cmd.Path, out); err != nil {
		return err
	}
	log.Printf("Converted %q", out)
	return nil
}
