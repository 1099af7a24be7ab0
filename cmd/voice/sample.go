package main

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	// Packages
	goclient "github.com/mutablelogic/go-client"
	download "github.com/mutablelogic/go-voice/pkg/download"
	wav "github.com/mutablelogic/go-voice/pkg/wav"
)

type SampleCmd struct {
	Out      string        `flag:"" short:"o" help:"Output file" default:"${SAMPLE_FILE}"`
	Url      string        `flag:"" help:"Sample to download" default:"${SAMPLE_URL}"`
	Tone     bool          `flag:"" help:"Write a generated tone as WAV instead of downloading"`
	Freq     float64       `flag:"" help:"Tone frequency in Hz" default:"440"`
	Duration time.Duration `flag:"" help:"Tone duration" default:"3s"`
}

func (cmd *SampleCmd) Run(app *Globals) error {
	if cmd.Tone {
		return cmd.run_tone()
	} else {
		return cmd.run_download(app)
	}
}

func (cmd *SampleCmd) run_download(app *Globals) error {
	opts := []goclient.ClientOpt{
		goclient.OptTimeout(app.Timeout),
	}
	if app.Debug {
		opts = append(opts, goclient.OptTrace(os.Stderr, false))
	}

	log.Printf("Downloading %q", cmd.Url)
	n, err := download.Download(app.ctx, cmd.Url, cmd.Out, opts...)
	if errors.Is(err, download.ErrExists) {
		log.Printf("%q already exists (%d bytes)", cmd.Out, n)
		return nil
	} else if err != nil {
		return err
	}
	log.Printf("Downloaded %d bytes to %q", n, cmd.Out)
	return nil
}

func (cmd *SampleCmd) run_tone() error {
	tone, err := wav.NewTone(cmd.Freq, cmd.Duration, wav.SampleRate)
	if err != nil {
		return err
	}
	out := cmd.Out
	if out == download.SampleFile {
		out = "test-audio.wav"
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := io.Copy(w, tone); err != nil {
		return err
	}
	log.Printf("Wrote %v tone to %q", tone.Duration(), out)
	return nil
}
