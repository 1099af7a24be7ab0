package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	goclient "github.com/mutablelogic/go-client"
	client "github.com/mutablelogic/go-voice/pkg/client"
	download "github.com/mutablelogic/go-voice/pkg/download"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Debug   bool          `name:"debug" help:"Enable debug output"`
	Timeout time.Duration `name:"timeout" help:"Timeout for provider requests" default:"5m"`

	// Providers
	OpenAIKey       string `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIEndpoint  string `name:"openai-endpoint" env:"OPENAI_BASE_URL" help:"Endpoint for OpenAI-compatible servers"`
	ElevenLabsKey   string `name:"elevenlabs-key" env:"ELEVENLABS_API_KEY" help:"ElevenLabs API key"`
	Provider        string `name:"provider" env:"TTS_PROVIDER" help:"Speech provider (openai, elevenlabs, native)"`
	SpeechModel     string `name:"speech-model" env:"TTS_MODEL" help:"Default speech model"`
	Voice           string `name:"voice" env:"TTS_VOICE" help:"Default voice"`
	Instructions    string `name:"instructions" env:"TTS_INSTRUCTIONS" help:"Voice instructions (gpt-4o-mini-tts)"`
	TranscribeModel string `name:"transcribe-model" env:"WHISPER_MODEL" help:"Default transcription model"`
	Espeak          string `name:"espeak" env:"ESPEAK_PATH" help:"Native speech engine" default:"${ESPEAK_PATH}"`

	// Writer, client and context
	writer *tablewriter.Writer
	client *client.Client
	ctx    context.Context
}

type CLI struct {
	Globals

	Transcribe TranscribeCmd `cmd:"transcribe" help:"Transcribe an audio file"`
	Translate  TranslateCmd  `cmd:"translate" help:"Translate an audio file into english"`
	Speak      SpeakCmd      `cmd:"speak" help:"Synthesize speech from text"`
	Strip      StripCmd      `cmd:"strip" help:"Remove reasoning markup from text"`
	Models     ModelsCmd     `cmd:"models" help:"List transcription and speech models"`
	Voices     VoicesCmd     `cmd:"voices" help:"List voices"`
	Convert    ConvertCmd    `cmd:"convert" help:"Convert an audio file to mp3 with ffmpeg"`
	Sample     SampleCmd     `cmd:"sample" help:"Download or generate a sample audio file"`
	SmokeTest  SmokeTestCmd  `cmd:"smoketest" help:"Transcribe a file with every OpenAI model"`
	Server     ServerCmd     `cmd:"server" help:"Run the HTTP API"`
	Version    VersionCmd    `cmd:"version" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("speech transcription, synthesis and reasoning markup removal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"ESPEAK_PATH": envOrDefault("ESPEAK_PATH", "espeak-ng"),
			"SAMPLE_URL":  download.SampleURL,
			"SAMPLE_FILE": download.SampleFile,
		},
	)

	// Set client options
	opts := []goclient.ClientOpt{
		goclient.OptTimeout(cli.Globals.Timeout),
	}
	if cli.Globals.Debug {
		opts = append(opts, goclient.OptTrace(os.Stderr, true))
	}

	// Create a client
	client, err := client.New(cli.Globals.config(), opts...)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	} else {
		cli.Globals.client = client
	}

	// Create a tablewriter object with text output
	writer := tablewriter.New(os.Stdout, tablewriter.OptOutputText())
	cli.Globals.writer = writer

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

func (g *Globals) config() client.Config {
	return client.Config{
		OpenAIKey:          g.OpenAIKey,
		OpenAIEndpoint:     g.OpenAIEndpoint,
		ElevenLabsKey:      g.ElevenLabsKey,
		SpeechProvider:     g.Provider,
		SpeechModel:        g.SpeechModel,
		SpeechVoice:        g.Voice,
		SpeechInstructions: g.Instructions,
		TranscribeModel:    g.TranscribeModel,
		NativeCommand:      g.Espeak,
	}
}

func envOrDefault(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	} else {
		return def
	}
}
