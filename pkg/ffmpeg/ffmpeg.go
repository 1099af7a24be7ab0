package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FFmpeg converts audio files with the ffmpeg binary
type FFmpeg struct {
	path string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultCommand = "ffmpeg"
	SampleRate     = "44100"
	Channels       = "2"
	Bitrate        = "192k"
	suffix         = "_converted.mp3"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a converter for the named command, which is looked up on the
// PATH when it is not a path itself
func New(command string) (*FFmpeg, error) {
	if command == "" {
		command = DefaultCommand
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, errors.ErrNotFound.Withf("%q: %v", command, err)
	}
	return &FFmpeg{path: path}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Check runs the binary and returns the first line of its version banner
func (f *FFmpeg) Check(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, f.path, "-version").Output()
	if err != nil {
		return "", errors.ErrUnexpectedResponse.Withf("%s -version: %v", f.path, err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", errors.ErrUnexpectedResponse.Withf("%s -version: no output", f.path)
}

// Convert transcodes the input to a stereo 44.1kHz mp3, overwriting the output
func (f *FFmpeg) Convert(ctx context.Context, in, out string) error {
	if info, err := os.Stat(in); err != nil {
		return errors.ErrNotFound.With(in)
	} else if info.IsDir() {
		return errors.ErrBadParameter.Withf("%q is a directory", in)
	}
	if out == "" {
		out = OutputPath(in)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, Args(in, out)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.ErrInternalAppError.Withf("%v: %s", err, lastLine(stderr.String()))
	}
	return nil
}

// Args returns the ffmpeg arguments to convert in to out
func Args(in, out string) []string {
	return []string{"-i", in, "-vn", "-ar", SampleRate, "-ac", Channels, "-b:a", Bitrate, out, "-y"}
}

// OutputPath returns the path of the converted file, next to the input
func OutputPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + suffix
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
