package native

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strconv"
	"strings"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-voice/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client synthesizes speech on the host with an espeak-ng compatible binary
type Client struct {
	path string
}

type SpeechRequest struct {
	Text  string
	Voice string // espeak voice name, eg en-us
	Rate  uint   // words per minute, zero for the engine default
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Name           = "native"
	DefaultCommand = "espeak-ng"
	DefaultRate    = 175 // words per minute at speed 1.0
	ContentType    = "audio/wav"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a client for the named command, which is looked up on the PATH
// when it is not a path itself
func New(command string) (*Client, error) {
	if command == "" {
		command = DefaultCommand
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, httpresponse.ErrNotFound.Withf("speech engine %q: %v", command, err)
	}
	return &Client{path: path}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c *Client) String() string {
	return "<native path=" + strconv.Quote(c.path) + ">"
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Path returns the resolved path of the engine binary
func (c *Client) Path() string {
	return c.path
}

// Speech synthesizes text and returns WAV audio
func (c *Client) Speech(ctx context.Context, req SpeechRequest) ([]byte, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, httpresponse.ErrBadRequest.With("text is required")
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.path, Args(req)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, httpresponse.ErrInternalError.Withf("%s: %s", Name, msg)
		}
		return nil, httpresponse.ErrInternalError.Withf("%s: %v", Name, err)
	}
	return stdout.Bytes(), nil
}

// ListVoices returns the voices the engine reports
func (c *Client) ListVoices(ctx context.Context) ([]schema.Voice, error) {
	out, err := exec.CommandContext(ctx, c.path, "--voices").Output()
	if err != nil {
		return nil, httpresponse.ErrInternalError.Withf("%s: %v", Name, err)
	}
	return ParseVoices(bytes.NewReader(out))
}

// Args returns the command line arguments for a request. The text is passed
// after "--" so it is never read as a flag.
func Args(req SpeechRequest) []string {
	args := []string{"--stdout"}
	if req.Voice != "" {
		args = append(args, "-v", req.Voice)
	}
	if req.Rate > 0 {
		args = append(args, "-s", strconv.FormatUint(uint64(req.Rate), 10))
	}
	return append(args, "--", req.Text)
}

// Rate converts a relative speed, where 1.0 is normal, to words per minute
func Rate(speed float64) uint {
	if speed <= 0 {
		return 0
	}
	return uint(speed*DefaultRate + 0.5)
}

// ParseVoices parses the table written by "espeak-ng --voices". The columns
// are priority, language, age/gender, voice name, file and other languages.
// Voices are grouped by the first part of the file column, eg "gmw".
func ParseVoices(r io.Reader) ([]schema.Voice, error) {
	var result []schema.Voice
	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if header {
			header = false
			if len(fields) > 0 && fields[0] == "Pty" {
				continue
			}
		}
		if len(fields) < 5 {
			continue
		}
		group, _, _ := strings.Cut(fields[4], "/")
		result = append(result, schema.Voice{
			Id:       fields[1],
			Name:     strings.ReplaceAll(fields[3], "_", " "),
			Group:    group,
			Provider: Name,
		})
	}
	return result, scanner.Err()
}
