package openai_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/multipart"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/client/openai"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Transcribe_001(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.True(strings.HasSuffix(r.URL.Path, "/audio/transcriptions"))
		assert.Equal("Bearer test-key", r.Header.Get("Authorization"))
		if !assert.NoError(r.ParseMultipartForm(1 << 20)) {
			return
		}
		assert.Equal(openai.ModelWhisper, r.FormValue("model"))
		assert.Equal(openai.FormatVerboseJson, r.FormValue("response_format"))
		f, hdr, err := r.FormFile("file")
		if assert.NoError(err) {
			defer f.Close()
			assert.Equal("sample.wav", hdr.Filename)
			data, _ := io.ReadAll(f)
			assert.Equal("RIFF", string(data))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":"transcribe","language":"english","duration":1.5,"text":"Hello","segments":[{"id":0,"start":0,"end":1.5,"text":"Hello"}]}`))
	}))
	defer server.Close()

	c := NewTestClient(t, server.URL)
	resp, err := c.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{
			File:   multipart.File{Path: "sample.wav", Body: strings.NewReader("RIFF")},
			Format: types.StringPtr(openai.FormatVerboseJson),
		},
	})
	if !assert.NoError(err) {
		assert.FailNow("failed to call transcribe endpoint")
	}
	assert.Equal("Hello", resp.Text)

	result := resp.Segments()
	assert.Equal(openai.Name, result.Provider)
	assert.Len(result.Segments, 1)
	assert.Equal("Hello", result.Content())
}

func Test_Transcribe_002(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("plain text"))
	}))
	defer server.Close()

	c := NewTestClient(t, server.URL)
	resp, err := c.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{
			Model:  openai.ModelGPT4oMini,
			File:   multipart.File{Body: strings.NewReader("RIFF")},
			Format: types.StringPtr(openai.FormatText),
		},
	})
	if assert.NoError(err) {
		assert.Equal("plain text", resp.Text)
	}
}

func Test_Transcribe_003(t *testing.T) {
	assert := assert.New(t)
	c := NewTestClient(t, "http://localhost:0")

	// Unknown model
	_, err := c.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{Model: "whisper-2", File: multipart.File{Body: strings.NewReader("")}},
	})
	assert.Error(err)

	// gpt-4o models do not produce subtitles
	_, err = c.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{
			Model:  openai.ModelGPT4oTranscribe,
			File:   multipart.File{Body: strings.NewReader("")},
			Format: types.StringPtr(openai.FormatSrt),
		},
	})
	assert.Error(err)

	// Missing file
	_, err = c.Transcribe(context.Background(), openai.TranscriptionRequest{})
	assert.Error(err)
}

func Test_Translate_001(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(strings.HasSuffix(r.URL.Path, "/audio/translations"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"Good morning"}`))
	}))
	defer server.Close()

	c := NewTestClient(t, server.URL)
	resp, err := c.Translate(context.Background(), openai.TranslationRequest{
		File: multipart.File{Body: strings.NewReader("RIFF")},
	})
	if assert.NoError(err) {
		assert.Equal("Good morning", resp.Text)
		assert.Equal("translate", resp.Task)
	}

	_, err = c.Translate(context.Background(), openai.TranslationRequest{
		Model: openai.ModelGPT4oTranscribe,
		File:  multipart.File{Body: strings.NewReader("RIFF")},
	})
	assert.Error(err)
}

func Test_Speech_001(t *testing.T) {
	assert := assert.New(t)
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(strings.HasSuffix(r.URL.Path, "/audio/speech"))
		assert.Equal("Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte{0xFF, 0xFB, 0x90})
	}))
	defer server.Close()

	c := NewTestClient(t, server.URL)
	resp, err := c.Speech(context.Background(), openai.SpeechRequest{
		Input:        "Hello",
		Instructions: types.StringPtr("whisper it"),
	})
	if !assert.NoError(err) {
		assert.FailNow("failed to call speech endpoint")
	}
	assert.Equal("audio/mpeg", resp.ContentType)
	assert.True(bytes.Equal([]byte{0xFF, 0xFB, 0x90}, resp.Data))

	// Defaults, and instructions dropped for tts-1
	assert.Equal(openai.ModelTTS1, body["model"])
	assert.Equal(openai.DefaultVoice, body["voice"])
	assert.Equal("Hello", body["input"])
	assert.NotContains(body, "instructions")
}

func Test_Speech_002(t *testing.T) {
	assert := assert.New(t)
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("RIFF"))
	}))
	defer server.Close()

	c := NewTestClient(t, server.URL)
	_, err := c.Speech(context.Background(), openai.SpeechRequest{
		Model:        openai.ModelGPT4oMiniTTS,
		Voice:        "coral",
		Input:        "Hello",
		Instructions: types.StringPtr("Speak like a pirate"),
		Format:       types.StringPtr("wav"),
		Speed:        types.Float64Ptr(1.25),
	})
	if assert.NoError(err) {
		assert.Equal("Speak like a pirate", body["instructions"])
		assert.Equal("coral", body["voice"])
		assert.Equal("wav", body["response_format"])
		assert.Equal(1.25, body["speed"])
	}
}

func Test_Speech_003(t *testing.T) {
	assert := assert.New(t)
	c := NewTestClient(t, "http://localhost:0")
	tests := []openai.SpeechRequest{
		{Input: "   "},
		{Input: "Hello", Model: "tts-2"},
		{Input: "Hello", Voice: "robot"},
		{Input: "Hello", Format: types.StringPtr("ogg")},
		{Input: "Hello", Speed: types.Float64Ptr(5)},
	}
	for _, test := range tests {
		_, err := c.Speech(context.Background(), test)
		assert.Error(err, test.String())
	}
}

func Test_Speech_004(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer server.Close()

	c := NewTestClient(t, server.URL)
	_, err := c.Speech(context.Background(), openai.SpeechRequest{Input: "Hello"})
	assert.Error(err)
}

func Test_Language_001(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in, name, code string
	}{
		{"english", "english", "en"},
		{"EN", "english", "en"},
		{"de", "german", "de"},
		{"German", "german", "de"},
		{"klingon", "", ""},
	}
	for _, test := range tests {
		name, code := openai.LanguageCode(test.in)
		assert.Equal(test.name, name, test.in)
		assert.Equal(test.code, code, test.in)
	}
}

func Test_Voices_001(t *testing.T) {
	assert := assert.New(t)
	voices := openai.VoiceList()
	assert.Len(voices, len(openai.Voices))
	assert.Equal("alloy", voices[0].Id)
	assert.Equal("Alloy", voices[0].Name)
	assert.Equal(openai.Name, voices[0].Group)
}

// Live test, skipped without an API key
func Test_Live_001(t *testing.T) {
	assert := assert.New(t)
	apikey := os.ExpandEnv("${OPENAI_API_KEY}")
	if apikey == "" {
		t.Skip("skipping test, OPENAI_API_KEY environment variable not set")
	}
	c, err := openai.New(apikey, client.OptTrace(os.Stderr, false))
	if !assert.NoError(err) {
		t.FailNow()
	}
	resp, err := c.Speech(context.Background(), openai.SpeechRequest{Input: "Hello"})
	if assert.NoError(err) {
		assert.NotEmpty(resp.Data)
	}
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func NewTestClient(t *testing.T, url string) *openai.Client {
	client, err := openai.New("test-key", client.OptEndpoint(url+"/v1"))
	if err != nil {
		t.Fatalf("failed to create OpenAI client: %v", err)
	}
	return client
}
