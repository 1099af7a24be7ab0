package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-voice/pkg/api"
	"github.com/mutablelogic/go-voice/pkg/client"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Api_001(t *testing.T) {
	assert := assert.New(t)
	srv := NewTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/health")
	if assert.NoError(err) {
		assert.Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err = http.Post(srv.URL+"/api/v1/health", types.ContentTypeJSON, nil)
	if assert.NoError(err) {
		assert.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err = http.Get(srv.URL + "/api/v1/unknown")
	if assert.NoError(err) {
		assert.Equal(http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	}
}

func Test_Api_002(t *testing.T) {
	assert := assert.New(t)
	srv := NewTestServer(t)
	defer srv.Close()

	var models struct {
		Models []struct {
			Id   string `json:"id"`
			Task string `json:"task"`
		} `json:"models"`
	}
	resp, err := http.Get(srv.URL + "/api/v1/models")
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		assert.NoError(json.NewDecoder(resp.Body).Decode(&models))
		assert.Len(models.Models, 6)
	}

	var voices struct {
		Groups []string `json:"groups"`
		Voices []struct {
			Id string `json:"id"`
		} `json:"voices"`
	}
	resp, err = http.Get(srv.URL + "/api/v1/voices")
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		assert.NoError(json.NewDecoder(resp.Body).Decode(&voices))
		assert.Equal([]string{"openai"}, voices.Groups)
		assert.Len(voices.Voices, 7)
	}
}

func Test_Api_003(t *testing.T) {
	assert := assert.New(t)
	srv := NewTestServer(t)
	defer srv.Close()

	// Reasoning is removed before synthesis
	resp, err := http.Post(srv.URL+"/api/v1/audio/speech", types.ContentTypeJSON, strings.NewReader(`{"input":"<think>hmm</think>Hello","voice":"nova"}`))
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		assert.Equal("audio/mpeg", resp.Header.Get(types.ContentTypeHeader))
		data, _ := io.ReadAll(resp.Body)
		assert.Equal("nova:Hello", string(data))
	}

	// Nothing left to speak
	resp, err = http.Post(srv.URL+"/api/v1/audio/speech", types.ContentTypeJSON, strings.NewReader(`{"input":"<think>hmm</think>"}`))
	if assert.NoError(err) {
		resp.Body.Close()
		assert.Equal(http.StatusBadRequest, resp.StatusCode)
	}

	// Invalid voice
	resp, err = http.Post(srv.URL+"/api/v1/audio/speech", types.ContentTypeJSON, strings.NewReader(`{"input":"Hello","voice":"nobody"}`))
	if assert.NoError(err) {
		resp.Body.Close()
		assert.Equal(http.StatusBadRequest, resp.StatusCode)
	}
}

func Test_Api_004(t *testing.T) {
	assert := assert.New(t)
	srv := NewTestServer(t)
	defer srv.Close()

	var result struct {
		Text string `json:"text"`
	}
	resp, err := http.Post(srv.URL+"/api/v1/text/strip", types.ContentTypeJSON, strings.NewReader(`{"input":"<thinking>a</thinking> Result "}`))
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		assert.NoError(json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal("Result", result.Text)
	}
}

func Test_Api_005(t *testing.T) {
	assert := assert.New(t)
	srv := NewTestServer(t)
	defer srv.Close()

	// Text response
	body, contentType := NewMultipartBody(t, map[string]string{"model": "whisper-1"})
	resp, err := http.Post(srv.URL+"/api/v1/audio/transcriptions", contentType, body)
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		data, _ := io.ReadAll(resp.Body)
		assert.Equal("hello world", string(data))
	}

	// Subtitles from segments
	body, contentType = NewMultipartBody(t, map[string]string{"model": "whisper-1", "response_format": "srt"})
	resp, err = http.Post(srv.URL+"/api/v1/audio/transcriptions", contentType, body)
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		data, _ := io.ReadAll(resp.Body)
		assert.Equal("1\n00:00:00,000 --> 00:00:01,500\nhello world\n\n", string(data))
	}

	// Subtitles from the default model
	body, contentType = NewMultipartBody(t, map[string]string{"response_format": "srt"})
	resp, err = http.Post(srv.URL+"/api/v1/audio/transcriptions", contentType, body)
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		data, _ := io.ReadAll(resp.Body)
		assert.Equal("1\n00:00:00,000 --> 00:00:01,500\nhello world\n\n", string(data))
	}

	// Subtitles from a model without segments
	for _, format := range []string{"srt", "vtt", "verbose_json"} {
		body, contentType = NewMultipartBody(t, map[string]string{"model": "gpt-4o-transcribe", "response_format": format})
		resp, err = http.Post(srv.URL+"/api/v1/audio/transcriptions", contentType, body)
		if assert.NoError(err) {
			data, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			assert.Equal(http.StatusBadRequest, resp.StatusCode, format)
			assert.Contains(string(data), "format not supported by model")
		}
	}

	// Invalid format
	body, contentType = NewMultipartBody(t, map[string]string{"model": "whisper-1", "response_format": "mp3"})
	resp, err = http.Post(srv.URL+"/api/v1/audio/transcriptions", contentType, body)
	if assert.NoError(err) {
		resp.Body.Close()
		assert.Equal(http.StatusBadRequest, resp.StatusCode)
	}

	// Unknown model
	body, contentType = NewMultipartBody(t, map[string]string{"model": "scribe_v1"})
	resp, err = http.Post(srv.URL+"/api/v1/audio/transcriptions", contentType, body)
	if assert.NoError(err) {
		resp.Body.Close()
		assert.Equal(http.StatusNotImplemented, resp.StatusCode)
	}
}

func Test_Api_006(t *testing.T) {
	assert := assert.New(t)
	srv := NewTestServer(t)
	defer srv.Close()

	// Generate some traffic
	resp, err := http.Get(srv.URL + "/api/v1/models")
	if assert.NoError(err) {
		resp.Body.Close()
	}

	resp, err = http.Get(srv.URL + "/api/v1/metrics")
	if assert.NoError(err) {
		defer resp.Body.Close()
		assert.Equal(http.StatusOK, resp.StatusCode)
		data, _ := io.ReadAll(resp.Body)
		assert.Contains(string(data), `voice_http_requests_total{code="200",handler="models",method="get"} 1`)
	}
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// NewTestServer returns the API backed by a fake OpenAI server
func NewTestServer(t *testing.T) *httptest.Server {
	upstream := http.NewServeMux()
	upstream.HandleFunc("/audio/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Error(err)
		}
		w.Header().Set(types.ContentTypeHeader, types.ContentTypeJSON)
		switch r.FormValue("response_format") {
		case "verbose_json":
			w.Write([]byte(`{"task":"transcribe","text":"hello world","segments":[{"id":1,"start":0,"end":1.5,"text":"hello world"}]}`))
		default:
			w.Write([]byte(`{"text":"hello world"}`))
		}
	})
	upstream.HandleFunc("/audio/speech", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input string `json:"input"`
			Voice string `json:"voice"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
		}
		w.Header().Set(types.ContentTypeHeader, "audio/mpeg")
		w.Write([]byte(req.Voice + ":" + req.Input))
	})
	provider := httptest.NewServer(upstream)
	t.Cleanup(provider.Close)

	c, err := client.New(client.Config{
		OpenAIKey:      "key",
		OpenAIEndpoint: provider.URL,
		NativeCommand:  "no-such-speech-engine",
	})
	if err != nil {
		t.Fatal(err)
	}
	return httptest.NewServer(api.RegisterEndpoints("/api/v1", c, nil, false))
}

func NewMultipartBody(t *testing.T, fields map[string]string) (io.Reader, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	part, err := w.CreateFormFile("file", "audio.wav")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("RIFF"))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}
