package native_test

import (
	"context"
	"strings"
	"testing"

	// Packages
	"github.com/mutablelogic/go-voice/pkg/client/native"
	"github.com/stretchr/testify/assert"
)

const voices = `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af
 5  en-gb           --/M      English_(Great_Britain) gmw/en
 2  en-us           --/M      English_(America)  gmw/en-US
 5  fr-fr           --/M      French_(France)    roa/fr               (fr 5)
`

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Native_001(t *testing.T) {
	assert := assert.New(t)
	result, err := native.ParseVoices(strings.NewReader(voices))
	if !assert.NoError(err) {
		t.FailNow()
	}
	if assert.Len(result, 4) {
		assert.Equal("af", result[0].Id)
		assert.Equal("Afrikaans", result[0].Name)
		assert.Equal("gmw", result[0].Group)
		assert.Equal(native.Name, result[0].Provider)
		assert.Equal("English (America)", result[2].Name)
		assert.Equal("roa", result[3].Group)
	}
}

func Test_Native_002(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"--stdout", "--", "Hello"}, native.Args(native.SpeechRequest{Text: "Hello"}))
	assert.Equal([]string{"--stdout", "-v", "en-us", "-s", "200", "--", "-rf"}, native.Args(native.SpeechRequest{Text: "-rf", Voice: "en-us", Rate: 200}))
}

func Test_Native_003(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint(0), native.Rate(0))
	assert.Equal(uint(native.DefaultRate), native.Rate(1))
	assert.Equal(uint(350), native.Rate(2))
}

func Test_Native_004(t *testing.T) {
	assert := assert.New(t)
	_, err := native.New("no-such-speech-engine")
	assert.Error(err)
}

func Test_Native_005(t *testing.T) {
	assert := assert.New(t)
	c, err := native.New("")
	if err != nil {
		t.Skip("espeak-ng not installed")
	}
	_, err = c.Speech(context.Background(), native.SpeechRequest{Text: " "})
	assert.Error(err)

	data, err := c.Speech(context.Background(), native.SpeechRequest{Text: "Hello"})
	if assert.NoError(err) {
		assert.Equal("RIFF", string(data[:4]))
	}
}
