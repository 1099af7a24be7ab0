package wav

import (
	"io"
	"math"
	"time"

	// Packages
	audio "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
	writerseeker "github.com/orcaman/writerseeker"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WaveAudio struct {
	io.Reader
	Samples    int
	SampleRate int
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Sample rate for generated audio, which transcription models accept
	// without resampling
	SampleRate = 16000

	// Tone amplitude, as a fraction of full scale
	amplitude = 0.5
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new mono WAV file with 16-bit signed integer samples
func NewInt16(data []int16, sampleRate int) (*WaveAudio, error) {
	buf := new(writerseeker.WriterSeeker)
	encoder := wav.NewEncoder(buf, sampleRate, 16, 1, 1)
	pcmbuf := audio.PCMBuffer{
		I16:      data,
		DataType: audio.DataTypeI16,
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
	}
	if err := encoder.Write(pcmbuf.AsIntBuffer()); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return &WaveAudio{
		Reader:     buf.Reader(),
		Samples:    len(data),
		SampleRate: sampleRate,
	}, nil
}

// Create a mono WAV file containing a sine tone
func NewTone(freq float64, duration time.Duration, sampleRate int) (*WaveAudio, error) {
	n := int(duration.Seconds() * float64(sampleRate))
	data := make([]int16, n)
	for i := range data {
		v := amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		data[i] = int16(v * math.MaxInt16)
	}
	return NewInt16(data, sampleRate)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Duration returns the length of the audio
func (w *WaveAudio) Duration() time.Duration {
	if w.SampleRate == 0 {
		return 0
	}
	return time.Duration(w.Samples) * time.Second / time.Duration(w.SampleRate)
}
