package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type Segment struct {
	Id      int32     `json:"id" writer:",right,width:5"`
	Start   Timestamp `json:"start" writer:",right,width:5"`
	End     Timestamp `json:"end" writer:",right,width:5"`
	Text    string    `json:"text" writer:",wrap,width:70"`
	Speaker string    `json:"speaker,omitempty" writer:",width:20"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Segment) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WriteSRT writes the segment as a SubRip cue
func (seg *Segment) WriteSRT(w io.Writer) error {
	text := strings.TrimSpace(seg.Text)
	if seg.Speaker != "" {
		text = "[" + seg.Speaker + "] " + text
	}
	_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", seg.Id, formatTs(seg.Start, ','), formatTs(seg.End, ','), text)
	return err
}

// WriteVTT writes the segment as a WebVTT cue, with speakers as voice spans.
// Segments without text are skipped.
func (seg *Segment) WriteVTT(w io.Writer) error {
	text := strings.TrimSpace(seg.Text)
	if text == "" {
		return nil
	}
	if seg.Speaker != "" {
		text = "<v " + seg.Speaker + ">" + text + "</v>"
	}
	_, err := fmt.Fprintf(w, "%s --> %s\n%s\n\n", formatTs(seg.Start, '.'), formatTs(seg.End, '.'), text)
	return err
}

// WriteText writes the segment as plain text, starting a new paragraph when
// the speaker is set
func (seg *Segment) WriteText(w io.Writer) error {
	var err error
	if seg.Speaker != "" {
		_, err = fmt.Fprintf(w, "\n\n[%s] %s", seg.Speaker, strings.TrimSpace(seg.Text))
	} else {
		_, err = fmt.Fprint(w, seg.Text)
	}
	return err
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// formatTs returns hh:mm:ss followed by the separator and milliseconds
func formatTs(ts Timestamp, sep rune) string {
	d := time.Duration(ts)
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60, sep, d.Milliseconds()%1000)
}
