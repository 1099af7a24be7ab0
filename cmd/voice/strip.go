package main

import (
	"fmt"

	// Packages
	thinking "github.com/mutablelogic/go-voice/pkg/thinking"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type StripCmd struct {
	Text string `arg:"" optional:"" help:"Message text, read from stdin when omitted"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *StripCmd) Run(app *Globals) error {
	text, err := textOrStdin(cmd.Text)
	if err != nil {
		return err
	}
	fmt.Println(thinking.Strip(text))
	return nil
}
