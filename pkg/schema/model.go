package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is a transcription or speech model offered by a provider
type Model struct {
	Id       string `json:"id" writer:",width:30"`
	Provider string `json:"provider" writer:",width:12"`
	Task     string `json:"task" writer:",width:12"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
