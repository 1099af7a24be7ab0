package schema

import (
	"encoding/json"
	"sort"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Voice is a speech synthesis voice. Group is the organization or category
// the provider files the voice under.
type Voice struct {
	Id       string `json:"id" writer:",width:24"`
	Name     string `json:"name" writer:",width:24"`
	Group    string `json:"group,omitempty" writer:",width:16"`
	Provider string `json:"provider" writer:",width:12"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (v Voice) String() string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GroupVoices returns the voices keyed by group, and the group names in
// sorted order. Voice order within a group is preserved.
func GroupVoices(voices []Voice) (map[string][]Voice, []string) {
	groups := make(map[string][]Voice)
	names := make([]string, 0, len(voices))
	for _, voice := range voices {
		if _, exists := groups[voice.Group]; !exists {
			names = append(names, voice.Group)
		}
		groups[voice.Group] = append(groups[voice.Group], voice)
	}
	sort.Strings(names)
	return groups, names
}
