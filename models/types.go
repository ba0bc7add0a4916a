package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity is a schedulable extracurricular activity with a capacity and
// participant roster. Participants are email addresses in signup order.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity, clamped at zero so that
// inconsistent server data never renders as a negative count.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// NamedActivity pairs an activity with its name key.
type NamedActivity struct {
	Name     string
	Activity Activity
}

// ActivityList is the wire representation of the activity collection: a JSON
// object keyed by activity name. A plain Go map loses the key order the
// server emits, and the UI renders cards and selection entries in exactly
// that order, so the list keeps entries as an ordered slice and does its own
// object encoding.
type ActivityList []NamedActivity

// Get returns the activity for name, with ok reporting whether it exists.
func (l ActivityList) Get(name string) (Activity, bool) {
	for _, e := range l {
		if e.Name == name {
			return e.Activity, true
		}
	}
	return Activity{}, false
}

// Names returns the activity names in list order.
func (l ActivityList) Names() []string {
	names := make([]string, len(l))
	for i, e := range l {
		names[i] = e.Name
	}
	return names
}

// MarshalJSON encodes the list as a single JSON object, preserving entry order.
func (l ActivityList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the list, preserving the order in
// which keys appear in the document.
func (l *ActivityList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	out := ActivityList{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var activity Activity
		if err := dec.Decode(&activity); err != nil {
			return fmt.Errorf("decoding activity %q: %w", name, err)
		}
		out = append(out, NamedActivity{Name: name, Activity: activity})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = out
	return nil
}

// MessageResponse is the success envelope for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the error envelope for all non-2xx API responses.
type DetailResponse struct {
	Detail string `json:"detail"`
}
