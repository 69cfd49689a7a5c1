package event

import (
	"bytes"
	"encoding/json"
	"time"
)

// RawField holds one untrusted value from the request body as text.
// Any JSON scalar is accepted; objects, arrays and null read as empty.
type RawField string

func (f *RawField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = RawField(s)
	case '{', '[':
		*f = ""
	default:
		// numbers and booleans keep their literal text
		*f = RawField(b)
	}

	return nil
}

func (f RawField) String() string {
	return string(f)
}

// RawEventInput is the create payload exactly as the client sent it.
type RawEventInput struct {
	Titulo RawField `json:"titulo"`
	Cat    RawField `json:"cat"`
	Data   RawField `json:"data"`
	Hora   RawField `json:"hora"`
	Local  RawField `json:"local"`
	Preco  RawField `json:"preco"`
	Img    RawField `json:"img"`
	Desc   RawField `json:"desc"`
}

// ValidatedEvent is a create payload that passed every field rule.
type ValidatedEvent struct {
	Titulo string    `json:"titulo"`
	Cat    string    `json:"cat"`
	Data   time.Time `json:"data"`
	Hora   string    `json:"hora"`
	Local  string    `json:"local"`
	Preco  float64   `json:"preco"`
	Img    string    `json:"img"`
	Desc   string    `json:"desc"`
}

// Event is a ValidatedEvent once it has been stored.
type Event struct {
	ID string `json:"id"`
	ValidatedEvent
	CreatedAt time.Time `json:"createdAt"`
}

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
