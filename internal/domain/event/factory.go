package event

import (
	"time"

	"github.com/google/uuid"
)

func NewFromValidated(v ValidatedEvent) Event {
	return Event{
		ID:             uuid.NewString(),
		ValidatedEvent: v,
		CreatedAt:      time.Now().UTC(),
	}
}
