package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a club event. Segments reference it by Name. Members beyond the
// typed ones are stored as sent.
type Event struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Title            string             `json:"title,omitempty" bson:"title,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	Date             string             `json:"date,omitempty" bson:"date,omitempty"`
	Venue            string             `json:"venue,omitempty" bson:"venue,omitempty"`
	RegistrationLink string             `json:"registrationLink,omitempty" bson:"registrationLink,omitempty"`
	Timestamp        int64              `json:"timestamp" bson:"timestamp"`
	Extra            bson.M             `json:"-" bson:",inline"`
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type event Event
	var known event
	extra, err := decodeWithExtra(data, &known)
	if err != nil {
		return err
	}
	*e = Event(known)
	e.Extra = extra
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	type event Event
	return encodeWithExtra(event(e), e.Extra)
}
