package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Segment is a sub-grouping of an event, linked by EventName.
type Segment struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	EventName        string             `json:"eventName" bson:"eventName"`
	Name             string             `json:"name,omitempty" bson:"name,omitempty"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	Rules            string             `json:"rules,omitempty" bson:"rules,omitempty"`
	Prize            string             `json:"prize,omitempty" bson:"prize,omitempty"`
	RegistrationLink string             `json:"registrationLink,omitempty" bson:"registrationLink,omitempty"`
	Date             string             `json:"date,omitempty" bson:"date,omitempty"`
	Timestamp        int64              `json:"timestamp" bson:"timestamp"`
	Extra            bson.M             `json:"-" bson:",inline"`
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	type segment Segment
	var known segment
	extra, err := decodeWithExtra(data, &known)
	if err != nil {
		return err
	}
	*s = Segment(known)
	s.Extra = extra
	return nil
}

func (s Segment) MarshalJSON() ([]byte, error) {
	type segment Segment
	return encodeWithExtra(segment(s), s.Extra)
}

// SegmentPatch is the body of PUT /segment-details/:id. Nil fields are left untouched.
type SegmentPatch struct {
	EventName        *string `json:"eventName" bson:"eventName,omitempty"`
	Name             *string `json:"name" bson:"name,omitempty"`
	Description      *string `json:"description" bson:"description,omitempty"`
	Image            *string `json:"image" bson:"image,omitempty"`
	Rules            *string `json:"rules" bson:"rules,omitempty"`
	Prize            *string `json:"prize" bson:"prize,omitempty"`
	RegistrationLink *string `json:"registrationLink" bson:"registrationLink,omitempty"`
	Date             *string `json:"date" bson:"date,omitempty"`
}
