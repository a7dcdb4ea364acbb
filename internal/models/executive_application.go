package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExecutiveApplication is a recruitment form submission. One per email; any
// form fields beyond the typed ones are stored as sent.
type ExecutiveApplication struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email" binding:"required,email"`
	Name       string             `json:"name,omitempty" bson:"name,omitempty"`
	StudentID  string             `json:"studentId,omitempty" bson:"studentId,omitempty"`
	Department string             `json:"department,omitempty" bson:"department,omitempty"`
	Session    string             `json:"session,omitempty" bson:"session,omitempty"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Position   string             `json:"position,omitempty" bson:"position,omitempty"`
	Motivation string             `json:"motivation,omitempty" bson:"motivation,omitempty"`
	Experience string             `json:"experience,omitempty" bson:"experience,omitempty"`
	Skills     []string           `json:"skills,omitempty" bson:"skills,omitempty"`
	Timestamp  int64              `json:"timestamp" bson:"timestamp"`
	Extra      bson.M             `json:"-" bson:",inline"`
}

func (a *ExecutiveApplication) UnmarshalJSON(data []byte) error {
	type application ExecutiveApplication
	var known application
	extra, err := decodeWithExtra(data, &known)
	if err != nil {
		return err
	}
	*a = ExecutiveApplication(known)
	a.Extra = extra
	return nil
}

func (a ExecutiveApplication) MarshalJSON() ([]byte, error) {
	type application ExecutiveApplication
	return encodeWithExtra(application(a), a.Extra)
}

// ExecutiveApplicationPatch is the body of PUT /executiveFormCollection/:id.
// Email is the dedupe key and cannot be changed.
type ExecutiveApplicationPatch struct {
	Name       *string   `json:"name" bson:"name,omitempty"`
	StudentID  *string   `json:"studentId" bson:"studentId,omitempty"`
	Department *string   `json:"department" bson:"department,omitempty"`
	Session    *string   `json:"session" bson:"session,omitempty"`
	Phone      *string   `json:"phone" bson:"phone,omitempty"`
	Position   *string   `json:"position" bson:"position,omitempty"`
	Motivation *string   `json:"motivation" bson:"motivation,omitempty"`
	Experience *string   `json:"experience" bson:"experience,omitempty"`
	Skills     *[]string `json:"skills" bson:"skills,omitempty"`
}
