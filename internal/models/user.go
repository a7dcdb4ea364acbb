package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only role the admin gate accepts.
const RoleAdmin = "admin"

// User represents a club member. Created on first login, never deleted.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Timestamp   int64              `bson:"timestamp" json:"timestamp"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserRequest is the body of PUT /user. Role and designation can only be
// changed through the admin patch routes.
type UserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// IsProfileUpdate reports whether the request carries profile data rather
// than a bare first-login registration.
func (r *UserRequest) IsProfileUpdate() bool {
	return r.Name != "" || r.Image != ""
}

// UserRolePatch is the body of PATCH /user/:id.
type UserRolePatch struct {
	Role        *string `json:"role" bson:"role,omitempty"`
	Designation *string `json:"designation" bson:"designation,omitempty"`
}

// DesignationPatch is the body of PATCH /user/designation/:email.
type DesignationPatch struct {
	Designation string `json:"designation" binding:"required"`
}
