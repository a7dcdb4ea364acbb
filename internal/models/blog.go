package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is an admin-authored post.
type Blog struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Author      string             `json:"author,omitempty" bson:"author,omitempty"`
	AuthorEmail string             `json:"authorEmail,omitempty" bson:"authorEmail,omitempty"`
	AuthorImage string             `json:"authorImage,omitempty" bson:"authorImage,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Content     string             `json:"content,omitempty" bson:"content,omitempty"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Timestamp   int64              `json:"timestamp" bson:"timestamp"`
	Extra       bson.M             `json:"-" bson:",inline"`
}

func (b *Blog) UnmarshalJSON(data []byte) error {
	type blog Blog
	var known blog
	extra, err := decodeWithExtra(data, &known)
	if err != nil {
		return err
	}
	*b = Blog(known)
	b.Extra = extra
	return nil
}

func (b Blog) MarshalJSON() ([]byte, error) {
	type blog Blog
	return encodeWithExtra(blog(b), b.Extra)
}

// BlogPatch is the body of PUT /blog/:id.
type BlogPatch struct {
	Title       *string   `json:"title" bson:"title,omitempty"`
	Author      *string   `json:"author" bson:"author,omitempty"`
	AuthorEmail *string   `json:"authorEmail" bson:"authorEmail,omitempty"`
	AuthorImage *string   `json:"authorImage" bson:"authorImage,omitempty"`
	Image       *string   `json:"image" bson:"image,omitempty"`
	Content     *string   `json:"content" bson:"content,omitempty"`
	Tags        *[]string `json:"tags" bson:"tags,omitempty"`
}
