package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is a coding question post. CreatedBy is a weak reference to the
// creating user's id; it is never joined on and may dangle if that user is
// removed out of band.
type Question struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	ProblemStatement string             `json:"problemStatement" bson:"problemStatement"`
	Solution         string             `json:"solution" bson:"solution"`
	Topic            string             `json:"topic" bson:"topic"`
	DateCreated      time.Time          `json:"dateCreated" bson:"dateCreated"`
	CreatedBy        primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}
