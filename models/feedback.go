package models

import "go.mongodb.org/mongo-driver/bson"

// Feedback holds the structure for the feedback collection in mongo
type Feedback struct {
	ID             string `json:"id" bson:"id"`
	Email          string `json:"email" bson:"email"`
	Timestamp      string `json:"timestamp" bson:"timestamp"`
	Title          string `json:"title" bson:"title"`
	Text           string `json:"text" bson:"text"`
	FeedbackType   string `json:"feedback_type" bson:"feedback_type"`
	FeedbackStatus string `json:"feedback_status" bson:"feedback_status"`
}

// ToDocument converts the feedback to its stored representation
func (f Feedback) ToDocument() bson.M {
	return bson.M{
		"id":              f.ID,
		"email":           f.Email,
		"timestamp":       f.Timestamp,
		"title":           f.Title,
		"text":            f.Text,
		"feedback_type":   f.FeedbackType,
		"feedback_status": f.FeedbackStatus,
	}
}
