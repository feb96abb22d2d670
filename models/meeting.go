package models

import (
	"encoding/hex"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/sha3"
)

// Meeting holds the structure for the meetings collection in mongo
type Meeting struct {
	ID          string   `json:"id" bson:"id"`
	UserList    []string `json:"user_list" bson:"user_list"`
	Duration    int      `json:"duration" bson:"duration"`
	Location    string   `json:"location" bson:"location"`
	MeetingType string   `json:"meettype" bson:"meettype"`
	Timestamp   string   `json:"timestamp" bson:"timestamp"`
}

// UserListField is the document field the meeting user mutation changes
const UserListField = "user_list"

// NewMeeting builds a meeting whose id is derived from its creation fields
func NewMeeting(timestamp, location string, userList []string, meetingType string, duration int) Meeting {
	return Meeting{
		ID:          MeetingID(timestamp, location, userList, meetingType, duration),
		UserList:    nonNil(userList),
		Duration:    duration,
		Location:    location,
		MeetingType: meetingType,
		Timestamp:   timestamp,
	}
}

// MeetingID hashes the creation fields into a 64 character hex id. Identical
// inputs always give the same id.
func MeetingID(timestamp, location string, userList []string, meetingType string, duration int) string {
	// a json array keeps field boundaries unambiguous
	canonical, _ := json.Marshal([]interface{}{timestamp, location, nonNil(userList), meetingType, duration})
	sum := sha3.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// ToDocument converts the meeting to its stored representation
func (m Meeting) ToDocument() bson.M {
	return bson.M{
		"id":        m.ID,
		"user_list": nonNil(m.UserList),
		"duration":  m.Duration,
		"location":  m.Location,
		"meettype":  m.MeetingType,
		"timestamp": m.Timestamp,
	}
}
