package models

import "go.mongodb.org/mongo-driver/bson"

// Community holds the structure for the communities collection in mongo. The
// community name is also its document id.
type Community struct {
	Name          string   `json:"name" bson:"name"`
	CodeOfConduct string   `json:"codeofconduct" bson:"codeofconduct"`
	Admins        []string `json:"Admins" bson:"Admins"`
	Members       []string `json:"Members" bson:"Members"`
	Bans          []string `json:"bans" bson:"bans"`
	MPM           string   `json:"mpm" bson:"mpm"`
	MeetType      string   `json:"meettype" bson:"meettype"`
}

// MembersField is the document field join and leave mutate
const MembersField = "Members"

// IsAdmin reports whether email is one of the community admins
func (c Community) IsAdmin(email string) bool {
	for _, a := range c.Admins {
		if a == email {
			return true
		}
	}
	return false
}

// ToDocument converts the community to its stored representation
func (c Community) ToDocument() bson.M {
	return bson.M{
		"name":          c.Name,
		"codeofconduct": c.CodeOfConduct,
		"Admins":        nonNil(c.Admins),
		"Members":       nonNil(c.Members),
		"bans":          nonNil(c.Bans),
		"mpm":           c.MPM,
		"meettype":      c.MeetType,
	}
}

// CommunityStats holds the meetup counters kept for every community, keyed by
// the community name
type CommunityStats struct {
	Community       string `json:"community" bson:"community"`
	AcceptedMeetups int    `json:"accepted_meetups" bson:"accepted_meetups"`
	TotalMeetups    int    `json:"total_meetups" bson:"total_meetups"`
	TotalSessions   int    `json:"total_sessions" bson:"total_sessions"`
}

// NewCommunityStats returns zeroed stats for a community
func NewCommunityStats(community string) CommunityStats {
	return CommunityStats{Community: community}
}

// ToDocument converts the stats to their stored representation
func (s CommunityStats) ToDocument() bson.M {
	return bson.M{
		"community":        s.Community,
		"accepted_meetups": s.AcceptedMeetups,
		"total_meetups":    s.TotalMeetups,
		"total_sessions":   s.TotalSessions,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
