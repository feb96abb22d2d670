package databases

// go generate: mockery --name MeetingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/biit/biit-api/models"
)

const meetingCollectionName = "meetings"

// MeetingDatabase contains the methods to use with the meeting database
type MeetingDatabase interface {
	Add(ctx context.Context, meeting models.Meeting) error
	Get(ctx context.Context, id string) (*models.Meeting, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	AddUser(ctx context.Context, id, email string) (*models.Meeting, error)
	RemoveUser(ctx context.Context, id, email string) (*models.Meeting, error)
}

type meetingDatabase struct {
	store DocumentStore
}

// NewMeetingDatabase initializes a new instance of meeting database with the provided db connection
func NewMeetingDatabase(db DatabaseHelper) MeetingDatabase {
	return &meetingDatabase{
		store: NewDocumentStore(db, meetingCollectionName),
	}
}

func (m *meetingDatabase) Add(ctx context.Context, meeting models.Meeting) error {
	return m.store.Add(ctx, meeting.ID, meeting)
}

func (m *meetingDatabase) Get(ctx context.Context, id string) (*models.Meeting, error) {
	meeting := &models.Meeting{}
	found, err := m.store.Get(ctx, id, meeting)
	if err != nil || !found {
		return nil, err
	}
	return meeting, nil
}

func (m *meetingDatabase) Update(ctx context.Context, id string, fields bson.M) error {
	return m.store.Update(ctx, id, fields)
}

func (m *meetingDatabase) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

func (m *meetingDatabase) AddUser(ctx context.Context, id, email string) (*models.Meeting, error) {
	meeting := &models.Meeting{}
	if err := m.store.Append(ctx, id, models.UserListField, email, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (m *meetingDatabase) RemoveUser(ctx context.Context, id, email string) (*models.Meeting, error) {
	meeting := &models.Meeting{}
	if err := m.store.Remove(ctx, id, models.UserListField, email, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}
