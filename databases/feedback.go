package databases

// go generate: mockery --name FeedbackDatabase

import (
	"context"

	"github.com/biit/biit-api/models"
)

const feedbackCollectionName = "feedback"

// FeedbackDatabase contains the methods to use with the feedback database
type FeedbackDatabase interface {
	Add(ctx context.Context, feedback models.Feedback) error
	Get(ctx context.Context, id string) (*models.Feedback, error)
	Delete(ctx context.Context, id string) error
}

type feedbackDatabase struct {
	store DocumentStore
}

// NewFeedbackDatabase initializes a new instance of feedback database with the provided db connection
func NewFeedbackDatabase(db DatabaseHelper) FeedbackDatabase {
	return &feedbackDatabase{
		store: NewDocumentStore(db, feedbackCollectionName),
	}
}

func (f *feedbackDatabase) Add(ctx context.Context, feedback models.Feedback) error {
	return f.store.Add(ctx, feedback.ID, feedback)
}

func (f *feedbackDatabase) Get(ctx context.Context, id string) (*models.Feedback, error) {
	feedback := &models.Feedback{}
	found, err := f.store.Get(ctx, id, feedback)
	if err != nil || !found {
		return nil, err
	}
	return feedback, nil
}

func (f *feedbackDatabase) Delete(ctx context.Context, id string) error {
	return f.store.Delete(ctx, id)
}
