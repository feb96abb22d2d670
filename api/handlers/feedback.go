package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/biit/biit-api/api"
	"github.com/biit/biit-api/databases"
	"github.com/biit/biit-api/errs"
	"github.com/biit/biit-api/models"
)

// Feedback struct mostly used for mocking tests
type Feedback struct {
	DB databases.FeedbackDatabase
	// Now stamps feedback submitted without a timestamp, defaults to time.Now
	Now func() time.Time
}

// CreateFeedbackHandler stores a feedback record under a fresh uuid
func (f Feedback) CreateFeedbackHandler(req *api.Request) (api.Reply, error) {
	timestamp := req.String(api.Body, "timestamp")
	if timestamp == "" {
		timestamp = f.now().UTC().Format(time.RFC3339)
	}

	feedback := models.Feedback{
		ID:             uuid.New().String(),
		Email:          req.String(api.Body, "email"),
		Timestamp:      timestamp,
		Title:          req.String(api.Body, "title"),
		Text:           req.String(api.Body, "text"),
		FeedbackType:   req.String(api.Body, "feedback_type"),
		FeedbackStatus: req.String(api.Body, "feedback_status"),
	}

	ctx, cancel := req.StoreContext()
	defer cancel()

	if err := f.DB.Add(ctx, feedback); err != nil {
		return api.Reply{}, storeError("submit", "feedback", feedback.ID, err)
	}
	return api.Reply{Message: "Feedback created", Data: feedback}, nil
}

// FeedbackHandler returns a feedback record given its id
func (f Feedback) FeedbackHandler(req *api.Request) (api.Reply, error) {
	id := req.String(api.Query, "id")

	ctx, cancel := req.StoreContext()
	defer cancel()

	feedback, err := f.DB.Get(ctx, id)
	if err != nil {
		return api.Reply{}, storeError("get", "feedback", id, err)
	}
	if feedback == nil {
		return api.Reply{}, errs.NotFound(notFound("feedback", id))
	}
	return api.Reply{Message: "Feedback retrieved", Data: feedback}, nil
}

// DeleteFeedbackHandler removes a feedback record
func (f Feedback) DeleteFeedbackHandler(req *api.Request) (api.Reply, error) {
	id := req.String(api.Query, "id")

	ctx, cancel := req.StoreContext()
	defer cancel()

	if err := f.DB.Delete(ctx, id); err != nil {
		return api.Reply{}, storeError("delete", "feedback", id, err)
	}
	return api.Reply{Message: "Feedback deleted"}, nil
}

func (f Feedback) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
