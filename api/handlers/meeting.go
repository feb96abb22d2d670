package handlers

import (
	"context"
	"fmt"

	"github.com/biit/biit-api/api"
	"github.com/biit/biit-api/databases"
	"github.com/biit/biit-api/errs"
	"github.com/biit/biit-api/models"
)

// values of the function flag on /meeting/user
const (
	removeUser = 0
	addUser    = 1
)

// Meeting struct mostly used for mocking tests
type Meeting struct {
	DB databases.MeetingDatabase
}

// CreateMeetingHandler stores a meeting under an id derived from its fields.
// Creating the same meeting twice fails since the id is already taken.
func (m Meeting) CreateMeetingHandler(req *api.Request) (api.Reply, error) {
	userList, err := req.Strings(api.Body, "user_list")
	if err != nil {
		return api.Reply{}, err
	}
	duration, err := req.Int(api.Body, "duration")
	if err != nil {
		return api.Reply{}, err
	}

	meeting := models.NewMeeting(
		req.String(api.Body, "timestamp"),
		req.String(api.Body, "location"),
		userList,
		req.String(api.Body, "meettype"),
		duration,
	)

	ctx, cancel := req.StoreContext()
	defer cancel()

	if err := m.DB.Add(ctx, meeting); err != nil {
		return api.Reply{}, storeError("create", "meeting", meeting.ID, err)
	}
	return api.Reply{Message: "Meeting created", Data: meeting}, nil
}

// MeetingHandler returns a meeting given its id
func (m Meeting) MeetingHandler(req *api.Request) (api.Reply, error) {
	ctx, cancel := req.StoreContext()
	defer cancel()

	meeting, err := m.get(ctx, req.String(api.Query, "id"))
	if err != nil {
		return api.Reply{}, err
	}
	return api.Reply{Message: "Meeting retrieved", Data: meeting}, nil
}

// UpdateMeetingHandler applies updateFields to a meeting
func (m Meeting) UpdateMeetingHandler(req *api.Request) (api.Reply, error) {
	id := req.String(api.Query, "id")

	fields, err := req.Object(api.Query, "updateFields")
	if err != nil {
		return api.Reply{}, err
	}
	update, err := updateDocument(fields, models.MeetingSchema)
	if err != nil {
		return api.Reply{}, err
	}

	ctx, cancel := req.StoreContext()
	defer cancel()

	if err := m.DB.Update(ctx, id, update); err != nil {
		return api.Reply{}, storeError("update", "meeting", id, err)
	}

	meeting, err := m.get(ctx, id)
	if err != nil {
		return api.Reply{}, err
	}
	return api.Reply{Message: "Meeting updated", Data: meeting}, nil
}

// DeleteMeetingHandler removes a meeting
func (m Meeting) DeleteMeetingHandler(req *api.Request) (api.Reply, error) {
	id := req.String(api.Query, "id")

	ctx, cancel := req.StoreContext()
	defer cancel()

	if err := m.DB.Delete(ctx, id); err != nil {
		return api.Reply{}, storeError("delete", "meeting", id, err)
	}
	return api.Reply{Message: "Meeting deleted"}, nil
}

// MeetingUserHandler adds the email to the meeting user list when function is
// 1 and removes every occurrence of it when function is 0
func (m Meeting) MeetingUserHandler(req *api.Request) (api.Reply, error) {
	id := req.String(api.Query, "id")
	email := req.String(api.Query, "email")

	function, err := req.Int(api.Query, "function")
	if err != nil {
		return api.Reply{}, err
	}

	ctx, cancel := req.StoreContext()
	defer cancel()

	var meeting *models.Meeting
	switch function {
	case addUser:
		meeting, err = m.DB.AddUser(ctx, id, email)
	case removeUser:
		meeting, err = m.DB.RemoveUser(ctx, id, email)
	default:
		return api.Reply{}, errs.BadRequest(fmt.Sprintf("function must be %d or %d, got %d", removeUser, addUser, function))
	}
	if err != nil {
		return api.Reply{}, storeError("update users of", "meeting", id, err)
	}
	return api.Reply{Message: "User added", Data: meeting}, nil
}

func (m Meeting) get(ctx context.Context, id string) (*models.Meeting, error) {
	meeting, err := m.DB.Get(ctx, id)
	if err != nil {
		return nil, storeError("get", "meeting", id, err)
	}
	if meeting == nil {
		return nil, errs.NotFound(notFound("meeting", id))
	}
	return meeting, nil
}
