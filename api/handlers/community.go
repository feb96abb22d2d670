package handlers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/biit/biit-api/api"
	"github.com/biit/biit-api/databases"
	"github.com/biit/biit-api/errs"
	"github.com/biit/biit-api/models"
)

// Community struct mostly used for mocking tests
type Community struct {
	DB  databases.CommunityDatabase
	SDB databases.CommunityStatsDatabase
}

// CreateCommunityHandler creates a new community along with its zeroed stats
func (c Community) CreateCommunityHandler(req *api.Request) (api.Reply, error) {
	admins, err := req.Strings(api.Body, "Admins")
	if err != nil {
		return api.Reply{}, err
	}
	members, err := req.Strings(api.Body, "Members")
	if err != nil {
		return api.Reply{}, err
	}

	community := models.Community{
		Name:          req.String(api.Body, "name"),
		CodeOfConduct: req.String(api.Body, "codeofconduct"),
		Admins:        admins,
		Members:       members,
		Bans:          []string{},
		MPM:           req.String(api.Body, "mpm"),
		MeetType:      req.String(api.Body, "meettype"),
	}

	ctx, cancel := req.StoreContext()
	defer cancel()

	if err := c.DB.Add(ctx, community); err != nil {
		return api.Reply{}, storeError("create", "community", community.Name, err)
	}
	// the reconciler fills in stats if this second write is lost
	if err := c.resetStats(ctx, community.Name); err != nil {
		return api.Reply{}, storeError("create", "community stats", community.Name, err)
	}

	return api.Reply{Message: "Community created", Data: community}, nil
}

// CommunityHandler returns a community given its name
func (c Community) CommunityHandler(req *api.Request) (api.Reply, error) {
	name := req.String(api.Query, "name")

	ctx, cancel := req.StoreContext()
	defer cancel()

	community, err := c.DB.Get(ctx, name)
	if err != nil {
		return api.Reply{}, storeError("get", "community", name, err)
	}
	if community == nil {
		return api.Reply{}, errs.NotFound(notFound("community", name))
	}
	return api.Reply{Message: "Community Received", Data: community}, nil
}

// UpdateCommunityHandler applies updateFields to a community. Only one of the
// community admins may do so.
func (c Community) UpdateCommunityHandler(req *api.Request) (api.Reply, error) {
	name := req.String(api.Query, "name")
	email := req.String(api.Query, "email")

	fields, err := req.Object(api.Query, "updateFields")
	if err != nil {
		return api.Reply{}, err
	}

	ctx, cancel := req.StoreContext()
	defer cancel()

	community, err := c.DB.Get(ctx, name)
	if err != nil {
		return api.Reply{}, storeError("get", "community", name, err)
	}
	if community == nil {
		return api.Reply{}, errs.NotFound(notFound("community", name))
	}
	if !community.IsAdmin(email) {
		return api.Reply{}, errs.Unauthorized(fmt.Sprintf("%s is not an admin of %s", email, name))
	}
	update, err := updateDocument(fields, models.CommunitySchema)
	if err != nil {
		return api.Reply{}, err
	}

	if err := c.DB.Update(ctx, name, update); err != nil {
		return api.Reply{}, storeError("update", "community", name, err)
	}

	updated, err := c.DB.Get(ctx, name)
	if err != nil {
		return api.Reply{}, storeError("get", "community", name, err)
	}
	if updated == nil {
		return api.Reply{}, errs.NotFound(notFound("community", name))
	}
	return api.Reply{Message: "Community Updated", Data: updated}, nil
}

// DeleteCommunityHandler removes a community and then its stats
func (c Community) DeleteCommunityHandler(req *api.Request) (api.Reply, error) {
	name := req.String(api.Query, "name")

	ctx, cancel := req.StoreContext()
	defer cancel()

	if err := c.DB.Delete(ctx, name); err != nil {
		return api.Reply{}, storeError("delete", "community", name, err)
	}
	if err := c.SDB.Delete(ctx, name); err != nil {
		if !errors.Is(err, databases.ErrNotFound) {
			return api.Reply{}, storeError("delete", "community stats", name, err)
		}
		zap.S().Warnw("community had no stats", "community", name)
	}

	return api.Reply{Message: "Community Deleted"}, nil
}

// CommunityStatsHandler returns the meetup counters of a community
func (c Community) CommunityStatsHandler(req *api.Request) (api.Reply, error) {
	name := req.Var("name")

	ctx, cancel := req.StoreContext()
	defer cancel()

	stats, err := c.SDB.Get(ctx, name)
	if err != nil {
		return api.Reply{}, storeError("get", "community stats", name, err)
	}
	if stats == nil {
		return api.Reply{}, errs.NotFound(notFound("stats for community", name))
	}
	return api.Reply{Message: "Community Stats Received", Data: stats}, nil
}

// JoinCommunityHandler appends the caller to the community members. Joining
// twice lists the member twice.
func (c Community) JoinCommunityHandler(req *api.Request) (api.Reply, error) {
	name := req.Var("name")
	email := req.String(api.Body, "email")

	ctx, cancel := req.StoreContext()
	defer cancel()

	community, err := c.DB.AddMember(ctx, name, email)
	if err != nil {
		return api.Reply{}, storeError("join", "community", name, err)
	}
	return api.Reply{Message: "Community Joined", Data: community}, nil
}

// LeaveCommunityHandler removes every occurrence of the caller from the
// community members
func (c Community) LeaveCommunityHandler(req *api.Request) (api.Reply, error) {
	name := req.Var("name")
	email := req.String(api.Body, "email")

	ctx, cancel := req.StoreContext()
	defer cancel()

	community, err := c.DB.RemoveMember(ctx, name, email)
	if err != nil {
		return api.Reply{}, storeError("leave", "community", name, err)
	}
	return api.Reply{Message: "Community Left", Data: community}, nil
}

// resetStats adds zeroed stats for a new community. Stats left behind by an
// earlier community of the same name are replaced.
func (c Community) resetStats(ctx context.Context, name string) error {
	err := c.SDB.Add(ctx, models.NewCommunityStats(name))
	if !errors.Is(err, databases.ErrAlreadyExists) {
		return err
	}
	zap.S().Warnw("replacing stale community stats", "community", name)
	if err := c.SDB.Delete(ctx, name); err != nil && !errors.Is(err, databases.ErrNotFound) {
		return err
	}
	return c.SDB.Add(ctx, models.NewCommunityStats(name))
}
