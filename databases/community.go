package databases

// go generate: mockery --name CommunityDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/biit/biit-api/models"
)

const communityCollectionName = "communities"

// CommunityDatabase contains the methods to use with the community database
type CommunityDatabase interface {
	Add(ctx context.Context, community models.Community) error
	Get(ctx context.Context, name string) (*models.Community, error)
	Update(ctx context.Context, name string, fields bson.M) error
	Delete(ctx context.Context, name string) error
	AddMember(ctx context.Context, name, email string) (*models.Community, error)
	RemoveMember(ctx context.Context, name, email string) (*models.Community, error)
	Names(ctx context.Context) ([]string, error)
}

type communityDatabase struct {
	store DocumentStore
}

// NewCommunityDatabase initializes a new instance of community database with the provided db connection
func NewCommunityDatabase(db DatabaseHelper) CommunityDatabase {
	return &communityDatabase{
		store: NewDocumentStore(db, communityCollectionName),
	}
}

func (c *communityDatabase) Add(ctx context.Context, community models.Community) error {
	return c.store.Add(ctx, community.Name, community)
}

// Get returns nil when no community has that name
func (c *communityDatabase) Get(ctx context.Context, name string) (*models.Community, error) {
	community := &models.Community{}
	found, err := c.store.Get(ctx, name, community)
	if err != nil || !found {
		return nil, err
	}
	return community, nil
}

func (c *communityDatabase) Update(ctx context.Context, name string, fields bson.M) error {
	return c.store.Update(ctx, name, fields)
}

func (c *communityDatabase) Delete(ctx context.Context, name string) error {
	return c.store.Delete(ctx, name)
}

func (c *communityDatabase) AddMember(ctx context.Context, name, email string) (*models.Community, error) {
	community := &models.Community{}
	if err := c.store.Append(ctx, name, models.MembersField, email, community); err != nil {
		return nil, err
	}
	return community, nil
}

func (c *communityDatabase) RemoveMember(ctx context.Context, name, email string) (*models.Community, error) {
	community := &models.Community{}
	if err := c.store.Remove(ctx, name, models.MembersField, email, community); err != nil {
		return nil, err
	}
	return community, nil
}

func (c *communityDatabase) Names(ctx context.Context) ([]string, error) {
	return c.store.IDs(ctx)
}
