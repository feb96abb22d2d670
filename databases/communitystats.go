package databases

// go generate: mockery --name CommunityStatsDatabase

import (
	"context"

	"github.com/biit/biit-api/models"
)

const communityStatsCollectionName = "community_stats"

// CommunityStatsDatabase contains the methods to use with the community stats database
type CommunityStatsDatabase interface {
	Add(ctx context.Context, stats models.CommunityStats) error
	Get(ctx context.Context, community string) (*models.CommunityStats, error)
	Delete(ctx context.Context, community string) error
}

type communityStatsDatabase struct {
	store DocumentStore
}

// NewCommunityStatsDatabase initializes a new instance of community stats database with the provided db connection
func NewCommunityStatsDatabase(db DatabaseHelper) CommunityStatsDatabase {
	return &communityStatsDatabase{
		store: NewDocumentStore(db, communityStatsCollectionName),
	}
}

func (s *communityStatsDatabase) Add(ctx context.Context, stats models.CommunityStats) error {
	return s.store.Add(ctx, stats.Community, stats)
}

func (s *communityStatsDatabase) Get(ctx context.Context, community string) (*models.CommunityStats, error) {
	stats := &models.CommunityStats{}
	found, err := s.store.Get(ctx, community, stats)
	if err != nil || !found {
		return nil, err
	}
	return stats, nil
}

func (s *communityStatsDatabase) Delete(ctx context.Context, community string) error {
	return s.store.Delete(ctx, community)
}
