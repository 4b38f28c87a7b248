package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"celebra/internal/domain/model"
	"celebra/pkg/logger"
)

// InvitationStore is the Mongo-backed store for marriage invitations.
type InvitationStore struct {
	db *Database
}

func NewInvitationStore(db *Database) *InvitationStore {
	return &InvitationStore{db: db}
}

func (s *InvitationStore) Write(ctx context.Context, invitation *model.Invitation) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(InvitationCollection)

	_, err := coll.InsertOne(ctx, invitation)

	return err
}

func (s *InvitationStore) GetByID(ctx context.Context, id string) (*model.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(InvitationCollection)

	var invitation model.Invitation
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&invitation); err != nil {
		return nil, err
	}

	return &invitation, nil
}

// GetExpired returns invitations whose expires_at is strictly before asOf.
// expires_at is authoritative here; a future marriage_date does not save an
// invitation whose expires_at has passed.
func (s *InvitationStore) GetExpired(ctx context.Context, asOf time.Time) ([]model.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(InvitationCollection)

	cursor, err := coll.Find(ctx, bson.M{"expires_at": bson.M{"$lt": asOf}})
	if err != nil {
		logger.Error("failed to query expired invitations", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []model.Invitation
	if err := cursor.All(ctx, &invitations); err != nil {
		logger.Error("failed to decode expired invitations", "err", err)

		return nil, err
	}

	return invitations, nil
}

func (s *InvitationStore) RemoveExpired(ctx context.Context, ids []string, asOf time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(InvitationCollection)

	res, err := coll.DeleteMany(ctx, bson.M{
		"_id":        bson.M{"$in": ids},
		"expires_at": bson.M{"$lt": asOf},
	})
	if err != nil {
		logger.Error("failed to remove expired invitations", "err", err)

		return 0, err
	}

	return res.DeletedCount, nil
}

// RemoveStale deletes invitations whose marriage_date is strictly before
// cutoff. Rows only: the access-time check trades blob cleanup for speed and
// leaves the blobs to the periodic sweep.
func (s *InvitationStore) RemoveStale(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(InvitationCollection)

	res, err := coll.DeleteMany(ctx, bson.M{"marriage_date": bson.M{"$lt": cutoff}})
	if err != nil {
		logger.Error("failed to remove stale invitations", "err", err)

		return 0, err
	}

	return res.DeletedCount, nil
}
