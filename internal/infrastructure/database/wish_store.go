package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"celebra/internal/domain/model"
	"celebra/pkg/logger"
)

// WishStore is the Mongo-backed store for wish records.
type WishStore struct {
	db *Database
}

func NewWishStore(db *Database) *WishStore {
	return &WishStore{db: db}
}

func (s *WishStore) Write(ctx context.Context, wish *model.Wish) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(WishCollection)

	_, err := coll.InsertOne(ctx, wish)

	return err
}

func (s *WishStore) GetByID(ctx context.Context, id string) (*model.Wish, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(WishCollection)

	var wish model.Wish
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&wish); err != nil {
		return nil, err
	}

	return &wish, nil
}

func (s *WishStore) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(WishCollection)
	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})

	return err
}

// GetExpired returns wishes with timestamp strictly before cutoff, projected
// to the fields the sweeper reads. The comparison is $lt: a wish created
// exactly at the cutoff is not expired.
func (s *WishStore) GetExpired(ctx context.Context, cutoff time.Time) ([]model.Wish, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(WishCollection)

	opts := options.Find().SetProjection(bson.M{
		"_id":            1,
		"image_url":      1,
		"journey_images": 1,
	})

	cursor, err := coll.Find(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff.UnixMilli()}}, opts)
	if err != nil {
		logger.Error("failed to query expired wishes", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	var wishes []model.Wish
	if err := cursor.All(ctx, &wishes); err != nil {
		logger.Error("failed to decode expired wishes", "err", err)

		return nil, err
	}

	return wishes, nil
}

// RemoveExpired deletes the given ids in one batch, re-filtered by the same
// cutoff predicate the listing used.
func (s *WishStore) RemoveExpired(ctx context.Context, ids []string, cutoff time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(WishCollection)

	res, err := coll.DeleteMany(ctx, bson.M{
		"_id":       bson.M{"$in": ids},
		"timestamp": bson.M{"$lt": cutoff.UnixMilli()},
	})
	if err != nil {
		logger.Error("failed to remove expired wishes", "err", err)

		return 0, err
	}

	return res.DeletedCount, nil
}
