package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	WishCollection       = "wishes"
	InvitationCollection = "invitations"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initCollections(db); err != nil {
		return nil, err
	}

	return db, nil
}

// initCollections creates the content collections and the indexes backing
// the sweep queries: wishes range-scan on timestamp, invitations on
// expires_at (periodic sweep) and marriage_date (access-time check).
func initCollections(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	for _, init := range []struct {
		name    string
		indexes []mongo.IndexModel
	}{
		{
			name: WishCollection,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "timestamp", Value: 1}}},
			},
		},
		{
			name: InvitationCollection,
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "expires_at", Value: 1}}},
				{Keys: bson.D{{Key: "marriage_date", Value: 1}}},
			},
		},
	} {
		collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": init.name})
		if err != nil {
			return err
		}
		if len(collections) == 0 {
			if err := db.Client.Database(db.DBName).CreateCollection(ctx, init.name); err != nil {
				return err
			}
		}

		coll := db.Client.Database(db.DBName).Collection(init.name)
		if _, err := coll.Indexes().CreateMany(ctx, init.indexes); err != nil {
			return err
		}
	}

	return nil
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
