package database

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	MongoImage = "mongo:7"
	TestDBName = "celebra-test"
)

func setupMongo(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        MongoImage,
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Mongo container: %v", err)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Mongo container host: %v", err)
	}

	port, err := mongoC.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatalf("failed to get Mongo container port: %v", err)
	}

	uri := fmt.Sprintf("mongodb://%s", net.JoinHostPort(host, port.Port()))

	return uri, func() {
		_ = mongoC.Terminate(ctx)
	}
}

func connectTestDB(t *testing.T, uri string) *Database {
	t.Helper()

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)

	return db
}
