package db

import (
	"context"
	"crypto/tls"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/anupamsoni/mfapi/internal/config"
)

// DB wraps the Mongo client and the application database handle. The
// connection is opened once at startup and shared for the process lifetime.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes a connection to the database and verifies it with a
// ping before returning.
func Connect(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.TLSInsecure {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &DB{
		client:   client,
		database: client.Database(cfg.DBName),
	}, nil
}

// Database returns the application database handle.
func (d *DB) Database() *mongo.Database {
	return d.database
}

// Ping verifies the connection is still reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the underlying connection pool.
func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
