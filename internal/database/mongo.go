package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Mongo wraps a MongoDB client bound to one database
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	config MongoConfig
}

// NewMongo creates a new, unconnected Mongo instance
func NewMongo(cfg MongoConfig) *Mongo {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	return &Mongo{config: cfg}
}

// Connect dials the cluster and verifies it answers a ping
func (m *Mongo) Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(m.config.URI).
		SetConnectTimeout(m.config.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("%w: ping failed: %v", ErrConnection, err)
	}

	m.client = client
	m.db = client.Database(m.config.Database)
	return nil
}

// Close disconnects the client
func (m *Mongo) Close() error {
	if m.client != nil {
		return m.client.Disconnect(context.Background())
	}
	return nil
}

// Ping checks the cluster connection
func (m *Mongo) Ping(ctx context.Context) error {
	if m.client == nil {
		return ErrConnection
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Collection returns a handle to the named collection.
// It must only be called after Connect succeeded.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}
