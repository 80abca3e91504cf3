package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tzconv/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrMissingURI = errors.New("mongo uri is not configured")

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func New(config *config.Config) *Connection {
	conn, err := Connect(context.Background(), *config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	return conn
}

// Connect dials the configured deployment and pings it, retrying up to MaxRetry times.
func Connect(ctx context.Context, config config.Config) (*Connection, error) {
	cfg := config.DB.Mongo
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}

	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	attempts := max(cfg.MaxRetry, 1)

	var err error

	for retry := range attempts {
		var client *mongo.Client

		client, err = dial(ctx, cfg.URI, timeout)
		if err == nil {
			log.
				Info().
				Str("dbName", cfg.Name).
				Str("collection", cfg.Collection).
				Msg("Connected to database")

			return &Connection{
				Client:   client,
				Database: client.Database(cfg.Name),
			}, nil
		}

		log.
			Error().
			Err(err).
			Str("dbName", cfg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("mongo connect aborted: %w", ctx.Err())
		case <-time.After(time.Duration(cfg.RetryWaitSeconds) * time.Second):
		}
	}

	return nil, err
}

func dial(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	return nil
}

func (c *Connection) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}

	return nil
}
