package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tzconv/config"
	tzMongo "tzconv/infras/mongo"
	"tzconv/infras/otel"
	"tzconv/internal/domains/savedtimezone/model"
	"tzconv/shared/constant"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicate is returned by Insert when the owner already saved the timezone.
var ErrDuplicate = errors.New("saved timezone already exists")

type SavedTimezone interface {
	GetAll(ctx context.Context, owner string, limit int64) ([]model.SavedTimezone, error)
	Insert(ctx context.Context, model model.SavedTimezone) error
	DeleteByTimezoneID(ctx context.Context, owner, timezoneID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type repositoryImpl struct {
	collection *mongo.Collection
	otel       otel.Otel
}

func New(db *tzMongo.Connection, cfg *config.Config, otel otel.Otel) SavedTimezone {
	repo, err := Open(context.Background(), db, cfg, otel)
	if err != nil {
		log.Fatal().Err(err).Str("collection", cfg.DB.Mongo.Collection).Msg("Failed to ensure saved timezone indexes")
	}

	return repo
}

// Open binds the repository to the configured collection. Saving relies on the
// unique indexes to reject duplicates, so Open fails when they cannot be built,
// e.g. when the collection already holds duplicate entries.
func Open(ctx context.Context, db *tzMongo.Connection, cfg *config.Config, otel otel.Otel) (SavedTimezone, error) {
	repo := &repositoryImpl{
		collection: db.Collection(cfg.DB.Mongo.Collection),
		otel:       otel,
	}

	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

// Indexes lists the indexes the saved timezone collection relies on.
func Indexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: model.FieldOwner, Value: 1},
				{Key: model.FieldTimezoneID, Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("user_id_timezone_id_unique"),
		},
		{
			Keys:    bson.D{{Key: model.FieldID, Value: 1}},
			Options: options.Index().SetUnique(true).SetName("id_unique"),
		},
	}
}

func (r *repositoryImpl) EnsureIndexes(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".EnsureIndexes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.collection.Indexes().CreateMany(ctx, Indexes()); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, owner string, limit int64) (res []model.SavedTimezone, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := bson.M{model.FieldOwner: owner}
	scope.SetAttribute(constant.OtelQueryAttributeKey, fmt.Sprintf("%v", filter))

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find saved timezones: %w", err)
	}
	defer cursor.Close(ctx)

	res = make([]model.SavedTimezone, 0)
	if err = cursor.All(ctx, &res); err != nil {
		return nil, fmt.Errorf("failed to decode saved timezones: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, model model.SavedTimezone) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.collection.InsertOne(ctx, model); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}

		return fmt.Errorf("failed to insert saved timezone: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DeleteByTimezoneID(ctx context.Context, owner, timezoneID string) (deleted int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteByTimezoneID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := bson.M{
		model.FieldOwner:      owner,
		model.FieldTimezoneID: timezoneID,
	}

	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete saved timezone: %w", err)
	}

	return res.DeletedCount, nil
}
