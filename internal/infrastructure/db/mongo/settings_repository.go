package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

const settingsCollection = "settings"

// settingsDocID is the fixed id of the single settings document.
const settingsDocID = "system"

// SettingsRepository persists the settings document in MongoDB. When the
// document does not exist yet, Get falls back to the defaults the
// repository was constructed with.
type SettingsRepository struct {
	coll     *mongo.Collection
	defaults domain.Settings
}

func NewSettingsRepository(db *mongo.Database, defaults domain.Settings) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection), defaults: defaults}
}

type mongoSettings struct {
	ID       string          `bson:"_id"`
	Settings domain.Settings `bson:"settings"`
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var doc mongoSettings
	if err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			s := r.defaults
			return &s, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &doc.Settings, nil
}

func (r *SettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": settingsDocID},
		mongoSettings{ID: settingsDocID, Settings: *settings},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
