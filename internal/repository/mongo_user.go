package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forgo/headlines/api/internal/database"
	"github.com/forgo/headlines/api/internal/model"
)

// MongoUserRepository handles user data access on a MongoDB collection
type MongoUserRepository struct {
	coll *mongo.Collection
	ping func(ctx context.Context) error
}

// NewMongoUserRepository creates a user repository backed by the users collection
func NewMongoUserRepository(db *database.Mongo, collection string) *MongoUserRepository {
	return &MongoUserRepository{
		coll: db.Collection(collection),
		ping: db.Ping,
	}
}

type userDocument struct {
	ID          primitive.ObjectID  `bson:"_id"`
	Name        string              `bson:"name"`
	Email       string              `bson:"email"`
	Preferences preferencesDocument `bson:"preferences"`
	Favorites   []favoriteDocument  `bson:"favorites"`
	CreatedAt   time.Time           `bson:"createdAt"`
	LastLogin   *time.Time          `bson:"lastLogin,omitempty"`
}

type preferencesDocument struct {
	Categories []string `bson:"categories"`
	Theme      string   `bson:"theme"`
	Language   string   `bson:"language"`
}

type favoriteDocument struct {
	ArticleID string    `bson:"articleId"`
	Title     string    `bson:"title"`
	URL       string    `bson:"url"`
	Source    string    `bson:"source"`
	SavedAt   time.Time `bson:"savedAt"`
}

// GetByID retrieves a user by its hex ObjectID. A malformed or unknown ID yields (nil, nil).
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", database.ErrQuery, err)
	}

	return doc.toModel(), nil
}

// Save sets the mutable fields of the user document
func (r *MongoUserRepository) Save(ctx context.Context, user *model.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id %q", database.ErrQuery, user.ID)
	}

	update := bson.M{"$set": updateFields(user)}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("%w: %v", database.ErrQuery, err)
	}
	return nil
}

// Ping checks the underlying cluster connection
func (r *MongoUserRepository) Ping(ctx context.Context) error {
	return r.ping(ctx)
}

func updateFields(user *model.User) bson.M {
	categories := user.Preferences.Categories
	if categories == nil {
		categories = []string{}
	}

	favorites := make([]favoriteDocument, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		favorites = append(favorites, favoriteDocument{
			ArticleID: fav.ArticleID,
			Title:     fav.Title,
			URL:       fav.URL,
			Source:    fav.Source,
			SavedAt:   fav.SavedAt,
		})
	}

	return bson.M{
		"name":  user.Name,
		"email": user.Email,
		"preferences": preferencesDocument{
			Categories: categories,
			Theme:      user.Preferences.Theme,
			Language:   user.Preferences.Language,
		},
		"favorites": favorites,
		"updatedAt": time.Now(),
	}
}

func (d *userDocument) toModel() *model.User {
	user := &model.User{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Email: d.Email,
		Preferences: model.Preferences{
			Categories: d.Preferences.Categories,
			Theme:      d.Preferences.Theme,
			Language:   d.Preferences.Language,
		},
		Favorites: make([]model.FavoriteEntry, 0, len(d.Favorites)),
		CreatedAt: d.CreatedAt,
		LastLogin: d.LastLogin,
	}
	if user.Preferences.Categories == nil {
		user.Preferences.Categories = []string{}
	}

	for _, fav := range d.Favorites {
		user.Favorites = append(user.Favorites, model.FavoriteEntry{
			ArticleID: fav.ArticleID,
			Title:     fav.Title,
			URL:       fav.URL,
			Source:    fav.Source,
			SavedAt:   fav.SavedAt,
		})
	}
	return user
}
