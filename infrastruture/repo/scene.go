package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-world-gen/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SceneRepo handles the persistence of generated maze scenes.
type SceneRepo struct {
	collection *mongo.Collection
}

// NewSceneRepo creates a new SceneRepo with the given MongoDB client, database name, and collection name.
func NewSceneRepo(client *mongo.Client, dbName, collectionName string) *SceneRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SceneRepo{
		collection: collection,
	}
}

// Save inserts or updates a scene in the repository.
// If the scene already exists, it updates the existing record.
// If the scene does not exist, it adds a new record.
func (s *SceneRepo) Save(scene *dmn.Scene) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": scene.ID}
	update := bson.M{
		"$set": bson.M{
			"gridSize":  scene.GridSize,
			"cellSize":  scene.CellSize,
			"minWalls":  scene.MinWalls,
			"seed":      scene.Seed,
			"report":    scene.Report,
			"walls":     scene.Walls,
			"summary":   scene.Summary,
			"createdAt": scene.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a scene by its ID.
// Returns an error if the scene is not found or if an unexpected error occurs.
func (s *SceneRepo) ByID(id uuid.UUID) (*dmn.Scene, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var scene dmn.Scene
	if err := s.collection.FindOne(ctx, filter).Decode(&scene); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("scene not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &scene, nil
}

// Latest retrieves up to limit scenes ordered by creation time, newest first.
func (s *SceneRepo) Latest(limit int) ([]*dmn.Scene, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var scenes []*dmn.Scene
	if err := cursor.All(ctx, &scenes); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return scenes, nil
}
