package db

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureIndex(ctx context.Context, db *mongo.Database, collectionName string, model mongo.IndexModel) error {
	c := db.Collection(collectionName)

	idxs := c.Indexes()

	if model.Options == nil || model.Options.Name == nil {
		return fmt.Errorf("must provide a name for index")
	}
	expectedName := *model.Options.Name

	cur, err := idxs.List(ctx)
	if err != nil {
		return fmt.Errorf("unable to list indexes: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var d bson.M

		if err := cur.Decode(&d); err != nil {
			return fmt.Errorf("unable to decode bson index document: %w", err)
		}

		if name, ok := d["name"].(string); ok && name == expectedName {
			return nil
		}
	}

	_, err = idxs.CreateOne(ctx, model)
	return err
}

// ConnectMongo connects to mongoUrl, taking the database name from its path.
func ConnectMongo(ctx context.Context, mongoUrl string) (*mongo.Database, error) {
	registry := bson.NewRegistry()
	registry.RegisterTypeMapEntry(0x03, reflect.TypeOf(bson.M{}))

	if mongoUrl == "" {
		return nil, fmt.Errorf("no mongo url given")
	}

	uri, err := url.Parse(mongoUrl)
	if err != nil {
		return nil, err
	}

	if client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoUrl).SetRegistry(registry)); err != nil {
		return nil, err
	} else {
		dbName := strings.Trim(uri.Path, "/")
		if dbName == "" {
			dbName = "evolve"
		}
		return client.Database(dbName), nil
	}
}
