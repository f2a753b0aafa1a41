package db

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction runs callback in a session transaction when
// MONGO_SUPPORTS_TRANSACTIONS is "true", and directly otherwise.
func WithTransaction(ctx context.Context, db *mongo.Database, callback func(ctx context.Context) (any, error)) (any, error) {
	if os.Getenv("MONGO_SUPPORTS_TRANSACTIONS") == "true" {
		client := db.Client()
		session, err := client.StartSession()
		if err != nil {
			return nil, err
		}
		defer session.EndSession(ctx)

		return session.WithTransaction(ctx, func(ctx mongo.SessionContext) (any, error) {
			return callback(ctx)
		})
	} else {
		return callback(ctx)
	}
}
