package db

import (
	"context"
	"fmt"
	"time"

	"github.com/grexie/evolve/pkg/genetics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CycleReportsCollection = "cycles"

type CycleReport struct {
	Name        string         `bson:"name"`
	Generation  int            `bson:"generation"`
	Started     time.Time      `bson:"started"`
	Finished    time.Time      `bson:"finished"`
	Selection   string         `bson:"selection"`
	Replacement string         `bson:"replacement"`
	Candidates  int            `bson:"candidates"`
	Elite       int            `bson:"elite"`
	Replaced    int            `bson:"replaced"`
	Population  genetics.Stats `bson:"population"`
	Batch       genetics.Stats `bson:"batch"`
}

func NewCycleReport(name string, generation int, started, finished time.Time, params genetics.Params, result genetics.CycleResult) CycleReport {
	return CycleReport{
		Name:        name,
		Generation:  generation,
		Started:     started,
		Finished:    finished,
		Selection:   string(params.Selection),
		Replacement: string(params.Replacement),
		Candidates:  len(result.Candidates),
		Elite:       result.Elite,
		Replaced:    result.Replaced,
		Population:  result.Population,
		Batch:       result.Batch,
	}
}

func ensureCycleIndex(ctx context.Context, db *mongo.Database) error {
	return EnsureIndex(ctx, db, CycleReportsCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "generation", Value: 1}},
		Options: options.Index().SetName("name_generation").SetUnique(true),
	})
}

// InsertCycleReport upserts the report for its name and generation.
func InsertCycleReport(ctx context.Context, db *mongo.Database, report CycleReport) error {
	if err := ensureCycleIndex(ctx, db); err != nil {
		return fmt.Errorf("ensuring cycle index: %w", err)
	}

	_, err := WithTransaction(ctx, db, func(ctx context.Context) (any, error) {
		return db.Collection(CycleReportsCollection).ReplaceOne(
			ctx,
			bson.M{"name": report.Name, "generation": report.Generation},
			report,
			options.Replace().SetUpsert(true),
		)
	})
	return err
}

// CycleReports lists the reports of name in generation order.
func CycleReports(ctx context.Context, db *mongo.Database, name string) ([]CycleReport, error) {
	cur, err := db.Collection(CycleReportsCollection).Find(ctx, bson.M{"name": name}, options.Find().SetSort(bson.D{{Key: "generation", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []CycleReport{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
