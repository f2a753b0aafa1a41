package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/grexie/evolve/pkg/db"
	"github.com/grexie/evolve/pkg/genetics"
	"github.com/grexie/evolve/pkg/rng"
	"github.com/grexie/evolve/pkg/store"
	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

func loadEnv(filenames ...string) {
	for _, filename := range filenames {
		if s, err := os.Stat(filename); err == nil && !s.IsDir() {
			godotenv.Load(filename)
		}
	}
}

// objective rewards genes close to zero; scores fall in (0, 1].
func objective(individual genetics.Individual) float64 {
	c := individual.(*genetics.Chromosome)
	sum := 0.0
	for _, g := range c.Genes {
		sum += g * g
	}
	return 1 / (1 + sum)
}

func seedPopulation(source *rng.Source, params genetics.Params) *genetics.Population {
	members := make([]genetics.Individual, params.PopulationSize)
	for i := range members {
		// Gaussian carries a +0.5 std shift, so genes start centred on 0.5
		c := genetics.NewChromosome(source.SampleN(rng.GaussianDistribution{Mean: 0, StdDev: 1}, params.Genes), 0)
		c.SetFitness(objective(c))
		members[i] = c
	}
	return genetics.NewPopulation(members...)
}

func main() {
	if _, ok := os.LookupEnv("ENV"); !ok {
		env := "development"
		os.Setenv("ENV", env)
	}
	loadEnv(".env."+os.Getenv("ENV")+".local", ".env."+os.Getenv("ENV"), ".env.local", ".env")

	params := genetics.NewParamsFromEnv()
	params.Write(os.Stdout, "Evolve Config")

	source := rng.New(params.Seed, params.IntType)

	selector, err := genetics.NewSelector(params.Selection, source, params.Fields())
	if err != nil {
		log.Fatalf("error configuring selection: %v", err)
	}
	replacer, err := genetics.NewReplacer(params.Replacement, source, params.Fields())
	if err != nil {
		log.Fatalf("error configuring replacement: %v", err)
	}

	snapshots, err := store.Open(params.StorePath)
	if err != nil {
		log.Fatalf("error opening population store: %v", err)
	}
	defer snapshots.Close()

	var database *mongo.Database
	if params.MongoURL != "" {
		if database, err = db.ConnectMongo(context.Background(), params.MongoURL); err != nil {
			log.Fatalf("failed to connect to MongoDB: %v", err)
		}
		defer database.Client().Disconnect(context.Background())
	}

	generation := 0
	population := seedPopulation(source, params)
	if latest, ok, err := snapshots.LatestGeneration(params.Name); err != nil {
		log.Fatalf("error reading population store: %v", err)
	} else if ok {
		if p, err := snapshots.LoadPopulation(params.Name, latest); err != nil {
			log.Fatalf("error loading generation %d: %v", latest, err)
		} else {
			log.Printf("resuming %s from generation %d", params.Name, latest)
			population, generation = p, latest
		}
	} else if err := snapshots.SavePopulation(params.Name, generation, population); err != nil {
		log.Fatalf("error storing generation %d: %v", generation, err)
	}

	file, err := os.OpenFile(fmt.Sprintf("evolve-%s.csv", params.Name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("error opening report: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if stat, _ := file.Stat(); stat.Size() == 0 {
		if err := genetics.WriteCSVHeader(writer); err != nil {
			log.Fatalf("error writing csv: %v", err)
		}
	}

	population.Write(os.Stdout, fmt.Sprintf("Generation %d", generation))

	for range params.Cycles {
		generation++
		started := time.Now()

		pw := progress.NewWriter()
		pw.SetMessageLength(40)
		pw.SetNumTrackersExpected(1)
		pw.SetStyle(progress.StyleDefault)
		pw.SetTrackerLength(15)
		pw.SetTrackerPosition(progress.PositionRight)
		pw.SetUpdateFrequency(time.Millisecond * 100)
		pw.Style().Colors = progress.StyleColorsExample
		pw.Style().Options.PercentFormat = "%2.0f%%"
		go pw.Render()

		result, err := genetics.Cycle(context.Background(), pw, generation, population, selector, replacer, objective, params.Candidates, params.EliteCount)

		pw.Stop()
		for pw.IsRenderInProgress() {
			time.Sleep(100 * time.Millisecond)
		}

		if errors.Is(err, genetics.ErrDegenerateInput) {
			log.Printf("generation %d: %v", generation, err)
			break
		} else if err != nil {
			log.Fatalf("generation %d: %v", generation, err)
		}
		finished := time.Now()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetTitle(fmt.Sprintf("Generation %d - Summary", generation))
		t.AppendHeader(table.Row{"", "MEAN", "MIN", "25TH", "MEDIAN", "75TH", "MAX", "STDDEV"})
		t.AppendRows([]table.Row{
			result.Population.Row("Population"),
			result.Batch.Row("Candidates"),
		})
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"Elite", result.Elite},
			{"Replaced", result.Replaced},
			{"Duration", finished.Sub(started).Round(time.Millisecond)},
		})
		t.Render()

		if err := genetics.WriteCSVRow(writer, generation, started, finished, params, len(result.Candidates), result.Replaced, result.Population, result.Batch); err != nil {
			log.Fatalf("error writing csv: %v", err)
		}

		if err := snapshots.SavePopulation(params.Name, generation, population); err != nil {
			log.Fatalf("error storing generation %d: %v", generation, err)
		}

		if database != nil {
			report := db.NewCycleReport(params.Name, generation, started, finished, params, result)
			if err := db.InsertCycleReport(context.Background(), database, report); err != nil {
				log.Printf("error recording generation %d: %v", generation, err)
			}
		}
	}

	population.SortDescending()
	population.Write(os.Stdout, fmt.Sprintf("Generation %d - Final", generation))
}
