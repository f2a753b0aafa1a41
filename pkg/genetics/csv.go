package genetics

import (
	"encoding/csv"
	"fmt"
	"time"
)

func WriteCSVHeader(writer *csv.Writer) error {
	header := []string{
		"Generation",
		"Started",
		"Duration (s)",

		"Selection",
		"Replacement",
		"Candidates",
		"Replaced",

		"Fitness (Mean)", "Fitness (Min)", "Fitness (25th)", "Fitness (Median)", "Fitness (75th)", "Fitness (Max)", "Fitness (StdDev)",
		"Candidate Fitness (Mean)", "Candidate Fitness (Min)", "Candidate Fitness (Max)", "Candidate Fitness (StdDev)",
	}

	if err := writer.Write(header); err != nil {
		return err
	} else {
		writer.Flush()
		return writer.Error()
	}
}

func WriteCSVRow(writer *csv.Writer, generation int, started, finished time.Time, params Params, candidates int, replaced int, population Stats, batch Stats) error {
	row := []string{
		fmt.Sprintf("%d", generation),
		started.Format(time.RFC3339),
		fmt.Sprintf("%0.3f", finished.Sub(started).Seconds()),

		string(params.Selection),
		string(params.Replacement),
		fmt.Sprintf("%d", candidates),
		fmt.Sprintf("%d", replaced),

		fmt.Sprintf("%0.6f", population.Mean), fmt.Sprintf("%0.6f", population.Min), fmt.Sprintf("%0.6f", population.P25), fmt.Sprintf("%0.6f", population.Median), fmt.Sprintf("%0.6f", population.P75), fmt.Sprintf("%0.6f", population.Max), fmt.Sprintf("%0.6f", population.StdDev),
		fmt.Sprintf("%0.6f", batch.Mean), fmt.Sprintf("%0.6f", batch.Min), fmt.Sprintf("%0.6f", batch.Max), fmt.Sprintf("%0.6f", batch.StdDev),
	}

	if err := writer.Write(row); err != nil {
		return err
	} else {
		writer.Flush()
		return writer.Error()
	}
}
