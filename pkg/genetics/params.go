package genetics

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Params struct {
	Name string

	PopulationSize int
	Genes          int
	Candidates     int
	EliteCount     int
	Cycles         int

	Seed    uint64
	IntType bool
	Strict  bool

	Selection      SelectionKind
	Replacement    ReplacementKind
	TournamentRate int

	StorePath string
	MongoURL  string
}

func NewParamsFromEnv() Params {
	return Params{
		Name: Name(),

		PopulationSize: PopulationSize(),
		Genes:          Genes(),
		Candidates:     Candidates(),
		EliteCount:     EliteCount(),
		Cycles:         Cycles(),

		Seed:    uint64(Seed()),
		IntType: IntType() != 0,
		Strict:  Strict() != 0,

		Selection:      SelectionKind(Selection()),
		Replacement:    ReplacementKind(Replacement()),
		TournamentRate: ParseTournamentRate(TournamentRate()),

		StorePath: StorePath(),
		MongoURL:  MongoURL(),
	}
}

// Fields returns the strategy configuration message for these params.
func (p Params) Fields() Fields {
	return Fields{
		FieldRate:   strconv.Itoa(p.TournamentRate),
		FieldElite:  strconv.Itoa(p.EliteCount),
		FieldStrict: strconv.FormatBool(p.Strict),
	}
}

func (p Params) Write(w io.Writer, title string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendRows([]table.Row{
		{"EVOLVE_NAME", p.Name},
		{"EVOLVE_POPULATION_SIZE", fmt.Sprintf("%d", p.PopulationSize)},
		{"EVOLVE_GENES", fmt.Sprintf("%d", p.Genes)},
		{"EVOLVE_CANDIDATES", fmt.Sprintf("%d", p.Candidates)},
		{"EVOLVE_ELITE_COUNT", fmt.Sprintf("%d", p.EliteCount)},
		{"EVOLVE_CYCLES", fmt.Sprintf("%d", p.Cycles)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"EVOLVE_SEED", fmt.Sprintf("%d", p.Seed)},
		{"EVOLVE_INT_TYPE", fmt.Sprintf("%t", p.IntType)},
		{"EVOLVE_STRICT", fmt.Sprintf("%t", p.Strict)},
		{"EVOLVE_SELECTION", string(p.Selection)},
		{"EVOLVE_REPLACEMENT", string(p.Replacement)},
		{"EVOLVE_TOURNAMENT_RATE", fmt.Sprintf("%d", p.TournamentRate)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"EVOLVE_STORE_PATH", p.StorePath},
		{"MONGO_URL", p.MongoURL},
	})
	t.Render()
}

func envInt(name string, def func() int, dec func(v int) int) func() int {
	return func() int {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseInt(v, 10, 64); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else {
				value = int(v)
			}
		}
		return dec(value)
	}
}

func envString(name string, def func() string) func() string {
	return func() string {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			value = v
		}
		return value
	}
}

func atLeast(n int) func(v int) int {
	return func(v int) int {
		return max(v, n)
	}
}

var (
	Name      = envString("EVOLVE_NAME", func() string { return "default" })
	StorePath = envString("EVOLVE_STORE_PATH", func() string { return filepath.Join(os.TempDir(), "evolve.db") })
	MongoURL  = envString("MONGO_URL", func() string { return "" })
)

var (
	PopulationSize = envInt("EVOLVE_POPULATION_SIZE", func() int { return 32 }, atLeast(1))
	Genes          = envInt("EVOLVE_GENES", func() int { return 8 }, atLeast(1))
	Candidates     = envInt("EVOLVE_CANDIDATES", func() int { return 16 }, atLeast(0))
	EliteCount     = envInt("EVOLVE_ELITE_COUNT", func() int { return 2 }, atLeast(0))
	Cycles         = envInt("EVOLVE_CYCLES", func() int { return 10 }, atLeast(0))
	Seed           = envInt("EVOLVE_SEED", func() int { return 0 }, atLeast(0))
	IntType        = envInt("EVOLVE_INT_TYPE", func() int { return 0 }, atLeast(0))
	Strict         = envInt("EVOLVE_STRICT", func() int { return 0 }, atLeast(0))
)

var (
	Selection      = envString("EVOLVE_SELECTION", func() string { return string(SelectionRoulette) })
	Replacement    = envString("EVOLVE_REPLACEMENT", func() string { return string(ReplacementRandom) })
	TournamentRate = envString("EVOLVE_TOURNAMENT_RATE", func() string { return strconv.Itoa(DefaultTournamentRate) })
)
