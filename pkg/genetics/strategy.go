package genetics

import (
	"fmt"
	"log"
	"strconv"
)

type SelectionKind string

const (
	SelectionRoulette   SelectionKind = "roulette"
	SelectionTournament SelectionKind = "tournament"
)

type ReplacementKind string

const (
	ReplacementRandom ReplacementKind = "random"
	ReplacementWorst  ReplacementKind = "worst"
)

// Fields is a field based strategy configuration message.
type Fields map[string]string

const (
	FieldRate   = "rate"
	FieldElite  = "elite"
	FieldStrict = "strict"
)

func NewSelector(kind SelectionKind, random Random, fields Fields) (Selector, error) {
	switch kind {
	case SelectionRoulette:
		return NewRouletteWheel(random), nil
	case SelectionTournament:
		rate := DefaultTournamentRate
		if v, ok := fields[FieldRate]; ok {
			rate = ParseTournamentRate(v)
		}
		return NewTournament(random, rate), nil
	default:
		return nil, fmt.Errorf("unknown selection strategy %q: %w", kind, ErrInvalidArgument)
	}
}

func NewReplacer(kind ReplacementKind, random Random, fields Fields) (Replacer, error) {
	switch kind {
	case ReplacementRandom:
		return NewRandomReplacement(random), nil
	case ReplacementWorst:
		r := &WorstReplacement{}
		if v, ok := fields[FieldElite]; ok {
			if elite, err := strconv.Atoi(v); err != nil || elite < 0 {
				log.Printf("failed to parse worst replacement elite count %q, using 0", v)
			} else {
				r.EliteCount = elite
			}
		}
		if v, ok := fields[FieldStrict]; ok {
			if strict, err := strconv.ParseBool(v); err != nil {
				log.Printf("failed to parse worst replacement strict flag %q, using false", v)
			} else {
				r.Strict = strict
			}
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown replacement strategy %q: %w", kind, ErrInvalidArgument)
	}
}
