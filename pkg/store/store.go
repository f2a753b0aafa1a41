package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/grexie/evolve/pkg/genetics"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var ErrNotFound = errors.New("population not found")

// Store keeps population snapshots in LevelDB, one record per member under
// <name>-<generation>-<index>.
type Store struct {
	db *leveldb.DB
}

func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func generationPrefix(name string, generation int) []byte {
	return fmt.Appendf([]byte{}, "%s-%08d-", name, generation)
}

func memberKey(name string, generation int, index int) []byte {
	return fmt.Appendf(generationPrefix(name, generation), "%06d", index)
}

// SavePopulation replaces the snapshot of name at generation. Only
// *genetics.Chromosome members can be stored.
func (s *Store) SavePopulation(name string, generation int, population *genetics.Population) error {
	batch := new(leveldb.Batch)

	iter := s.db.NewIterator(util.BytesPrefix(generationPrefix(name, generation)), nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}

	for i := 0; i < population.Len(); i++ {
		c, ok := population.At(i).(*genetics.Chromosome)
		if !ok {
			return fmt.Errorf("cannot store %T at index %d: %w", population.At(i), i, genetics.ErrInvalidArgument)
		}
		value, err := json.Marshal(c)
		if err != nil {
			return err
		}
		batch.Put(memberKey(name, generation, i), value)
	}

	return s.db.Write(batch, nil)
}

func (s *Store) LoadPopulation(name string, generation int) (*genetics.Population, error) {
	members := []genetics.Individual{}

	iter := s.db.NewIterator(util.BytesPrefix(generationPrefix(name, generation)), nil)
	defer iter.Release()
	for iter.Next() {
		var c genetics.Chromosome
		if err := json.Unmarshal(iter.Value(), &c); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", iter.Key(), err)
		}
		members = append(members, &c)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return nil, fmt.Errorf("%s generation %d: %w", name, generation, ErrNotFound)
	}
	return genetics.NewPopulation(members...), nil
}

// LatestGeneration returns the highest stored generation of name.
func (s *Store) LatestGeneration(name string) (int, bool, error) {
	prefix := name + "-"
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	latest, found := 0, false
	for iter.Next() {
		// names sharing the prefix, such as <name>-other, are skipped
		var generation, index int
		rest := strings.TrimPrefix(string(iter.Key()), prefix)
		if len(rest) != 15 {
			continue
		}
		if _, err := fmt.Sscanf(rest, "%08d-%06d", &generation, &index); err != nil {
			continue
		}
		if !found || generation > latest {
			latest, found = generation, true
		}
	}
	return latest, found, iter.Error()
}

func (s *Store) DeletePopulation(name string, generation int) error {
	batch := new(leveldb.Batch)
	iter := s.db.NewIterator(util.BytesPrefix(generationPrefix(name, generation)), nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}
	return s.db.Write(batch, nil)
}
