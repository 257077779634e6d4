package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrDuplicateID is returned when two records share an identifier.
	ErrDuplicateID = errors.New("catalog: duplicate game id")
	// ErrInvalidGame is returned when a record fails field validation.
	ErrInvalidGame = errors.New("catalog: invalid game")
)

var validate = validator.New()

// Store provides read-only views over a fixed collection of games.
// It is safe for concurrent use because nothing mutates it after NewStore returns.
type Store struct {
	games            []Game
	featuredInLatest bool
}

// Option configures a Store.
type Option func(*Store)

// WithFeaturedInLatest controls whether Latest considers featured games.
// By default featured games are left out since they already have their own slot.
func WithFeaturedInLatest(include bool) Option {
	return func(s *Store) {
		s.featuredInLatest = include
	}
}

// NewStore validates the given games and builds a store over a private copy of them.
func NewStore(games []Game, opts ...Option) (*Store, error) {
	seen := make(map[int]struct{}, len(games))
	for i, g := range games {
		if err := validate.Struct(g); err != nil {
			return nil, fmt.Errorf("%w: record %d (id %d): %v", ErrInvalidGame, i, g.ID, err)
		}
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	s := &Store{games: cloneGames(games)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Len returns the number of games in the store.
func (s *Store) Len() int { return len(s.games) }

// All returns every game in authoring order.
func (s *Store) All() []Game {
	return cloneGames(s.games)
}

// Featured returns the first game flagged as featured, or the first game when none is.
// The boolean is false only when the store is empty.
func (s *Store) Featured() (Game, bool) {
	for _, g := range s.games {
		if g.Featured {
			return g.clone(), true
		}
	}
	if len(s.games) == 0 {
		return Game{}, false
	}
	return s.games[0].clone(), true
}

// Latest returns up to limit games ordered by release date, most recent first.
// Games released on the same day keep their authoring order.
func (s *Store) Latest(limit int) []Game {
	if limit <= 0 {
		return []Game{}
	}
	eligible := make([]Game, 0, len(s.games))
	for _, g := range s.games {
		if g.Featured && !s.featuredInLatest {
			continue
		}
		eligible = append(eligible, g)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].ReleaseDate.After(eligible[j].ReleaseDate)
	})
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return cloneGames(eligible)
}

// ByID returns the first game with the given identifier.
func (s *Store) ByID(id int) (Game, bool) {
	for _, g := range s.games {
		if g.ID == id {
			return g.clone(), true
		}
	}
	return Game{}, false
}

// Lookup coerces raw to an identifier and returns the matching game.
// Input that does not start with a number never matches.
func (s *Store) Lookup(raw string) (Game, bool) {
	id, ok := ParseID(raw)
	if !ok {
		return Game{}, false
	}
	return s.ByID(id)
}

// ParseID reads a leading integer from raw, ignoring surrounding whitespace and
// anything after the digits ("12abc" is 12, "abc" is not a number).
func ParseID(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}
