package matchup

import (
	"fmt"
	"sort"
	"sync"
)

// Result is the outcome of one battle in a series. An empty Winner means
// the battle was drawn.
type Result struct {
	Seed    uint64
	Winner  string
	Turns   int
	Actions int
}

// Record is one seat's running score. Wins score three points and draws
// one, so the table orders sensibly even when draws are common.
type Record struct {
	Name   string
	Wins   int
	Losses int
	Draws  int
}

// Points returns the seat's standings points.
func (r Record) Points() int {
	return r.Wins*3 + r.Draws
}

// Standings accumulates battle results for a fixed set of seats.
type Standings struct {
	mu      sync.Mutex
	seats   map[string]*Record
	order   []string
	results []Result
}

// NewStandings creates standings for the named seats.
func NewStandings(seats ...string) (*Standings, error) {
	s := &Standings{seats: make(map[string]*Record, len(seats))}
	for _, name := range seats {
		if _, exists := s.seats[name]; exists {
			return nil, fmt.Errorf("duplicate seat %q", name)
		}
		s.seats[name] = &Record{Name: name}
		s.order = append(s.order, name)
	}
	return s, nil
}

// Record scores one result. A result with an unknown winner is rejected
// without changing the table.
func (s *Standings) Record(result Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.Winner == "" {
		for _, record := range s.seats {
			record.Draws++
		}
		s.results = append(s.results, result)
		return nil
	}
	winner, ok := s.seats[result.Winner]
	if !ok {
		return fmt.Errorf("unknown seat %q", result.Winner)
	}
	winner.Wins++
	for name, record := range s.seats {
		if name != result.Winner {
			record.Losses++
		}
	}
	s.results = append(s.results, result)
	return nil
}

// Results returns every recorded result in order.
func (s *Standings) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Result(nil), s.results...)
}

// Table returns the seats ordered by points, ties broken by seat order.
func (s *Standings) Table() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := make([]Record, 0, len(s.order))
	for _, name := range s.order {
		table = append(table, *s.seats[name])
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Points() > table[j].Points()
	})
	return table
}

// Played returns the number of recorded battles.
func (s *Standings) Played() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}
