package solvers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/danmuck/bitsctl/internal/protocol"
)

// LastDay is the last puzzle day of an event.
const LastDay = 25

var (
	ErrSolverExists    = errors.New("solver already exists")
	ErrSolverNil       = errors.New("solver is nil")
	ErrInvalidMetadata = errors.New("invalid solver metadata")
	ErrNotSolved       = errors.New("day not yet solved")
)

// Registry stores solvers by day.
type Registry struct {
	items map[int]Solver
}

// NewRegistry creates an empty solver registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[int]Solver)}
}

// Default returns a registry holding every built-in solver, with decoders
// bounded by limits.
func Default(limits protocol.Limits) *Registry {
	r := NewRegistry()
	if err := r.Register(NewPacketDecoder(limits)); err != nil {
		panic("solvers: default registry: " + err.Error())
	}
	return r
}

// ValidateMetadata checks the day range and display name.
func ValidateMetadata(meta Metadata) error {
	if meta.Day < 1 || meta.Day > LastDay {
		return fmt.Errorf("%w: day %d outside 1..%d", ErrInvalidMetadata, meta.Day, LastDay)
	}
	if strings.TrimSpace(meta.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMetadata)
	}
	return nil
}

// Register adds a solver to the registry.
func (r *Registry) Register(s Solver) error {
	if s == nil {
		return ErrSolverNil
	}

	meta := s.Metadata()
	if err := ValidateMetadata(meta); err != nil {
		return err
	}

	if _, ok := r.items[meta.Day]; ok {
		return ErrSolverExists
	}
	r.items[meta.Day] = s
	return nil
}

// Resolve returns the solver for day.
func (r *Registry) Resolve(day int) (Solver, error) {
	s, ok := r.items[day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrNotSolved, day)
	}
	return s, nil
}

// ListMetadata returns metadata ordered by day.
func (r *Registry) ListMetadata() []Metadata {
	list := make([]Metadata, 0, len(r.items))
	for _, s := range r.items {
		list = append(list, s.Metadata())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Day < list[j].Day
	})
	return list
}
