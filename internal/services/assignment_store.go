package services

import (
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/ports"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

type AddAssignmentRequest struct {
	Driver       string
	Route        string
	LicenseClass domain.LicenseClass
	VehicleType  domain.VehicleType
	CargoType    domain.CargoType
}

// AssignmentStore owns the ordered dispatch board.
//
// List order is the operator-curated dispatch priority: it changes only by
// appending new assignments or by an explicit reorder, never by sorting.
// Every operation either applies completely or leaves the board untouched.
type AssignmentStore struct {
	mu          sync.Mutex
	assignments []domain.Assignment
	hints       ports.HintSource
	nextSeq     int
}

// Create a store holding the seed assignments in the given order.
// Seed records carry no license class, so only field presence, enum
// membership and ID uniqueness are checked.
func NewAssignmentStore(seed []domain.Assignment, hints ports.HintSource) (*AssignmentStore, error) {
	if hints == nil {
		return nil, errors.New("new assignment store: hint source is nil")
	}

	s := &AssignmentStore{
		assignments: make([]domain.Assignment, 0, len(seed)),
		hints:       hints,
		nextSeq:     1,
	}

	seen := make(map[string]struct{}, len(seed))
	for i, a := range seed {
		if err := validateSeed(a); err != nil {
			return nil, fmt.Errorf("new assignment store: seed #%d: %w", i+1, err)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("new assignment store: seed #%d: %w", i+1,
				&domain.ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate id %q", a.ID)})
		}
		seen[a.ID] = struct{}{}

		// Numeric seed IDs push the generator forward so generated IDs never collide.
		if n, err := strconv.Atoi(a.ID); err == nil && n >= s.nextSeq {
			s.nextSeq = n + 1
		}
		s.assignments = append(s.assignments, a)
	}

	return s, nil
}

func validateSeed(a domain.Assignment) error {
	switch {
	case strings.TrimSpace(a.ID) == "":
		return &domain.ValidationError{Field: "id", Reason: "must not be empty"}
	case strings.TrimSpace(a.Driver) == "":
		return &domain.ValidationError{Field: "driver", Reason: "must not be empty"}
	case strings.TrimSpace(a.Route) == "":
		return &domain.ValidationError{Field: "route", Reason: "must not be empty"}
	case !a.VehicleType.Valid():
		return &domain.ValidationError{Field: "vehicle_type", Reason: fmt.Sprintf("unknown vehicle type %q", a.VehicleType)}
	case !a.CargoType.Valid():
		return &domain.ValidationError{Field: "cargo_type", Reason: fmt.Sprintf("unknown cargo type %q", a.CargoType)}
	}
	return nil
}

func validateAdd(req AddAssignmentRequest) error {
	switch {
	case req.Driver == "":
		return &domain.ValidationError{Field: "driver", Reason: "must not be empty"}
	case req.Route == "":
		return &domain.ValidationError{Field: "route", Reason: "must not be empty"}
	case !req.LicenseClass.Valid():
		return &domain.ValidationError{Field: "license_class", Reason: fmt.Sprintf("unknown license class %q", req.LicenseClass)}
	case !req.VehicleType.Valid():
		return &domain.ValidationError{Field: "vehicle_type", Reason: fmt.Sprintf("unknown vehicle type %q", req.VehicleType)}
	case !req.CargoType.Valid():
		return &domain.ValidationError{Field: "cargo_type", Reason: fmt.Sprintf("unknown cargo type %q", req.CargoType)}
	case !req.LicenseClass.Permits(req.VehicleType):
		return &domain.ValidationError{
			Field:  "vehicle_type",
			Reason: fmt.Sprintf("%s license does not permit %s", req.LicenseClass, req.VehicleType),
		}
	}
	return nil
}

// Validate and append a new assignment to the end of the board.
func (s *AssignmentStore) AddAssignment(req AddAssignmentRequest) (domain.Assignment, error) {
	req.Driver = strings.TrimSpace(req.Driver)
	req.Route = strings.TrimSpace(req.Route)

	if err := validateAdd(req); err != nil {
		return domain.Assignment{}, fmt.Errorf("add assignment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.Assignment{
		ID:          s.generateIDLocked(),
		Driver:      req.Driver,
		Route:       req.Route,
		VehicleType: req.VehicleType,
		CargoType:   req.CargoType,
	}
	s.assignments = append(s.assignments, a)

	return a, nil
}

// Move movedID into the slot currently held by targetID and return the
// resulting board, read under the same lock as the move.
//
// Elements between the two positions shift by one to close the gap; this is a
// single-element move, not a swap. Moving an assignment onto itself is a no-op.
func (s *AssignmentStore) ReorderAssignment(movedID, targetID string) ([]domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.indexLocked(movedID)
	if from < 0 {
		return nil, fmt.Errorf("reorder assignment: moved: %w", &domain.NotFoundError{ID: movedID})
	}
	to := s.indexLocked(targetID)
	if to < 0 {
		return nil, fmt.Errorf("reorder assignment: target: %w", &domain.NotFoundError{ID: targetID})
	}

	if from != to {
		moved := s.assignments[from]
		s.assignments = slices.Delete(s.assignments, from, from+1)
		s.assignments = slices.Insert(s.assignments, to, moved)
	}

	return slices.Clone(s.assignments), nil
}

// Attach a freshly drawn optimization hint to the assignment.
func (s *AssignmentStore) AnnotateWithHint(id string) (domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Assignment{}, fmt.Errorf("annotate with hint: %w", &domain.NotFoundError{ID: id})
	}

	s.assignments[i].AIHint = s.hints()
	return s.assignments[i], nil
}

// Return a snapshot of the board in dispatch order.
func (s *AssignmentStore) ListAssignments() []domain.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.assignments)
}

func (s *AssignmentStore) FindAssignment(id string) (domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Assignment{}, fmt.Errorf("find assignment: %w", &domain.NotFoundError{ID: id})
	}
	return s.assignments[i], nil
}

func (s *AssignmentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.assignments)
}

func (s *AssignmentStore) indexLocked(id string) int {
	return slices.IndexFunc(s.assignments, func(a domain.Assignment) bool { return a.ID == id })
}

// IDs are decimal sequence numbers; any value already taken by a seed is skipped.
func (s *AssignmentStore) generateIDLocked() string {
	for {
		id := strconv.Itoa(s.nextSeq)
		s.nextSeq++
		if s.indexLocked(id) < 0 {
			return id
		}
	}
}
