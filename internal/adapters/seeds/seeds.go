package seeds

import (
	"bytes"
	"dispatch-board-service/internal/adapters/hints"
	"dispatch-board-service/internal/domain"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Initial board contents and hint catalog.
type Seed struct {
	Assignments []domain.Assignment
	Hints       []string
}

type assignmentSeed struct {
	ID          string `yaml:"id"`
	Driver      string `yaml:"driver"`
	Route       string `yaml:"route"`
	VehicleType string `yaml:"vehicle_type"`
	CargoType   string `yaml:"cargo_type"`
}

type seedFile struct {
	Assignments []assignmentSeed `yaml:"assignments"`
	Hints       []string         `yaml:"hints"`
}

// Default returns the built-in demo board.
func Default() Seed {
	return Seed{
		Assignments: []domain.Assignment{
			{ID: "1", Driver: "佐藤一郎", Route: "埼玉駅→東京駅", VehicleType: domain.SmallTruck, CargoType: domain.CargoDry},
			{ID: "2", Driver: "山田花子", Route: "東京駅→千葉駅", VehicleType: domain.MidTruck, CargoType: domain.CargoChilled},
			{ID: "3", Driver: "田中太郎", Route: "川口駅→横浜駅", VehicleType: domain.LargeTruck, CargoType: domain.CargoDry},
		},
		Hints: slices.Clone(hints.DefaultCatalog),
	}
}

// Load reads a YAML seed file. An empty path yields Default(). Sections left
// out of the file fall back to their defaults; unknown keys are rejected.
func Load(path string) (Seed, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	s, err := Parse(b)
	if err != nil {
		return Seed{}, fmt.Errorf("load seed: %q: %w", path, err)
	}
	return s, nil
}

func Parse(b []byte) (Seed, error) {
	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}

	s := Default()
	if f.Assignments != nil {
		s.Assignments = make([]domain.Assignment, 0, len(f.Assignments))
		for _, a := range f.Assignments {
			s.Assignments = append(s.Assignments, domain.Assignment{
				ID:          strings.TrimSpace(a.ID),
				Driver:      strings.TrimSpace(a.Driver),
				Route:       strings.TrimSpace(a.Route),
				VehicleType: domain.VehicleType(strings.TrimSpace(a.VehicleType)),
				CargoType:   domain.CargoType(strings.TrimSpace(a.CargoType)),
			})
		}
	}
	if f.Hints != nil {
		s.Hints = f.Hints
	}

	return s, nil
}
