// Package storage persists finished runs for the CLI: one directory
// per run holding metadata.json and trajectory.csv. The simulation
// core never touches this package.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/tfunk1030/Test-yardage-sub000/internal/physics"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the summary record written next to each trajectory.
type RunMetadata struct {
	ID        string                          `json:"id"`
	Timestamp time.Time                       `json:"timestamp"`
	Club      string                          `json:"club"`
	SkillPct  float64                         `json:"skill_pct"`
	Launch    physics.LaunchConditions        `json:"launch"`
	Env       physics.EnvironmentalConditions `json:"environment"`
	Result    physics.SimulationResult        `json:"result"`
}

// Save writes one run to disk and returns its ID.
func (s *Store) Save(club string, skillPct float64, launch physics.LaunchConditions, env physics.EnvironmentalConditions, result physics.SimulationResult, trajectory []physics.TrajectoryPoint) (string, error) {
	runID := fmt.Sprintf("%s_%d", club, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Club:      club,
		SkillPct:  skillPct,
		Launch:    launch,
		Env:       env,
		Result:    result,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z", "vx", "vy", "vz"}); err != nil {
		return "", err
	}
	for _, p := range trajectory {
		row := []string{
			formatFloat(p.Time),
			formatFloat(p.Position.X), formatFloat(p.Position.Y), formatFloat(p.Position.Z),
			formatFloat(p.Velocity.X), formatFloat(p.Velocity.Y), formatFloat(p.Velocity.Z),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()

	return runID, w.Error()
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadMetadata reads one run's summary record.
func (s *Store) LoadMetadata(runID string) (RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return RunMetadata{}, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return RunMetadata{}, fmt.Errorf("storage: corrupt metadata for %s: %w", runID, err)
	}
	return meta, nil
}

// LoadTrajectory reads a stored trajectory back.
func (s *Store) LoadTrajectory(runID string) ([]physics.TrajectoryPoint, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("storage: run %s has no trajectory rows", runID)
	}

	trajectory := make([]physics.TrajectoryPoint, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 7 {
			return nil, fmt.Errorf("storage: run %s has a malformed trajectory row", runID)
		}
		vals := make([]float64, 7)
		for i, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s: %w", runID, err)
			}
			vals[i] = v
		}
		trajectory = append(trajectory, physics.TrajectoryPoint{
			Time:     vals[0],
			Position: physics.Vec3{X: vals[1], Y: vals[2], Z: vals[3]},
			Velocity: physics.Vec3{X: vals[4], Y: vals[5], Z: vals[6]},
		})
	}
	return trajectory, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
