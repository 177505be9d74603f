// Package manifest records which plot files a run produced, so viewer
// tooling can map display titles to image paths without globbing the
// output directory.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/openamr/micplot/internal/utils"
)

// FileName is the manifest file written inside the output directory.
const FileName = "manifest.yaml"

// Entry describes one rendered chart.
type Entry struct {
	Organism string `yaml:"organism"`
	Drug     string `yaml:"drug"`
	Title    string `yaml:"title"`
	File     string `yaml:"file"`
}

// Manifest describes one run of the tool.
type Manifest struct {
	RunID       string    `yaml:"run_id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Input       string    `yaml:"input"`
	Plots       []Entry   `yaml:"plots"`
}

// New creates a manifest for a run over the given input table.
func New(input string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Input:       input,
	}
}

// Add records one rendered chart. file should be the path relative to the
// output directory.
func (m *Manifest) Add(organism, drug, title, file string) {
	m.Plots = append(m.Plots, Entry{Organism: organism, Drug: drug, Title: title, File: file})
}

// Save writes the manifest into dir.
func (m *Manifest) Save(dir string) error {
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := utils.SafeWriteFile(filepath.Join(dir, FileName), b); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads the manifest from dir.
func Load(dir string) (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
