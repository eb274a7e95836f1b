// Package projectstore loads and saves the project document on disk.
//
// The Project is the entire persisted unit: one JSON file, replaced
// atomically on save and swapped atomically in memory on load. A failed
// load or migration leaves the caller's current Project untouched.
package projectstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fenwick/namesmith/internal/log"
	"github.com/fenwick/namesmith/internal/naming"
	"github.com/fenwick/namesmith/internal/templates"
)

// Store reads and writes the project document at a fixed path.
type Store struct {
	path   string
	tracer trace.Tracer
}

// New creates a Store for the given project file path.
func New(path string, tracer trace.Tracer) *Store {
	return &Store{path: path, tracer: tracer}
}

// Path returns the project file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the project file and migrates it to the current schema.
// Pure with respect to in-memory state: the caller swaps its Project only
// on success. A missing file is not an error; the embedded starter project
// is materialized in its place.
func (s *Store) Load(ctx context.Context) (*naming.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.load",
		trace.WithAttributes(attribute.String("path", s.path)))
	defer span.End()
	_ = ctx

	raw, err := os.ReadFile(s.path) //nolint:gosec // G304: user's own project file
	if os.IsNotExist(err) {
		log.Info(log.CatProject, "No project file, starting from template", "path", s.path)
		raw = templates.StarterProject()
		if writeErr := s.write(raw); writeErr != nil {
			// Not fatal - the in-memory project still works, saving later
			// will retry the write.
			log.Warn(log.CatProject, "Could not materialize starter project", "error", writeErr)
		}
	} else if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}

	project, err := naming.Migrate(raw)
	if err != nil {
		log.ErrorErr(log.CatMigrate, "Migration failed", err, "path", s.path)
		return nil, err
	}

	log.Info(log.CatProject, "Project loaded",
		"path", s.path,
		"elements", project.Elements.Len(),
		"nameSets", project.NameSets.Len(),
	)
	return project, nil
}

// Save writes the project in the current schema. The document is written
// to a temp file in the same directory and renamed over the target, so a
// crash mid-write never leaves a truncated project behind.
func (s *Store) Save(ctx context.Context, project *naming.Project) error {
	ctx, span := s.tracer.Start(ctx, "project.save",
		trace.WithAttributes(attribute.String("path", s.path)))
	defer span.End()
	_ = ctx

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling project: %w", err)
	}

	if err := s.write(data); err != nil {
		log.ErrorErr(log.CatProject, "Save failed", err, "path", s.path)
		return err
	}

	log.Debug(log.CatProject, "Project saved", "path", s.path, "bytes", len(data))
	return nil
}

func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".project-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing project file: %w", err)
	}
	return nil
}
