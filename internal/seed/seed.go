// Package seed loads the sample events installed into the catalog at startup.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Shivanand-hulikatti/event-registry/internal/model"
)

//go:embed events.toml
var defaultEvents []byte

// File is the TOML layout of a seed file.
type File struct {
	Events []Event `toml:"events"`
}

// Event is one seeded event.
type Event struct {
	Name     string `toml:"name"`
	Club     string `toml:"club"`
	Date     string `toml:"date"`
	Type     string `toml:"type"`
	Capacity int    `toml:"capacity"`
}

// Creator is the subset of the event catalog used for seeding.
type Creator interface {
	CreateEvent(ctx context.Context, req model.CreateEventRequest) (model.Event, error)
}

// Default returns the embedded sample events.
func Default() (File, error) {
	return Parse(defaultEvents)
}

// Parse decodes a seed file. Unknown keys are rejected so typos surface early.
func Parse(data []byte) (File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse seed: %w", err)
	}
	return f, nil
}

// Load reads the seed file at path, or the embedded default when path is empty.
func Load(path string) (File, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Apply creates every event of f through c, in file order.
func Apply(ctx context.Context, c Creator, f File) ([]model.Event, error) {
	created := make([]model.Event, 0, len(f.Events))
	for i, e := range f.Events {
		ev, err := c.CreateEvent(ctx, model.CreateEventRequest{
			Name:     e.Name,
			Club:     e.Club,
			Date:     e.Date,
			Type:     e.Type,
			Capacity: e.Capacity,
		})
		if err != nil {
			return created, fmt.Errorf("seed event %d (%q): %w", i, e.Name, err)
		}
		created = append(created, ev)
	}
	return created, nil
}
