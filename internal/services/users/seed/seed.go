// Package seed loads initial employee records from a YAML file into an empty
// users store.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/users/storage"
	"gopkg.in/yaml.v3"
)

// File is the seed document layout:
//
//	users:
//	  - id: ann
//	    fullName: Ann Lee
//	    email: ann@example.com
type File struct {
	Users []directory.Record `yaml:"users"`
}

// Load reads and decodes a seed file.
func Load(path string) ([]directory.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses seed YAML. Unknown keys are rejected.
func Decode(r io.Reader) ([]directory.Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file File
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return []directory.Record{}, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return file.Users, nil
}

// Apply inserts records into store when it is empty, assigning ids from
// newID to records without one. The records are stored in one transaction,
// so a failed seed leaves the store empty and the next start retries. It
// returns how many records were inserted.
func Apply(ctx context.Context, store storage.UserStore, records []directory.Record, newID func() (string, error)) (int, error) {
	n, err := store.CountUsers(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 || len(records) == 0 {
		return 0, nil
	}
	batch := make([]directory.Record, 0, len(records))
	for _, record := range records {
		if strings.TrimSpace(record.ID) == "" {
			if newID == nil {
				return 0, fmt.Errorf("seed record %q has no id", record.FullName)
			}
			if record.ID, err = newID(); err != nil {
				return 0, fmt.Errorf("generate seed id: %w", err)
			}
		}
		batch = append(batch, record)
	}
	if err := store.SeedUsers(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}
