package directory

import (
	"context"
	"fmt"
)

// fakeGateway implements Gateway for tests with configurable responses and
// recorded calls.
type fakeGateway struct {
	listRecords  []Record
	listErr      error
	createResult *CreateResult
	createErr    error
	deleteErr    error

	created []Record
	deleted []string
}

var _ Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListRecords(context.Context) ([]Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Record(nil), f.listRecords...), nil
}

func (f *fakeGateway) CreateRecord(_ context.Context, record Record) (CreateResult, error) {
	f.created = append(f.created, record)
	if f.createErr != nil {
		return CreateResult{}, f.createErr
	}
	if f.createResult != nil {
		return *f.createResult, nil
	}
	echo := record
	return CreateResult{Record: &echo}, nil
}

func (f *fakeGateway) DeleteRecord(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func sequenceIDs(ids ...string) func() (string, error) {
	next := 0
	return func() (string, error) {
		if next >= len(ids) {
			return "", fmt.Errorf("id sequence exhausted")
		}
		id := ids[next]
		next++
		return id, nil
	}
}

func sampleRecords() []Record {
	return []Record{
		{ID: "1", FullName: "Ann Lee", Email: "ann.lee@example.com"},
		{ID: "2", FullName: "Ann Kim", Email: "ann.kim@example.com"},
		{ID: "3", FullName: "Bob Lee", Email: "bob@example.com"},
	}
}

func names(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.FullName)
	}
	return out
}

func ids(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.ID)
	}
	return out
}
