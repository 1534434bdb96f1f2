package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Gateway is the remote persistence collaborator.
type Gateway interface {
	ListRecords(ctx context.Context) ([]Record, error)
	CreateRecord(ctx context.Context, record Record) (CreateResult, error)
	DeleteRecord(ctx context.Context, id string) error
}

// CreateResponseMode selects how a create response body is applied.
type CreateResponseMode string

const (
	// CreateResponseRecord treats the response as the created record and
	// appends it to the store.
	CreateResponseRecord CreateResponseMode = "record"
	// CreateResponseList treats the response as the full record set and
	// replaces the store with it.
	CreateResponseList CreateResponseMode = "list"
)

// ParseCreateResponseMode resolves a configured mode; empty means CreateResponseRecord.
func ParseCreateResponseMode(raw string) (CreateResponseMode, error) {
	switch CreateResponseMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CreateResponseRecord:
		return CreateResponseRecord, nil
	case CreateResponseList:
		return CreateResponseList, nil
	default:
		return "", fmt.Errorf("unknown create response mode %q", raw)
	}
}

// CreateResult is a decoded create response: either one record or a list.
type CreateResult struct {
	Record *Record
	List   []Record
}

// IsList reports whether the response body was a JSON array.
func (r CreateResult) IsList() bool {
	return r.Record == nil
}

// DecodeCreateResult decodes a create response body by its JSON shape.
func DecodeCreateResult(body []byte) (CreateResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return CreateResult{}, fmt.Errorf("%w: empty body", ErrUnexpectedResponseShape)
	}
	switch trimmed[0] {
	case '[':
		var list []Record
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return CreateResult{}, fmt.Errorf("%w: %v", ErrUnexpectedResponseShape, err)
		}
		if list == nil {
			list = []Record{}
		}
		return CreateResult{List: list}, nil
	case '{':
		var record Record
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return CreateResult{}, fmt.Errorf("%w: %v", ErrUnexpectedResponseShape, err)
		}
		return CreateResult{Record: &record}, nil
	default:
		return CreateResult{}, fmt.Errorf("%w: body is neither object nor array", ErrUnexpectedResponseShape)
	}
}
