package employees

import (
	"context"
	"errors"
	"net/http"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/users/client"
	apperrors "github.com/louisbranch/staffbook/internal/services/web/platform/errors"
)

// NewRESTGateway adapts a users client so its failures carry web error kinds.
func NewRESTGateway(c *client.Client) directory.Gateway {
	if c == nil {
		return unavailableGateway{}
	}
	return restGateway{client: c}
}

type restGateway struct {
	client *client.Client
}

func (g restGateway) ListRecords(ctx context.Context) ([]directory.Record, error) {
	records, err := g.client.ListRecords(ctx)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	return records, nil
}

func (g restGateway) CreateRecord(ctx context.Context, record directory.Record) (directory.CreateResult, error) {
	result, err := g.client.CreateRecord(ctx, record)
	if err != nil {
		return directory.CreateResult{}, mapGatewayError(err)
	}
	return result, nil
}

func (g restGateway) DeleteRecord(ctx context.Context, id string) error {
	return mapGatewayError(g.client.DeleteRecord(ctx, id))
}

func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, directory.ErrUnexpectedResponseShape) {
		return apperrors.Wrap(apperrors.KindBadGateway, "error.unexpected_response", err)
	}
	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) {
		return apperrors.Wrap(apperrors.KindUnavailable, "error.users_unavailable", err)
	}
	switch statusErr.StatusCode {
	case http.StatusNotFound:
		return apperrors.Wrap(apperrors.KindNotFound, "error.employee_not_found", err)
	case http.StatusConflict:
		return apperrors.Wrap(apperrors.KindConflict, "error.duplicate_id", err)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.users_rejected", err)
	case http.StatusServiceUnavailable:
		return apperrors.Wrap(apperrors.KindUnavailable, "error.users_unavailable", err)
	default:
		return apperrors.Wrap(apperrors.KindBadGateway, "error.users_rejected", err)
	}
}
