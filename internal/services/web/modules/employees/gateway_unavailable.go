package employees

import (
	"context"

	"github.com/louisbranch/staffbook/internal/directory"
	apperrors "github.com/louisbranch/staffbook/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListRecords(context.Context) ([]directory.Record, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.users_unavailable", "users service is not configured")
}

func (unavailableGateway) CreateRecord(context.Context, directory.Record) (directory.CreateResult, error) {
	return directory.CreateResult{}, apperrors.EK(apperrors.KindUnavailable, "error.users_unavailable", "users service is not configured")
}

func (unavailableGateway) DeleteRecord(context.Context, string) error {
	return apperrors.EK(apperrors.KindUnavailable, "error.users_unavailable", "users service is not configured")
}
