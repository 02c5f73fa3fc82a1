package repository

import (
	"context"
	"time"

	"salon-broker/internal/domain/servicerequest"
	"salon-broker/internal/infra"
	"salon-broker/internal/infra/repository/converter"
	sqlc "salon-broker/internal/infra/sqlc/generated"
	"salon-broker/internal/pkg/pgconv"
)

type ServiceRequestQueries interface {
	CreateServiceRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceRequestParams) (int64, error)
	GetServiceRequest(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ServiceRequests, error)
	GetServiceRequestForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ServiceRequests, error)
	UpdateServiceRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceRequestStatusParams) (int64, error)
	UpdateServiceRequestPreferredDates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceRequestPreferredDatesParams) (int64, error)
}

type ServiceRequestRepository struct {
	queries ServiceRequestQueries
	db      sqlc.DBTX
}

func NewServiceRequestRepository(queries ServiceRequestQueries, db sqlc.DBTX) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req *servicerequest.ServiceRequest) (int64, error) {
	id, err := r.queries.CreateServiceRequest(ctx, r.db, converter.ServiceRequestToCreateParams(req))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create service request", err)
	}
	return id, nil
}

func (r *ServiceRequestRepository) FindByID(ctx context.Context, id int64) (*servicerequest.ServiceRequest, error) {
	row, err := r.queries.GetServiceRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service request", err)
	}
	return converter.ServiceRequestToDomain(row), nil
}

func (r *ServiceRequestRepository) FindByIDForUpdate(ctx context.Context, id int64) (*servicerequest.ServiceRequest, error) {
	row, err := r.queries.GetServiceRequestForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock service request", err)
	}
	return converter.ServiceRequestToDomain(row), nil
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id int64, status servicerequest.Status, now time.Time) error {
	rows, err := r.queries.UpdateServiceRequestStatus(ctx, r.db, sqlc.UpdateServiceRequestStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update service request status", err)
	}
	if rows == 0 {
		return infra.NotFound("service request not found")
	}
	return nil
}

func (r *ServiceRequestRepository) UpdatePreferredDates(ctx context.Context, id int64, preferredDates string, now time.Time) error {
	rows, err := r.queries.UpdateServiceRequestPreferredDates(ctx, r.db, sqlc.UpdateServiceRequestPreferredDatesParams{
		ID:             id,
		PreferredDates: preferredDates,
		UpdatedAt:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update preferred dates", err)
	}
	if rows == 0 {
		return infra.NotFound("service request not found")
	}
	return nil
}
