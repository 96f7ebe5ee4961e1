package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

func (r *Repository) ClientStatus(
	ctx context.Context, clientID uuid.UUID, dimension entity.StatusDimension, gateway string) (entity.ClientStatus, error) {
	sqlQuery :=
		`SELECT client_id, dimension, gateway, status, updated_by, updated_at
		FROM client_statuses
		WHERE client_id = $1 AND dimension = $2 AND gateway = $3`

	var (
		status    entity.ClientStatus
		updatedBy *uuid.UUID
	)

	err := r.db.QueryRow(ctx, sqlQuery, clientID, dimension, gateway).Scan(
		&status.ClientID,
		&status.Dimension,
		&status.Gateway,
		&status.Status,
		&updatedBy,
		&status.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ClientStatus{}, entity.ErrNotFound
		}

		return entity.ClientStatus{}, err
	}

	if updatedBy != nil {
		status.UpdatedBy = *updatedBy
	}

	return status, nil
}

func (r *Repository) UpsertClientStatus(ctx context.Context, status entity.ClientStatus) error {
	sqlQuery :=
		`INSERT INTO client_statuses (client_id, dimension, gateway, status, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (client_id, dimension, gateway)
		DO UPDATE SET status = $4, updated_by = $5, updated_at = $6`

	_, err := r.db.Exec(ctx, sqlQuery,
		status.ClientID,
		status.Dimension,
		status.Gateway,
		status.Status,
		nullableUUID(status.UpdatedBy),
		status.UpdatedAt,
	)

	if err != nil {
		return err
	}

	return nil
}
