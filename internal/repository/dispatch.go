package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) service.DispatchRepository {
	return &DispatchRepository{
		db: db,
	}
}

const dispatchColumns = `
			id,
			emergency_id,
			unit_id,
			hospital_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			eta_minutes,
			distance_km,
			status,
			dispatched_at,
			completed_at`

// Create сохраняет новую запись о выезде
func (r *DispatchRepository) Create(ctx context.Context, d *models.Dispatch) error {
	query := `
		INSERT INTO dispatches (id, emergency_id, unit_id, hospital_id, location, eta_minutes, distance_km, status, dispatched_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		d.ID,
		d.EmergencyID,
		d.UnitID,
		d.HospitalID,
		d.Longitude,
		d.Latitude,
		d.EtaMinutes,
		d.DistanceKm,
		d.Status,
		d.DispatchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dispatch: %w", err)
	}
	return nil
}

// UpdateStatus закрывает активный выезд
func (r *DispatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DispatchStatus, completedAt time.Time) error {
	query := `
		UPDATE dispatches SET
			status = $1,
			completed_at = $2
		WHERE id = $3 AND status = 'active';
	`
	cmdTag, err := r.db.Exec(ctx, query, status, completedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update dispatch status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("active dispatch %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// GetByID возвращает запись о выезде по UUID
func (r *DispatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dispatch, error) {
	query := `SELECT` + dispatchColumns + `
		FROM dispatches
		WHERE id = $1;
	`
	d, err := scanDispatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("dispatch with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dispatch by id: %w", err)
	}
	return d, nil
}

// List возвращает историю выездов с пагинацией, новые первыми
func (r *DispatchRepository) List(ctx context.Context, page, pageSize int) ([]*models.Dispatch, error) {
	offset := (page - 1) * pageSize

	query := `SELECT` + dispatchColumns + `
		FROM dispatches
		ORDER BY dispatched_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	defer rows.Close()

	dispatches := make([]*models.Dispatch, 0)
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return dispatches, nil
}

func scanDispatch(row pgx.Row) (*models.Dispatch, error) {
	d := &models.Dispatch{}
	err := row.Scan(
		&d.ID,
		&d.EmergencyID,
		&d.UnitID,
		&d.HospitalID,
		&d.Latitude,
		&d.Longitude,
		&d.EtaMinutes,
		&d.DistanceKm,
		&d.Status,
		&d.DispatchedAt,
		&d.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}
