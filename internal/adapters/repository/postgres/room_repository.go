package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/ports"
)

const uniqueViolation = pq.ErrorCode("23505")

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) ports.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

func (r *roomRepository) Save(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (id, created_at, is_locked, created_by)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, room.ID, room.CreatedAt, room.IsLocked, room.CreatedBy)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `
		SELECT id, created_at, is_locked, created_by
		FROM rooms
		WHERE id = $1
	`

	var room domain.Room
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&room.ID, &room.CreatedAt, &room.IsLocked, &room.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (r *roomRepository) SetLock(ctx context.Context, id string, locked bool) (*domain.Room, error) {
	query := `
		UPDATE rooms
		SET is_locked = $2
		WHERE id = $1
		RETURNING id, created_at, is_locked, created_by
	`

	var room domain.Room
	err := r.db.QueryRowContext(ctx, query, id, locked).Scan(
		&room.ID, &room.CreatedAt, &room.IsLocked, &room.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to update room lock: %w", err)
	}

	return &room, nil
}

func (r *roomRepository) Reset(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE room_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM suggestions WHERE room_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete suggestions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
