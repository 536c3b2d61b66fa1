package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/ports"
)

type suggestionRepository struct {
	db *sql.DB
}

func NewSuggestionRepository(db *sql.DB) ports.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

func (r *suggestionRepository) Save(ctx context.Context, suggestion *domain.Suggestion) error {
	query := `
		INSERT INTO suggestions (id, room_id, name, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		suggestion.ID, suggestion.RoomID, suggestion.Name, suggestion.CreatedAt, suggestion.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert suggestion: %w", err)
	}
	return nil
}

func (r *suggestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	query := `
		SELECT id, room_id, name, created_at, created_by
		FROM suggestions
		WHERE id = $1
	`

	var suggestion domain.Suggestion
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&suggestion.ID, &suggestion.RoomID, &suggestion.Name, &suggestion.CreatedAt, &suggestion.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	return &suggestion, nil
}

func (r *suggestionRepository) ListByRoom(ctx context.Context, roomID string) ([]*domain.Suggestion, error) {
	query := `
		SELECT id, room_id, name, created_at, created_by
		FROM suggestions
		WHERE room_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []*domain.Suggestion
	for rows.Next() {
		var suggestion domain.Suggestion
		if err := rows.Scan(
			&suggestion.ID, &suggestion.RoomID, &suggestion.Name, &suggestion.CreatedAt, &suggestion.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, &suggestion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suggestions: %w", err)
	}
	return suggestions, nil
}
