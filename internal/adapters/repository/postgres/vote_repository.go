package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/roomvote/api/internal/core/domain"
	"github.com/roomvote/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) Save(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, room_id, suggestion_id, user_session, user_ip, user_name, voter_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		vote.ID, vote.RoomID, vote.SuggestionID,
		vote.UserSession, vote.UserIP, vote.UserName, vote.VoterKey, vote.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, roomID string, suggestionID uuid.UUID, voterKey string) (bool, error) {
	query := `
		SELECT 1 FROM votes
		WHERE room_id = $1 AND suggestion_id = $2 AND voter_key = $3
		LIMIT 1
	`
	var exists int
	err := r.db.QueryRowContext(ctx, query, roomID, suggestionID, voterKey).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) Delete(ctx context.Context, roomID string, suggestionID uuid.UUID, voterKey string) error {
	query := `
		DELETE FROM votes
		WHERE room_id = $1 AND suggestion_id = $2 AND voter_key = $3
	`
	_, err := r.db.ExecContext(ctx, query, roomID, suggestionID, voterKey)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	return nil
}

func (r *voteRepository) TallyByRoom(ctx context.Context, roomID string) (domain.Tally, error) {
	query := `
		SELECT suggestion_id, COUNT(*)
		FROM votes
		WHERE room_id = $1
		GROUP BY suggestion_id
	`
	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to tally votes: %w", err)
	}
	defer rows.Close()

	tally := make(domain.Tally)
	for rows.Next() {
		var suggestionID uuid.UUID
		var count int64
		if err := rows.Scan(&suggestionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan tally row: %w", err)
		}
		tally[suggestionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tally: %w", err)
	}
	return tally, nil
}
