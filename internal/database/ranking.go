package database

import (
	"context"
)

// RankOf computes the dashboard rank: 1 + the number of users with strictly
// more points. Users with equal points share the same rank.
func (q *Queries) RankOf(ctx context.Context, userID string) (int64, error) {
	query := `
		SELECT 1 + COUNT(*)
		FROM users
		WHERE points > (SELECT points FROM users WHERE id = $1)
	`
	var rank int64
	err := q.db.QueryRow(ctx, query, userID).Scan(&rank)
	return rank, err
}

type LeaderboardEntry struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Points   int64   `json:"points"`
	Recycled int64   `json:"recycled"`
}

// Leaderboard returns the top limit users by points descending, each with
// their upload count. Display rank for this view is positional (1-based
// index in the returned slice), which matches RankOf only when there are no
// ties; the two definitions are intentionally distinct.
func (q *Queries) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	query := `
		SELECT u.id, u.display_name, u.points, COUNT(up.id)
		FROM users u
		LEFT JOIN uploads up ON up.user_id = u.id
		GROUP BY u.id
		ORDER BY u.points DESC, u.id
		LIMIT $1
	`
	rows, err := q.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var entry LeaderboardEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Points, &entry.Recycled); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if entries == nil {
		return []LeaderboardEntry{}, nil
	}

	return entries, nil
}
