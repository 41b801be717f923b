package database

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

type Event struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	EventTime time.Time       `json:"event_time"`
	Payload   json.RawMessage `json:"payload"`
}

// publishEvent appends an entry to the event journal and pushes it to any
// websocket clients of the user. Journal failures are logged, not returned:
// the upload itself already committed.
func (s *Store) publishEvent(ctx context.Context, userID string, eventType string, payload interface{}) {
	eventMsg := map[string]interface{}{
		"event_type": eventType,
		"payload":    payload,
	}
	eventBytes, err := json.Marshal(eventMsg)
	if err != nil {
		log.Printf("ERROR: failed to marshal event payload: %v", err)
		return
	}

	query := `INSERT INTO event_journal (user_id, event_type, payload) VALUES ($1, $2, $3)`
	if _, err := s.pool.Exec(ctx, query, userID, eventType, eventBytes); err != nil {
		log.Printf("ERROR: failed to journal %s event for user %s: %v", eventType, userID, err)
		return
	}

	if s.wsHub != nil {
		s.wsHub.PublishEvent(userID, eventBytes)
	}
}

func (q *Queries) GetEventsSince(ctx context.Context, userID string, sinceID int64) ([]Event, error) {
	query := `
		SELECT id, event_type, event_time, payload
		FROM event_journal
		WHERE user_id = $1 AND id > $2
		ORDER BY id ASC
		LIMIT 100
	`
	rows, err := q.db.Query(ctx, query, userID, sinceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.EventTime,
			&event.Payload,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if events == nil {
		return []Event{}, nil
	}

	return events, nil
}
