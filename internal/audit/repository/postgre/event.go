package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"auth-srv/internal/audit/repository"
	"auth-srv/internal/model"

	"github.com/google/uuid"
)

// CreateEvent - Insert a new auth event row.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.AuthEvent, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO auth.auth_events (id, event_type, subject, client_ip, user_agent, path, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, event_type, subject, client_ip, user_agent, path, reason, created_at
	`

	var event model.AuthEvent
	var subject, clientIP, userAgent, path, reason sql.NullString

	err := r.db.QueryRowContext(ctx, query,
		id, opt.EventType, nullString(opt.Subject), nullString(opt.ClientIP),
		nullString(opt.UserAgent), nullString(opt.Path), nullString(opt.Reason), now,
	).Scan(
		&event.ID, &event.EventType, &subject, &clientIP,
		&userAgent, &path, &reason, &event.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.CreateEvent: Failed to insert event: %v", err)
		return model.AuthEvent{}, repository.ErrFailedToInsert
	}

	event.Subject = subject.String
	event.ClientIP = clientIP.String
	event.UserAgent = userAgent.String
	event.Path = path.String
	event.Reason = reason.String

	return event, nil
}

// ListEvents - List auth events newest first with optional filters.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.AuthEvent, int64, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if opt.EventType != "" {
		where += fmt.Sprintf(" AND event_type = $%d", argIdx)
		args = append(args, opt.EventType)
		argIdx++
	}
	if opt.Subject != "" {
		where += fmt.Sprintf(" AND subject = $%d", argIdx)
		args = append(args, opt.Subject)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM auth.auth_events" + where

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.ListEvents: Failed to count events: %v", err)
		return nil, 0, repository.ErrFailedToList
	}

	query := `
		SELECT id, event_type, subject, client_ip, user_agent, path, reason, created_at
		FROM auth.auth_events
	` + where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.ListEvents: Failed to query events: %v", err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	events := make([]model.AuthEvent, 0)
	for rows.Next() {
		var event model.AuthEvent
		var subject, clientIP, userAgent, path, reason sql.NullString

		if err := rows.Scan(
			&event.ID, &event.EventType, &subject, &clientIP,
			&userAgent, &path, &reason, &event.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "audit.repository.postgre.ListEvents: Failed to scan event: %v", err)
			return nil, 0, repository.ErrFailedToList
		}

		event.Subject = subject.String
		event.ClientIP = clientIP.String
		event.UserAgent = userAgent.String
		event.Path = path.String
		event.Reason = reason.String

		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.ListEvents: Row iteration failed: %v", err)
		return nil, 0, repository.ErrFailedToList
	}

	return events, total, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
