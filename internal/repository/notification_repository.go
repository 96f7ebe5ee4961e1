package repository

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

func (r *Repository) SaveNotification(ctx context.Context, n entity.Notification) error {
	sqlQuery :=
		`INSERT INTO notifications
			(id, type, message, priority, client_id, target_user_id, data, read, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery,
		n.ID,
		n.Type,
		n.Message,
		nullableString(string(n.Priority)),
		nullableUUID(n.ClientID),
		nullableUUID(n.TargetUserID),
		data,
		n.Read,
		n.CreatedAt,
	)

	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	sqlQuery := `UPDATE notifications SET read = true WHERE id = $1`

	_, err := r.db.Exec(ctx, sqlQuery, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	sqlQuery := `UPDATE notifications SET read = true WHERE target_user_id IS NULL OR target_user_id = $1`

	_, err := r.db.Exec(ctx, sqlQuery, userID)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	sqlQuery := `DELETE FROM notifications WHERE id = $1`

	_, err := r.db.Exec(ctx, sqlQuery, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAllNotifications(ctx context.Context, userID uuid.UUID) error {
	sqlQuery := `DELETE FROM notifications WHERE target_user_id IS NULL OR target_user_id = $1`

	_, err := r.db.Exec(ctx, sqlQuery, userID)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) NotificationsForUser(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	stmt := sq.Select(
		"id",
		"type",
		"message",
		"priority",
		"client_id",
		"target_user_id",
		"data",
		"read",
		"created_at",
	).
		From("notifications").
		Where(sq.Or{
			sq.Eq{"target_user_id": nil},
			sq.Eq{"target_user_id": userID},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var notifications []entity.Notification

	for rows.Next() {
		var (
			n        entity.Notification
			priority *string
			clientID *uuid.UUID
			targetID *uuid.UUID
			data     []byte
		)

		err = rows.Scan(
			&n.ID,
			&n.Type,
			&n.Message,
			&priority,
			&clientID,
			&targetID,
			&data,
			&n.Read,
			&n.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		if priority != nil {
			n.Priority = entity.NotificationPriority(*priority)
		}

		if clientID != nil {
			n.ClientID = *clientID
		}

		if targetID != nil {
			n.TargetUserID = *targetID
		}

		if len(data) > 0 {
			err = json.Unmarshal(data, &n.Data)
			if err != nil {
				return nil, err
			}
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id.IsNil() {
		return nil
	}

	return &id
}
