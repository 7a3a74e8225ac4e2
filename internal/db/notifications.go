package db

import "context"

// ListNotifications returns the user's most recent notifications, newest
// first, capped at limit.
func (db *DatabaseConnection) ListNotifications(ctx context.Context, userID int32, limit int) ([]Notification, error) {
	rows, err := db.Query(ctx, `
		SELECT id, user_id, message, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
