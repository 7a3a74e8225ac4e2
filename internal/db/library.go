package db

import "context"

// ListLibrary returns the combined library view: playlists (with the ID of
// their oldest member video for the "play all" link) and standalone videos
// (with the user's saved progress), filtered by a case-insensitive title
// search and ordered newest first.
func (db *DatabaseConnection) ListLibrary(ctx context.Context, userID int32, search string) ([]LibraryItem, error) {
	pattern := "%" + search + "%"

	rows, err := db.Query(ctx, `
		SELECT * FROM (
			SELECT
				id, title, thumbnail_url, channel_title, created_at, first_video_id,
				NULL AS duration_iso,
				NULL AS progress_seconds,
				'playlist' AS type
			FROM (
				SELECT
					p.id, p.title, p.thumbnail_url, p.channel_title, p.created_at,
					(SELECT v.id FROM videos v WHERE v.playlist_id = p.id ORDER BY v.created_at ASC LIMIT 1) AS first_video_id
				FROM playlists p
			) AS playlists_with_first_video
			WHERE title ILIKE $2

			UNION ALL

			SELECT
				v.id, v.title, v.thumbnail_url, v.channel_title, v.created_at, NULL AS first_video_id,
				v.duration_iso,
				up.progress_seconds,
				'video' AS type
			FROM videos v
			LEFT JOIN userprogress up ON v.id = up.video_id AND up.user_id = $1
			WHERE v.playlist_id IS NULL AND v.title ILIKE $2
		) AS combined_results
		ORDER BY created_at DESC
	`, userID, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []LibraryItem{}
	for rows.Next() {
		var item LibraryItem
		err := rows.Scan(
			&item.ID, &item.Title, &item.ThumbnailURL, &item.ChannelTitle, &item.CreatedAt,
			&item.FirstVideoID, &item.DurationISO, &item.ProgressSeconds, &item.Type,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
