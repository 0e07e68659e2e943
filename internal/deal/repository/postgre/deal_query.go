package postgre

const (
	dealColumns = `id, day, title, description, category, discount`

	listDealsQuery = `
		SELECT ` + dealColumns + `
		FROM deals
		WHERE day = $1 OR ($2 AND day = '')
		ORDER BY id`

	saveDealQuery = `
		INSERT INTO deals (` + dealColumns + `, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			discount = EXCLUDED.discount,
			updated_at = NOW()
		RETURNING ` + dealColumns

	deleteDealQuery = `DELETE FROM deals WHERE id = $1`
)
