package storage

import (
	"database/sql"
	"time"

	"menu-svc/internal/domain"
)

func (r *PostgresRepository) ListSheets() ([]domain.SuggestionSheet, error) {
	rows, err := r.DB.Query(`
		SELECT id, date_from, date_to, is_active, updated_at
		FROM suggestion_sheets
		ORDER BY date_from DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sheets := []domain.SuggestionSheet{}
	for rows.Next() {
		var s domain.SuggestionSheet
		if err := rows.Scan(&s.ID, &s.DateFrom, &s.DateTo, &s.IsActive, &s.UpdatedAt); err != nil {
			continue
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

// CreateSheet inserts a sheet; when it is active every other sheet is
// deactivated in the same transaction so at most one stays active.
func (r *PostgresRepository) CreateSheet(s *domain.SuggestionSheet) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if s.IsActive {
		if _, err := tx.Exec("UPDATE suggestion_sheets SET is_active=false"); err != nil {
			return err
		}
	}

	err = tx.QueryRow(`
		INSERT INTO suggestion_sheets (id, date_from, date_to, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING updated_at`, s.ID, s.DateFrom, s.DateTo, s.IsActive).Scan(&s.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	return tx.Commit()
}

func (r *PostgresRepository) UpdateSheet(id string, dateFrom, dateTo *time.Time, isActive *bool) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if isActive != nil && *isActive {
		if _, err := tx.Exec("UPDATE suggestion_sheets SET is_active=false WHERE id <> $1", id); err != nil {
			return err
		}
	}

	result, err := tx.Exec(`
		UPDATE suggestion_sheets
		SET date_from = COALESCE($1, date_from),
		    date_to = COALESCE($2, date_to),
		    is_active = COALESCE($3, is_active),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4`, dateFrom, dateTo, isActive, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

func (r *PostgresRepository) DeleteSheet(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM suggestion_sheets WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetActiveSheet returns the active sheet and its items ordered by section
// then position; sql.ErrNoRows when no sheet is active.
func (r *PostgresRepository) GetActiveSheet() (*domain.SuggestionSheet, []domain.SuggestionItem, error) {
	var s domain.SuggestionSheet
	err := r.DB.QueryRow(`
		SELECT id, date_from, date_to, is_active, updated_at
		FROM suggestion_sheets
		WHERE is_active = true
		ORDER BY updated_at DESC
		LIMIT 1`).Scan(&s.ID, &s.DateFrom, &s.DateTo, &s.IsActive, &s.UpdatedAt)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, sheet_id, section, title_ca, title_es, price, position
		FROM suggestion_items
		WHERE sheet_id = $1
		ORDER BY section, position`, s.ID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := []domain.SuggestionItem{}
	for rows.Next() {
		var it domain.SuggestionItem
		if err := rows.Scan(&it.ID, &it.SheetID, &it.Section, &it.Title.CA, &it.Title.ES, &it.Price, &it.Order); err != nil {
			continue
		}
		items = append(items, it)
	}
	return &s, items, nil
}

// CreateSuggestionItem inserts the item; a nil position lands it at the end
// of its (sheet, section) scope.
func (r *PostgresRepository) CreateSuggestionItem(it *domain.SuggestionItem, position *int) error {
	err := r.DB.QueryRow(`
		INSERT INTO suggestion_items (id, sheet_id, section, title_ca, title_es, price, position)
		VALUES ($1, $2, $3, $4, $5, $6,
		        COALESCE($7, (SELECT COALESCE(MAX(position) + 1, 0)
		                      FROM suggestion_items
		                      WHERE sheet_id = $2 AND section = $3)))
		RETURNING position`,
		it.ID, it.SheetID, it.Section, it.Title.CA, it.Title.ES, it.Price, position).Scan(&it.Order)
	return translateError(err)
}

func (r *PostgresRepository) UpdateSuggestionItem(id string, p domain.SuggestionItemPayload) error {
	var titleCa, titleEs *string
	if p.Title != nil {
		titleCa, titleEs = &p.Title.CA, &p.Title.ES
	}

	result, err := r.DB.Exec(`
		UPDATE suggestion_items
		SET section = COALESCE($1, section),
		    title_ca = COALESCE($2, title_ca),
		    title_es = COALESCE($3, title_es),
		    price = COALESCE($4, price),
		    position = COALESCE($5, position)
		WHERE id = $6`, p.Section, titleCa, titleEs, p.Price, p.Order, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) DeleteSuggestionItem(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM suggestion_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetSuggestionItemScope(id string) (string, string, error) {
	var sheetID, section string
	err := r.DB.QueryRow(
		"SELECT sheet_id, section FROM suggestion_items WHERE id = $1", id).Scan(&sheetID, &section)
	return sheetID, section, err
}

func (r *PostgresRepository) ListSuggestionItemIDs(sheetID, section string) ([]string, error) {
	return r.listIDs(
		"SELECT id FROM suggestion_items WHERE sheet_id = $1 AND section = $2 ORDER BY position",
		sheetID, section)
}

// ReorderSuggestionItems renumbers the ids within one (sheet, section) scope
// and pulls every id into that scope, covering cross-section moves.
func (r *PostgresRepository) ReorderSuggestionItems(sheetID, section string, ids []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for idx, id := range ids {
		result, err := tx.Exec(
			"UPDATE suggestion_items SET sheet_id=$1, section=$2, position=$3 WHERE id=$4",
			sheetID, section, idx, id)
		if err != nil {
			return translateError(err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
	}
	return tx.Commit()
}
