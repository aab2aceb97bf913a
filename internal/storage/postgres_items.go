package storage

import (
	"database/sql"

	"menu-svc/internal/domain"
)

func (r *PostgresRepository) CreateItem(it *domain.Item) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO items (id, department_id, title_ca, title_es, price, position) VALUES ($1, $2, $3, $4, $5, $6)",
		it.ID, it.DepartmentID, it.Title.CA, it.Title.ES, it.Price, it.Order)
	if err != nil {
		return translateError(err)
	}

	for _, allergenID := range it.Allergens {
		_, err = tx.Exec(
			"INSERT INTO item_allergens (item_id, allergen_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			it.ID, allergenID)
		if err != nil {
			return translateError(err)
		}
	}
	return tx.Commit()
}

// UpdateItem applies a partial update; when the payload carries an allergen
// set, the item's associations are replaced in the same transaction.
func (r *PostgresRepository) UpdateItem(id string, p domain.ItemPayload) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if p.Allergens != nil {
		if _, err := tx.Exec("DELETE FROM item_allergens WHERE item_id = $1", id); err != nil {
			return err
		}
		for _, allergenID := range *p.Allergens {
			_, err := tx.Exec(
				"INSERT INTO item_allergens (item_id, allergen_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				id, allergenID)
			if err != nil {
				return translateError(err)
			}
		}
	}

	var titleCa, titleEs *string
	if p.Title != nil {
		titleCa, titleEs = &p.Title.CA, &p.Title.ES
	}

	result, err := tx.Exec(`
		UPDATE items
		SET department_id = COALESCE($1, department_id),
		    title_ca = COALESCE($2, title_ca),
		    title_es = COALESCE($3, title_es),
		    price = COALESCE($4, price),
		    position = COALESCE($5, position)
		WHERE id = $6`, p.DepartmentID, titleCa, titleEs, p.Price, p.Order, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

func (r *PostgresRepository) DeleteItem(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetItemDepartment(id string) (string, error) {
	var departmentID string
	err := r.DB.QueryRow("SELECT department_id FROM items WHERE id = $1", id).Scan(&departmentID)
	return departmentID, err
}

func (r *PostgresRepository) ListItemIDs(departmentID string) ([]string, error) {
	return r.listIDs(
		"SELECT id FROM items WHERE department_id = $1 ORDER BY position", departmentID)
}

// ReorderItems assigns position = index for every id and pulls each one into
// the department, so the same call serves in-place reorders and moves.
func (r *PostgresRepository) ReorderItems(departmentID string, ids []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for idx, id := range ids {
		result, err := tx.Exec(
			"UPDATE items SET department_id=$1, position=$2 WHERE id=$3",
			departmentID, idx, id)
		if err != nil {
			return translateError(err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) CreateSupplementGroup(g *domain.SupplementGroup) error {
	_, err := r.DB.Exec(
		"INSERT INTO supplement_groups (id, title_ca, title_es, position) VALUES ($1, $2, $3, $4)",
		g.ID, g.Title.CA, g.Title.ES, g.Order)
	return translateError(err)
}

func (r *PostgresRepository) UpdateSupplementGroup(id string, p domain.SupplementGroupPayload) error {
	var titleCa, titleEs *string
	if p.Title != nil {
		titleCa, titleEs = &p.Title.CA, &p.Title.ES
	}

	result, err := r.DB.Exec(`
		UPDATE supplement_groups
		SET title_ca = COALESCE($1, title_ca),
		    title_es = COALESCE($2, title_es),
		    position = COALESCE($3, position)
		WHERE id = $4`, titleCa, titleEs, p.Order, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) DeleteSupplementGroup(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM supplement_groups WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ReorderSupplementGroups(ids []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for idx, id := range ids {
		result, err := tx.Exec("UPDATE supplement_groups SET position=$1 WHERE id=$2", idx, id)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) CreateSupplementItem(it *domain.SupplementItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO supplement_items (id, group_id, title_ca, title_es, price, position) VALUES ($1, $2, $3, $4, $5, $6)",
		it.ID, it.GroupID, it.Title.CA, it.Title.ES, it.Price, it.Order)
	if err != nil {
		return translateError(err)
	}

	for _, allergenID := range it.Allergens {
		_, err = tx.Exec(
			"INSERT INTO supplement_item_allergens (supplement_item_id, allergen_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			it.ID, allergenID)
		if err != nil {
			return translateError(err)
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) UpdateSupplementItem(id string, p domain.SupplementItemPayload) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if p.Allergens != nil {
		if _, err := tx.Exec("DELETE FROM supplement_item_allergens WHERE supplement_item_id = $1", id); err != nil {
			return err
		}
		for _, allergenID := range *p.Allergens {
			_, err := tx.Exec(
				"INSERT INTO supplement_item_allergens (supplement_item_id, allergen_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				id, allergenID)
			if err != nil {
				return translateError(err)
			}
		}
	}

	var titleCa, titleEs *string
	if p.Title != nil {
		titleCa, titleEs = &p.Title.CA, &p.Title.ES
	}

	result, err := tx.Exec(`
		UPDATE supplement_items
		SET group_id = COALESCE($1, group_id),
		    title_ca = COALESCE($2, title_ca),
		    title_es = COALESCE($3, title_es),
		    price = COALESCE($4, price),
		    position = COALESCE($5, position)
		WHERE id = $6`, p.GroupID, titleCa, titleEs, p.Price, p.Order, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

func (r *PostgresRepository) DeleteSupplementItem(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM supplement_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetSupplementItemGroup(id string) (string, error) {
	var groupID string
	err := r.DB.QueryRow("SELECT group_id FROM supplement_items WHERE id = $1", id).Scan(&groupID)
	return groupID, err
}

func (r *PostgresRepository) ListSupplementItemIDs(groupID string) ([]string, error) {
	return r.listIDs(
		"SELECT id FROM supplement_items WHERE group_id = $1 ORDER BY position", groupID)
}

func (r *PostgresRepository) ReorderSupplementItems(groupID string, ids []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for idx, id := range ids {
		result, err := tx.Exec(
			"UPDATE supplement_items SET group_id=$1, position=$2 WHERE id=$3",
			groupID, idx, id)
		if err != nil {
			return translateError(err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) listIDs(query string, args ...interface{}) ([]string, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
