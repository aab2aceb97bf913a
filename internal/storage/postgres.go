package storage

import (
	"database/sql"
	"errors"

	"menu-svc/internal/domain"

	"github.com/lib/pq"
)

// ErrDuplicate marks a unique-constraint violation (allergen code collision).
var ErrDuplicate = errors.New("duplicate key")

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// translateError maps Postgres constraint violations onto the errors the
// service layer understands: unique violations become ErrDuplicate, missing
// foreign-key targets become sql.ErrNoRows.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			return sql.ErrNoRows
		}
	}
	return err
}

func (r *PostgresRepository) ListDepartments() ([]domain.Department, error) {
	rows, err := r.DB.Query(`
		SELECT id, title_ca, title_es, position
		FROM departments
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Title.CA, &d.Title.ES, &d.Order); err != nil {
			continue
		}
		departments = append(departments, d)
	}
	return departments, nil
}

func (r *PostgresRepository) CreateDepartment(d *domain.Department) error {
	_, err := r.DB.Exec(
		"INSERT INTO departments (id, title_ca, title_es, position) VALUES ($1, $2, $3, $4)",
		d.ID, d.Title.CA, d.Title.ES, d.Order)
	return translateError(err)
}

func (r *PostgresRepository) UpdateDepartment(id string, p domain.DepartmentPayload) error {
	var titleCa, titleEs *string
	if p.Title != nil {
		titleCa, titleEs = &p.Title.CA, &p.Title.ES
	}

	result, err := r.DB.Exec(`
		UPDATE departments
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

func (r *PostgresRepository) DeleteDepartment(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM departments WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ReorderDepartments rewrites positions to match the given id order inside
// one transaction. An unknown id aborts the whole batch.
func (r *PostgresRepository) ReorderDepartments(ids []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for idx, id := range ids {
		result, err := tx.Exec("UPDATE departments SET position=$1 WHERE id=$2", idx, id)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) ListAllergens() ([]domain.Allergen, error) {
	rows, err := r.DB.Query(`
		SELECT id, code, label_ca, label_es
		FROM allergens
		ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allergens := []domain.Allergen{}
	for rows.Next() {
		var a domain.Allergen
		if err := rows.Scan(&a.ID, &a.Code, &a.Label.CA, &a.Label.ES); err != nil {
			continue
		}
		allergens = append(allergens, a)
	}
	return allergens, nil
}

func (r *PostgresRepository) CreateAllergen(a *domain.Allergen) error {
	_, err := r.DB.Exec(
		"INSERT INTO allergens (id, code, label_ca, label_es) VALUES ($1, $2, $3, $4)",
		a.ID, a.Code, a.Label.CA, a.Label.ES)
	return translateError(err)
}

// CountAllergenRefs reports how many items and supplement items still
// reference the allergen. Deletion is refused while either count is non-zero.
func (r *PostgresRepository) CountAllergenRefs(id string) (int, int, error) {
	var items, supplements int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM item_allergens WHERE allergen_id = $1", id).Scan(&items)
	if err != nil {
		return 0, 0, err
	}
	err = r.DB.QueryRow(
		"SELECT COUNT(*) FROM supplement_item_allergens WHERE allergen_id = $1", id).Scan(&supplements)
	if err != nil {
		return 0, 0, err
	}
	return items, supplements, nil
}

func (r *PostgresRepository) DeleteAllergen(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM allergens WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
