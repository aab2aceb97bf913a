package storage

import (
	"fmt"

	"menu-svc/internal/domain"
)

// EnsureSchema creates the tables when they do not exist yet. Statements are
// idempotent so restarts are safe.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS departments (
			id TEXT PRIMARY KEY,
			title_ca TEXT NOT NULL DEFAULT '',
			title_es TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS allergens (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			label_ca TEXT NOT NULL DEFAULT '',
			label_es TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			department_id TEXT NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
			title_ca TEXT NOT NULL DEFAULT '',
			title_es TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS item_allergens (
			item_id TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
			allergen_id TEXT NOT NULL REFERENCES allergens(id),
			PRIMARY KEY (item_id, allergen_id)
		)`,
		`CREATE TABLE IF NOT EXISTS supplement_groups (
			id TEXT PRIMARY KEY,
			title_ca TEXT NOT NULL DEFAULT '',
			title_es TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS supplement_items (
			id TEXT PRIMARY KEY,
			group_id TEXT NOT NULL REFERENCES supplement_groups(id) ON DELETE CASCADE,
			title_ca TEXT NOT NULL DEFAULT '',
			title_es TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS supplement_item_allergens (
			supplement_item_id TEXT NOT NULL REFERENCES supplement_items(id) ON DELETE CASCADE,
			allergen_id TEXT NOT NULL REFERENCES allergens(id),
			PRIMARY KEY (supplement_item_id, allergen_id)
		)`,
		`CREATE TABLE IF NOT EXISTS suggestion_sheets (
			id TEXT PRIMARY KEY,
			date_from DATE NOT NULL,
			date_to DATE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS suggestion_items (
			id TEXT PRIMARY KEY,
			sheet_id TEXT NOT NULL REFERENCES suggestion_sheets(id) ON DELETE CASCADE,
			section TEXT NOT NULL,
			title_ca TEXT NOT NULL DEFAULT '',
			title_es TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedDefaultAllergens loads the standard allergen catalog once, when the
// table is still empty.
func (r *PostgresRepository) SeedDefaultAllergens() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM allergens").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []domain.Allergen{
		{ID: "gluten", Code: "G", Label: domain.LocalizedText{CA: "Gluten", ES: "Gluten"}},
		{ID: "peix", Code: "P", Label: domain.LocalizedText{CA: "Peix", ES: "Pescado"}},
		{ID: "lactics", Code: "L", Label: domain.LocalizedText{CA: "Làctics", ES: "Lácteos"}},
		{ID: "moluscs", Code: "M", Label: domain.LocalizedText{CA: "Moluscs", ES: "Moluscos"}},
		{ID: "crustacis", Code: "CR", Label: domain.LocalizedText{CA: "Crustacis", ES: "Crustáceos"}},
		{ID: "fruits_secs", Code: "FS", Label: domain.LocalizedText{CA: "Fruits secs", ES: "Frutos secos"}},
		{ID: "soja", Code: "SO", Label: domain.LocalizedText{CA: "Soja", ES: "Soja"}},
		{ID: "sulfits", Code: "SU", Label: domain.LocalizedText{CA: "Sulfits", ES: "Sulfitos"}},
		{ID: "ou", Code: "H", Label: domain.LocalizedText{CA: "Ou", ES: "Huevo"}},
		{ID: "api", Code: "AP", Label: domain.LocalizedText{CA: "Api", ES: "Apio"}},
	}

	for _, a := range defaults {
		_, err := r.DB.Exec(
			"INSERT INTO allergens (id, code, label_ca, label_es) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING",
			a.ID, a.Code, a.Label.CA, a.Label.ES)
		if err != nil {
			return err
		}
	}
	return nil
}
