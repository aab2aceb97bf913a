package storage

import "menu-svc/internal/domain"

// GetMenu assembles the full public projection: departments with their items
// (allergen ids resolved), supplement groups with theirs, and the allergen
// catalog. Everything sorted by position, allergens by code.
func (r *PostgresRepository) GetMenu() (*domain.MenuSnapshot, error) {
	departments, err := r.ListDepartments()
	if err != nil {
		return nil, err
	}

	items, err := r.listItems()
	if err != nil {
		return nil, err
	}
	itemAllergens, err := r.listAssociations("SELECT item_id, allergen_id FROM item_allergens")
	if err != nil {
		return nil, err
	}

	groups, err := r.listSupplementGroups()
	if err != nil {
		return nil, err
	}
	supplementItems, err := r.listSupplementItems()
	if err != nil {
		return nil, err
	}
	supplementAllergens, err := r.listAssociations("SELECT supplement_item_id, allergen_id FROM supplement_item_allergens")
	if err != nil {
		return nil, err
	}

	allergens, err := r.ListAllergens()
	if err != nil {
		return nil, err
	}

	itemsByDepartment := map[string][]domain.Item{}
	for _, it := range items {
		it.Allergens = emptyIfNil(itemAllergens[it.ID])
		itemsByDepartment[it.DepartmentID] = append(itemsByDepartment[it.DepartmentID], it)
	}

	supplementsByGroup := map[string][]domain.SupplementItem{}
	for _, it := range supplementItems {
		it.Allergens = emptyIfNil(supplementAllergens[it.ID])
		supplementsByGroup[it.GroupID] = append(supplementsByGroup[it.GroupID], it)
	}

	snapshot := &domain.MenuSnapshot{
		Departments:      []domain.DepartmentMenu{},
		SupplementGroups: []domain.SupplementGroupMenu{},
		Allergens:        allergens,
	}
	for _, d := range departments {
		menuItems := itemsByDepartment[d.ID]
		if menuItems == nil {
			menuItems = []domain.Item{}
		}
		snapshot.Departments = append(snapshot.Departments, domain.DepartmentMenu{
			ID:    d.ID,
			Title: d.Title,
			Order: d.Order,
			Items: menuItems,
		})
	}
	for _, g := range groups {
		menuItems := supplementsByGroup[g.ID]
		if menuItems == nil {
			menuItems = []domain.SupplementItem{}
		}
		snapshot.SupplementGroups = append(snapshot.SupplementGroups, domain.SupplementGroupMenu{
			ID:    g.ID,
			Title: g.Title,
			Order: g.Order,
			Items: menuItems,
		})
	}
	return snapshot, nil
}

func (r *PostgresRepository) listItems() ([]domain.Item, error) {
	rows, err := r.DB.Query(`
		SELECT id, department_id, title_ca, title_es, price, position
		FROM items
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.DepartmentID, &it.Title.CA, &it.Title.ES, &it.Price, &it.Order); err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *PostgresRepository) listSupplementGroups() ([]domain.SupplementGroup, error) {
	rows, err := r.DB.Query(`
		SELECT id, title_ca, title_es, position
		FROM supplement_groups
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.SupplementGroup
	for rows.Next() {
		var g domain.SupplementGroup
		if err := rows.Scan(&g.ID, &g.Title.CA, &g.Title.ES, &g.Order); err != nil {
			continue
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (r *PostgresRepository) listSupplementItems() ([]domain.SupplementItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, group_id, title_ca, title_es, price, position
		FROM supplement_items
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SupplementItem
	for rows.Next() {
		var it domain.SupplementItem
		if err := rows.Scan(&it.ID, &it.GroupID, &it.Title.CA, &it.Title.ES, &it.Price, &it.Order); err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *PostgresRepository) listAssociations(query string) (map[string][]string, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assoc := map[string][]string{}
	for rows.Next() {
		var ownerID, allergenID string
		if err := rows.Scan(&ownerID, &allergenID); err != nil {
			continue
		}
		assoc[ownerID] = append(assoc[ownerID], allergenID)
	}
	return assoc, nil
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
