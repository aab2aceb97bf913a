package domain

// Typed request payloads decoded at the HTTP boundary. Pointer fields
// distinguish "absent" from zero values so PATCH handlers can apply partial
// updates.

type DepartmentPayload struct {
	Title *LocalizedText `json:"title"`
	Order *int           `json:"order"`
}

type ItemPayload struct {
	DepartmentID *string        `json:"departmentId"`
	Title        *LocalizedText `json:"title"`
	Price        *float64       `json:"price"`
	Allergens    *[]string      `json:"allergens"`
	Order        *int           `json:"order"`
}

type SupplementGroupPayload struct {
	Title *LocalizedText `json:"title"`
	Order *int           `json:"order"`
}

type SupplementItemPayload struct {
	GroupID   *string        `json:"groupId"`
	Title     *LocalizedText `json:"title"`
	Price     *float64       `json:"price"`
	Allergens *[]string      `json:"allergens"`
	Order     *int           `json:"order"`
}

type AllergenPayload struct {
	Code  string        `json:"code"`
	Label LocalizedText `json:"label"`
}

type SheetPayload struct {
	DateFrom *string `json:"dateFrom"`
	DateTo   *string `json:"dateTo"`
	IsActive *bool   `json:"isActive"`
}

type SuggestionItemPayload struct {
	SheetID *string        `json:"sheetId"`
	Section *string        `json:"section"`
	Title   *LocalizedText `json:"title"`
	Price   *float64       `json:"price"`
	Order   *int           `json:"order"`
}

type ReorderPayload struct {
	IDs []string `json:"ids"`
}

// MovePayload relocates one entity into a destination scope. Exactly one of
// Index or BeforeID positions it; both absent appends at the end.
type MovePayload struct {
	ID       string  `json:"id"`
	Index    *int    `json:"index"`
	BeforeID *string `json:"beforeId"`

	// Destination scope, per entity kind.
	DepartmentID string `json:"departmentId,omitempty"`
	GroupID      string `json:"groupId,omitempty"`
	SheetID      string `json:"sheetId,omitempty"`
	Section      string `json:"section,omitempty"`
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
