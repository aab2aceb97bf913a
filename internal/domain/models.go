package domain

import "time"

// LocalizedText is the Catalan/Spanish pair attached to every display-facing
// title. Stored as two columns, exposed as one nested object.
type LocalizedText struct {
	CA string `json:"ca"`
	ES string `json:"es"`
}

type Department struct {
	ID    string        `json:"id"`
	Title LocalizedText `json:"title"`
	Order int           `json:"order"`
}

type Item struct {
	ID           string        `json:"id"`
	DepartmentID string        `json:"departmentId"`
	Title        LocalizedText `json:"title"`
	Price        float64       `json:"price"`
	Order        int           `json:"order"`
	Allergens    []string      `json:"allergens"`
}

type SupplementGroup struct {
	ID    string        `json:"id"`
	Title LocalizedText `json:"title"`
	Order int           `json:"order"`
}

type SupplementItem struct {
	ID        string        `json:"id"`
	GroupID   string        `json:"groupId"`
	Title     LocalizedText `json:"title"`
	Price     float64       `json:"price"`
	Order     int           `json:"order"`
	Allergens []string      `json:"allergens"`
}

type Allergen struct {
	ID    string        `json:"id"`
	Code  string        `json:"code"`
	Label LocalizedText `json:"label"`
}

type SuggestionSheet struct {
	ID        string    `json:"id"`
	DateFrom  time.Time `json:"dateFrom"`
	DateTo    time.Time `json:"dateTo"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Suggestion sheet sections. Position is scoped to (sheet, section).
const (
	SectionFood    = "FOOD"
	SectionDessert = "DESSERT"
	SectionOther   = "OTHER"
)

func ValidSection(s string) bool {
	return s == SectionFood || s == SectionDessert || s == SectionOther
}

type SuggestionItem struct {
	ID      string        `json:"id"`
	SheetID string        `json:"sheetId"`
	Section string        `json:"section"`
	Title   LocalizedText `json:"title"`
	Price   float64       `json:"price"`
	Order   int           `json:"order"`
}

// DepartmentMenu is a department with its ordered items, as served by the
// public menu projection.
type DepartmentMenu struct {
	ID    string        `json:"id"`
	Title LocalizedText `json:"title"`
	Order int           `json:"order"`
	Items []Item        `json:"items"`
}

type SupplementGroupMenu struct {
	ID    string           `json:"id"`
	Title LocalizedText    `json:"title"`
	Order int              `json:"order"`
	Items []SupplementItem `json:"items"`
}

// MenuSnapshot is the full public menu: ordered departments with ordered
// items, supplement groups likewise, and the allergen catalog by code.
type MenuSnapshot struct {
	Departments      []DepartmentMenu      `json:"departments"`
	SupplementGroups []SupplementGroupMenu `json:"supplementGroups"`
	Allergens        []Allergen            `json:"allergens"`
}

type SheetSections struct {
	Food     []SuggestionItem `json:"food"`
	Desserts []SuggestionItem `json:"desserts"`
	Other    []SuggestionItem `json:"other"`
}

// SheetView is the active suggestion sheet with its items grouped by section.
type SheetView struct {
	ID       string        `json:"id"`
	DateFrom time.Time     `json:"dateFrom"`
	DateTo   time.Time     `json:"dateTo"`
	IsActive bool          `json:"isActive"`
	Sections SheetSections `json:"sections"`
}

// MenuEvent is published to Kafka after every successful admin mutation so
// display clients and downstream consumers can refresh.
type MenuEvent struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
