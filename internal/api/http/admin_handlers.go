package httpapi

import (
	"net/http"

	"menu-svc/internal/domain"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes wires the admin surface onto a subrouter that already
// carries the auth middleware.
func (h *Handler) RegisterAdminRoutes(r *mux.Router) {
	r.HandleFunc("/departments", h.listDepartments).Methods("GET")
	r.HandleFunc("/departments", h.createDepartment).Methods("POST")
	r.HandleFunc("/departments/{id}", h.updateDepartment).Methods("PATCH")
	r.HandleFunc("/departments/{id}", h.deleteDepartment).Methods("DELETE")
	r.HandleFunc("/reorder/departments", h.reorderDepartments).Methods("POST")

	r.HandleFunc("/items", h.createItem).Methods("POST")
	r.HandleFunc("/items/{id}", h.updateItem).Methods("PATCH")
	r.HandleFunc("/items/{id}", h.deleteItem).Methods("DELETE")
	r.HandleFunc("/reorder/items/{departmentId}", h.reorderItems).Methods("POST")
	r.HandleFunc("/move/items", h.moveItem).Methods("POST")

	r.HandleFunc("/supplement-groups", h.createSupplementGroup).Methods("POST")
	r.HandleFunc("/supplement-groups/{id}", h.updateSupplementGroup).Methods("PATCH")
	r.HandleFunc("/supplement-groups/{id}", h.deleteSupplementGroup).Methods("DELETE")
	r.HandleFunc("/reorder/supplement-groups", h.reorderSupplementGroups).Methods("POST")

	r.HandleFunc("/supplement-items", h.createSupplementItem).Methods("POST")
	r.HandleFunc("/supplement-items/{id}", h.updateSupplementItem).Methods("PATCH")
	r.HandleFunc("/supplement-items/{id}", h.deleteSupplementItem).Methods("DELETE")
	r.HandleFunc("/reorder/supplement-items/{groupId}", h.reorderSupplementItems).Methods("POST")
	r.HandleFunc("/move/supplement-items", h.moveSupplementItem).Methods("POST")

	r.HandleFunc("/allergens", h.listAllergens).Methods("GET")
	r.HandleFunc("/allergens", h.createAllergen).Methods("POST")
	r.HandleFunc("/allergens/{id}", h.deleteAllergen).Methods("DELETE")

	h.registerSuggestionRoutes(r)
}

func validReorderIDs(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if id == "" {
			return false
		}
	}
	return true
}

func isValidAllergenCode(code string) bool {
	if len(code) < 1 || len(code) > 3 {
		return false
	}
	for _, r := range code {
		alnum := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			return false
		}
	}
	return true
}

func (h *Handler) listDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Catalog.ListDepartments()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, departments)
}

func (h *Handler) createDepartment(w http.ResponseWriter, r *http.Request) {
	var payload domain.DepartmentPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Title == nil {
		respondError(w, http.StatusBadRequest, "title_required")
		return
	}

	id, err := h.Catalog.CreateDepartment(r.Context(), payload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) updateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload domain.DepartmentPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.Catalog.UpdateDepartment(r.Context(), mux.Vars(r)["id"], payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteDepartment(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) reorderDepartments(w http.ResponseWriter, r *http.Request) {
	var payload domain.ReorderPayload
	if err := decodeBody(r, &payload); err != nil || !validReorderIDs(payload.IDs) {
		respondError(w, http.StatusBadRequest, "ids_invalid")
		return
	}

	if err := h.Catalog.ReorderDepartments(r.Context(), payload.IDs); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.ItemPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.DepartmentID == nil || *payload.DepartmentID == "" {
		respondError(w, http.StatusBadRequest, "departmentId_required")
		return
	}
	if payload.Title == nil {
		respondError(w, http.StatusBadRequest, "title_required")
		return
	}
	if payload.Price == nil {
		respondError(w, http.StatusBadRequest, "price_required")
		return
	}
	if *payload.Price < 0 {
		respondError(w, http.StatusBadRequest, "price_invalid")
		return
	}

	id, err := h.Catalog.CreateItem(r.Context(), payload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.ItemPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Price != nil && *payload.Price < 0 {
		respondError(w, http.StatusBadRequest, "price_invalid")
		return
	}

	if err := h.Catalog.UpdateItem(r.Context(), mux.Vars(r)["id"], payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) reorderItems(w http.ResponseWriter, r *http.Request) {
	var payload domain.ReorderPayload
	if err := decodeBody(r, &payload); err != nil || !validReorderIDs(payload.IDs) {
		respondError(w, http.StatusBadRequest, "ids_invalid")
		return
	}

	if err := h.Catalog.ReorderItems(r.Context(), mux.Vars(r)["departmentId"], payload.IDs); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) moveItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.MovePayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.ID == "" || payload.DepartmentID == "" {
		respondError(w, http.StatusBadRequest, "move_invalid")
		return
	}

	if err := h.Catalog.MoveItem(r.Context(), payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) createSupplementGroup(w http.ResponseWriter, r *http.Request) {
	var payload domain.SupplementGroupPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Title == nil {
		respondError(w, http.StatusBadRequest, "title_required")
		return
	}

	id, err := h.Catalog.CreateSupplementGroup(r.Context(), payload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) updateSupplementGroup(w http.ResponseWriter, r *http.Request) {
	var payload domain.SupplementGroupPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.Catalog.UpdateSupplementGroup(r.Context(), mux.Vars(r)["id"], payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) deleteSupplementGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteSupplementGroup(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) reorderSupplementGroups(w http.ResponseWriter, r *http.Request) {
	var payload domain.ReorderPayload
	if err := decodeBody(r, &payload); err != nil || !validReorderIDs(payload.IDs) {
		respondError(w, http.StatusBadRequest, "ids_invalid")
		return
	}

	if err := h.Catalog.ReorderSupplementGroups(r.Context(), payload.IDs); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) createSupplementItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.SupplementItemPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.GroupID == nil || *payload.GroupID == "" {
		respondError(w, http.StatusBadRequest, "groupId_required")
		return
	}
	if payload.Title == nil {
		respondError(w, http.StatusBadRequest, "title_required")
		return
	}
	if payload.Price == nil {
		respondError(w, http.StatusBadRequest, "price_required")
		return
	}
	if *payload.Price < 0 {
		respondError(w, http.StatusBadRequest, "price_invalid")
		return
	}

	id, err := h.Catalog.CreateSupplementItem(r.Context(), payload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) updateSupplementItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.SupplementItemPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Price != nil && *payload.Price < 0 {
		respondError(w, http.StatusBadRequest, "price_invalid")
		return
	}

	if err := h.Catalog.UpdateSupplementItem(r.Context(), mux.Vars(r)["id"], payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) deleteSupplementItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteSupplementItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) reorderSupplementItems(w http.ResponseWriter, r *http.Request) {
	var payload domain.ReorderPayload
	if err := decodeBody(r, &payload); err != nil || !validReorderIDs(payload.IDs) {
		respondError(w, http.StatusBadRequest, "ids_invalid")
		return
	}

	if err := h.Catalog.ReorderSupplementItems(r.Context(), mux.Vars(r)["groupId"], payload.IDs); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) moveSupplementItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.MovePayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.ID == "" || payload.GroupID == "" {
		respondError(w, http.StatusBadRequest, "move_invalid")
		return
	}

	if err := h.Catalog.MoveSupplementItem(r.Context(), payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) listAllergens(w http.ResponseWriter, r *http.Request) {
	allergens, err := h.Catalog.ListAllergens()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, allergens)
}

func (h *Handler) createAllergen(w http.ResponseWriter, r *http.Request) {
	var payload domain.AllergenPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if !isValidAllergenCode(payload.Code) {
		respondError(w, http.StatusBadRequest, "code_invalid")
		return
	}

	id, err := h.Catalog.CreateAllergen(r.Context(), payload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) deleteAllergen(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteAllergen(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
