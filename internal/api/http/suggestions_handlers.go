package httpapi

import (
	"net/http"
	"time"

	"menu-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) registerSuggestionRoutes(r *mux.Router) {
	r.HandleFunc("/suggestions/current", h.getCurrentSuggestions).Methods("GET")
	r.HandleFunc("/suggestions/sheets", h.listSheets).Methods("GET")
	r.HandleFunc("/suggestions/sheets", h.createSheet).Methods("POST")
	r.HandleFunc("/suggestions/sheets/{id}", h.updateSheet).Methods("PATCH")
	r.HandleFunc("/suggestions/sheets/{id}", h.deleteSheet).Methods("DELETE")

	r.HandleFunc("/suggestions/items", h.createSuggestionItem).Methods("POST")
	r.HandleFunc("/suggestions/items/{id}", h.updateSuggestionItem).Methods("PATCH")
	r.HandleFunc("/suggestions/items/{id}", h.deleteSuggestionItem).Methods("DELETE")
	r.HandleFunc("/suggestions/reorder/{sheetId}/{section}", h.reorderSuggestionItems).Methods("POST")
	r.HandleFunc("/suggestions/move", h.moveSuggestionItem).Methods("POST")
}

// parseDate accepts plain dates from the admin UI and full timestamps from
// API clients.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *Handler) listSheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.Suggestions.ListSheets()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sheets)
}

func (h *Handler) createSheet(w http.ResponseWriter, r *http.Request) {
	var payload domain.SheetPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.DateFrom == nil || payload.DateTo == nil {
		respondError(w, http.StatusBadRequest, "dates_required")
		return
	}
	dateFrom, err := parseDate(*payload.DateFrom)
	if err != nil {
		respondError(w, http.StatusBadRequest, "dates_invalid")
		return
	}
	dateTo, err := parseDate(*payload.DateTo)
	if err != nil {
		respondError(w, http.StatusBadRequest, "dates_invalid")
		return
	}

	// New sheets go live immediately unless the client says otherwise.
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	id, err := h.Suggestions.CreateSheet(r.Context(), dateFrom, dateTo, isActive)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) updateSheet(w http.ResponseWriter, r *http.Request) {
	var payload domain.SheetPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	var dateFrom, dateTo *time.Time
	if payload.DateFrom != nil {
		t, err := parseDate(*payload.DateFrom)
		if err != nil {
			respondError(w, http.StatusBadRequest, "dates_invalid")
			return
		}
		dateFrom = &t
	}
	if payload.DateTo != nil {
		t, err := parseDate(*payload.DateTo)
		if err != nil {
			respondError(w, http.StatusBadRequest, "dates_invalid")
			return
		}
		dateTo = &t
	}

	if err := h.Suggestions.UpdateSheet(r.Context(), mux.Vars(r)["id"], dateFrom, dateTo, payload.IsActive); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) deleteSheet(w http.ResponseWriter, r *http.Request) {
	if err := h.Suggestions.DeleteSheet(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) createSuggestionItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.SuggestionItemPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.SheetID == nil || *payload.SheetID == "" {
		respondError(w, http.StatusBadRequest, "sheetId_required")
		return
	}
	if payload.Section == nil || !domain.ValidSection(*payload.Section) {
		respondError(w, http.StatusBadRequest, "section_invalid")
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

	id, err := h.Suggestions.CreateItem(r.Context(), payload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) updateSuggestionItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.SuggestionItemPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Section != nil && !domain.ValidSection(*payload.Section) {
		respondError(w, http.StatusBadRequest, "section_invalid")
		return
	}
	if payload.Price != nil && *payload.Price < 0 {
		respondError(w, http.StatusBadRequest, "price_invalid")
		return
	}

	if err := h.Suggestions.UpdateItem(r.Context(), mux.Vars(r)["id"], payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) deleteSuggestionItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Suggestions.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) reorderSuggestionItems(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !domain.ValidSection(vars["section"]) {
		respondError(w, http.StatusBadRequest, "section_invalid")
		return
	}

	var payload domain.ReorderPayload
	if err := decodeBody(r, &payload); err != nil || !validReorderIDs(payload.IDs) {
		respondError(w, http.StatusBadRequest, "ids_invalid")
		return
	}

	if err := h.Suggestions.Reorder(r.Context(), vars["sheetId"], vars["section"], payload.IDs); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) moveSuggestionItem(w http.ResponseWriter, r *http.Request) {
	var payload domain.MovePayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.ID == "" || payload.SheetID == "" || !domain.ValidSection(payload.Section) {
		respondError(w, http.StatusBadRequest, "move_invalid")
		return
	}

	if err := h.Suggestions.MoveItem(r.Context(), payload); err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
