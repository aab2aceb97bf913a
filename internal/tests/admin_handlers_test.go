package tests

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "menu-svc/internal/api/http"
	"menu-svc/internal/domain"
	"menu-svc/internal/mocks"
	"menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAdminRouter(t *testing.T) (*mux.Router, *mocks.CatalogServiceInterface, *mocks.SuggestionServiceInterface) {
	catalogSvc := mocks.NewCatalogServiceInterface(t)
	suggestionSvc := mocks.NewSuggestionServiceInterface(t)
	handler := &httpapi.Handler{Catalog: catalogSvc, Suggestions: suggestionSvc}
	r := mux.NewRouter()
	handler.RegisterAdminRoutes(r.PathPrefix("/api/admin").Subrouter())
	return r, catalogSvc, suggestionSvc
}

func doRequest(router *mux.Router, method, path, payload string) *httptest.ResponseRecorder {
	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(payload))
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAdmin_createDepartment(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"title":{"ca":"Entrants","es":"Entrantes"}}`,
			prepareMocks: func() {
				catalogSvc.On("CreateDepartment", mock.Anything, mock.Anything).
					Return("dept-1", nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"dept-1"`,
		},
		{
			name:         "missing_title",
			payload:      `{}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "title_required",
		},
		{
			name:         "unknown_field",
			payload:      `{"title":{"ca":"x","es":"x"},"bogus":1}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid_json",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/admin/departments", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestAdmin_updateDepartment_NotFound(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	catalogSvc.On("UpdateDepartment", mock.Anything, "ghost", mock.Anything).
		Return(service.ErrNotFound).Once()

	recorder := doRequest(router, "PATCH", "/api/admin/departments/ghost", `{"title":{"ca":"x","es":"x"}}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "not_found")
}

func TestAdmin_createItem(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"departmentId":"dept-1","title":{"ca":"Pa","es":"Pan"},"price":2.5,"allergens":["G"]}`,
			prepareMocks: func() {
				catalogSvc.On("CreateItem", mock.Anything, mock.Anything).
					Return("it-1", nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"it-1"`,
		},
		{
			name:         "missing_department",
			payload:      `{"title":{"ca":"Pa","es":"Pan"},"price":2.5}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "departmentId_required",
		},
		{
			name:         "missing_price",
			payload:      `{"departmentId":"dept-1","title":{"ca":"Pa","es":"Pan"}}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "price_required",
		},
		{
			name:         "negative_price",
			payload:      `{"departmentId":"dept-1","title":{"ca":"Pa","es":"Pan"},"price":-1}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "price_invalid",
		},
		{
			name:    "unknown_department",
			payload: `{"departmentId":"ghost","title":{"ca":"Pa","es":"Pan"},"price":2.5}`,
			prepareMocks: func() {
				catalogSvc.On("CreateItem", mock.Anything, mock.Anything).
					Return("", service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "not_found",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/admin/items", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestAdmin_reorderItems(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"ids":["b","a"]}`,
			prepareMocks: func() {
				catalogSvc.On("ReorderItems", mock.Anything, "dept-1", []string{"b", "a"}).
					Return(nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "empty_ids",
			payload:      `{"ids":[]}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "blank_id",
			payload:      `{"ids":["a",""]}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "foreign_id",
			payload: `{"ids":["a","ghost"]}`,
			prepareMocks: func() {
				catalogSvc.On("ReorderItems", mock.Anything, "dept-1", []string{"a", "ghost"}).
					Return(service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/admin/reorder/items/dept-1", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestAdmin_moveItem(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"id":"x","index":0,"departmentId":"dept-c"}`,
			prepareMocks: func() {
				catalogSvc.On("MoveItem", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing_destination",
			payload:      `{"id":"x","index":0}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/admin/move/items", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestAdmin_createAllergen(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"code":"FS","label":{"ca":"Fruits secs","es":"Frutos secos"}}`,
			prepareMocks: func() {
				catalogSvc.On("CreateAllergen", mock.Anything, mock.Anything).
					Return("alg-1", nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"alg-1"`,
		},
		{
			name:         "empty_code",
			payload:      `{"code":"","label":{"ca":"x","es":"x"}}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "code_invalid",
		},
		{
			name:         "code_too_long",
			payload:      `{"code":"ABCD","label":{"ca":"x","es":"x"}}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "code_invalid",
		},
		{
			name:         "code_not_alnum",
			payload:      `{"code":"G!","label":{"ca":"x","es":"x"}}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "code_invalid",
		},
		{
			name:    "duplicate_code",
			payload: `{"code":"G","label":{"ca":"Gluten","es":"Gluten"}}`,
			prepareMocks: func() {
				catalogSvc.On("CreateAllergen", mock.Anything, mock.Anything).
					Return("", service.ErrCodeExists).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: "code_exists",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/admin/allergens", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestAdmin_deleteAllergen_InUse(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	catalogSvc.On("DeleteAllergen", mock.Anything, "alg-1").
		Return(&service.AllergenInUseError{ItemsUsing: 2, SupplementsUsing: 1}).Once()

	recorder := doRequest(router, "DELETE", "/api/admin/allergens/alg-1", "")
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "allergen_in_use")
	assert.Contains(t, recorder.Body.String(), `"itemsUsing":2`)
	assert.Contains(t, recorder.Body.String(), `"supplementsUsing":1`)
}

func TestAdmin_internalErrorIsOpaque(t *testing.T) {
	router, catalogSvc, _ := setupAdminRouter(t)

	catalogSvc.On("DeleteItem", mock.Anything, "it-1").
		Return(errors.New("pq: connection refused")).Once()

	recorder := doRequest(router, "DELETE", "/api/admin/items/it-1", "")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "internal_error")
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}

func TestAdmin_createSheet(t *testing.T) {
	router, _, suggestionSvc := setupAdminRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "plain_dates_default_active",
			payload: `{"dateFrom":"2025-03-10","dateTo":"2025-03-16"}`,
			prepareMocks: func() {
				from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
				to := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
				suggestionSvc.On("CreateSheet", mock.Anything, from, to, true).
					Return("sheet-1", nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"sheet-1"`,
		},
		{
			name:    "explicit_inactive",
			payload: `{"dateFrom":"2025-03-10","dateTo":"2025-03-16","isActive":false}`,
			prepareMocks: func() {
				suggestionSvc.On("CreateSheet", mock.Anything, mock.Anything, mock.Anything, false).
					Return("sheet-2", nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"sheet-2"`,
		},
		{
			name:         "missing_dates",
			payload:      `{"isActive":true}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "dates_required",
		},
		{
			name:         "unparseable_date",
			payload:      `{"dateFrom":"soon","dateTo":"2025-03-16"}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "dates_invalid",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/admin/suggestions/sheets", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestAdmin_createSuggestionItem(t *testing.T) {
	router, _, suggestionSvc := setupAdminRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"sheetId":"sheet-1","section":"FOOD","title":{"ca":"Arros","es":"Arroz"},"price":12.5}`,
			prepareMocks: func() {
				suggestionSvc.On("CreateItem", mock.Anything, mock.Anything).
					Return("sug-1", nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"sug-1"`,
		},
		{
			name:         "bad_section",
			payload:      `{"sheetId":"sheet-1","section":"BRUNCH","title":{"ca":"x","es":"x"},"price":1}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "section_invalid",
		},
		{
			name:         "missing_sheet",
			payload:      `{"section":"FOOD","title":{"ca":"x","es":"x"},"price":1}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "sheetId_required",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := doRequest(router, "POST", "/api/admin/suggestions/items", testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestAdmin_reorderSuggestionItems_BadSection(t *testing.T) {
	router, _, _ := setupAdminRouter(t)

	recorder := doRequest(router, "POST", "/api/admin/suggestions/reorder/sheet-1/BRUNCH", `{"ids":["a"]}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "section_invalid")
}

func TestAdmin_moveSuggestionItem(t *testing.T) {
	router, _, suggestionSvc := setupAdminRouter(t)

	var moved domain.MovePayload
	suggestionSvc.On("MoveItem", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		moved = args.Get(1).(domain.MovePayload)
	}).Return(nil).Once()

	recorder := doRequest(router, "POST", "/api/admin/suggestions/move",
		`{"id":"f1","beforeId":"d1","sheetId":"sheet-1","section":"DESSERT"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "f1", moved.ID)
	assert.Equal(t, "d1", *moved.BeforeID)
	assert.Equal(t, domain.SectionDessert, moved.Section)
}
