package storage

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"menu-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func setupTestRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestReorderDepartments_Commit(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE departments SET position").
		WithArgs(0, "b").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE departments SET position").
		WithArgs(1, "a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReorderDepartments([]string{"b", "a"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderDepartments_UnknownIDRollsBack(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE departments SET position").
		WithArgs(0, "a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE departments SET position").
		WithArgs(1, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ReorderDepartments([]string{"a", "ghost"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderItems_ReparentsIntoDepartment(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE items SET department_id").
		WithArgs("dept-c", 0, "x").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE items SET department_id").
		WithArgs("dept-c", 1, "y").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReorderItems("dept-c", []string{"x", "y"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDepartment_TranslatesDuplicate(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("INSERT INTO departments").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateDepartment(&domain.Department{ID: "dept-1"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateItem_MissingDepartmentBecomesNoRows(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO items").
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err := repo.CreateItem(&domain.Item{ID: "it-1", DepartmentID: "ghost"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCreateItem_InsertsAllergenLinks(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO items").
		WithArgs("it-1", "dept-1", "Pa", "Pan", 2.5, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO item_allergens").
		WithArgs("it-1", "alg-g").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateItem(&domain.Item{
		ID:           "it-1",
		DepartmentID: "dept-1",
		Title:        domain.LocalizedText{CA: "Pa", ES: "Pan"},
		Price:        2.5,
		Allergens:    []string{"alg-g"},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDepartment_PartialUpdate(t *testing.T) {
	repo, mock := setupTestRepo(t)

	// Only position changes; both title columns stay NULL so COALESCE keeps
	// the stored values.
	order := 3
	mock.ExpectExec("UPDATE departments").
		WithArgs(nil, nil, order, "dept-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateDepartment("dept-1", domain.DepartmentPayload{Order: &order})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDepartment_NotFound(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("UPDATE departments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDepartment("ghost", domain.DepartmentPayload{})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteDepartment_ReportsAffected(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("DELETE FROM departments").
		WithArgs("dept-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.DeleteDepartment("dept-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCountAllergenRefs(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM item_allergens").
		WithArgs("alg-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM supplement_item_allergens").
		WithArgs("alg-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	items, supplements, err := repo.CountAllergenRefs("alg-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, items)
	assert.Equal(t, 1, supplements)
}

func TestCreateSheet_DeactivatesOthers(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE suggestion_sheets SET is_active").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("INSERT INTO suggestion_sheets").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	err := repo.CreateSheet(&domain.SuggestionSheet{ID: "sheet-1", IsActive: true})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveSheet_None(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM suggestion_sheets").
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.GetActiveSheet()
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTranslateError_PassesThroughUnknown(t *testing.T) {
	sentinel := errors.New("boom")
	assert.ErrorIs(t, translateError(sentinel), sentinel)
	assert.NoError(t, translateError(nil))
}
