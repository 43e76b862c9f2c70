package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stafflane-system/internal/database/models"
)

func TestListTrainingFiltersByEmployee(t *testing.T) {
	history := map[int64][]models.TrainingRecord{
		1: {
			{ID: 1, CourseName: "Go Fundamentals", TrainingDate: "2024-02-01", EmployeeID: 1},
			{ID: 3, CourseName: "SQL Basics", TrainingDate: "2024-03-15", EmployeeID: 1},
		},
		2: {
			{ID: 2, CourseName: "First Aid", TrainingDate: "2024-02-20", EmployeeID: 2},
		},
	}

	r := newTestRouter(t, stubStore{
		listTrainingFn: func(ctx context.Context, employeeID int64) ([]models.TrainingRecord, error) {
			return history[employeeID], nil
		},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employees/1/training", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var forFirst []models.TrainingRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&forFirst))
	require.Len(t, forFirst, 2)
	for _, record := range forFirst {
		assert.Equal(t, int64(1), record.EmployeeID)
		assert.NotEqual(t, "First Aid", record.CourseName)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employees/2/training", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var forSecond []models.TrainingRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&forSecond))
	require.Len(t, forSecond, 1)
	assert.Equal(t, "First Aid", forSecond[0].CourseName)
}

func TestListTrainingEmptyIsArray(t *testing.T) {
	r := newTestRouter(t, stubStore{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employees/5/training", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestAddTraining(t *testing.T) {
	r := newTestRouter(t, stubStore{
		addTrainingFn: func(ctx context.Context, record *models.TrainingRecord) error {
			record.ID = 9
			return nil
		},
	})

	payload := `{"course_name":"Forklift Safety","training_date":"2024-06-30"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employees/3/training", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var record models.TrainingRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&record))
	assert.Equal(t, int64(9), record.ID)
	assert.Equal(t, int64(3), record.EmployeeID)
	assert.Equal(t, "Forklift Safety", record.CourseName)
}

func TestAddTrainingValidation(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantBody string
	}{
		{
			name:     "missing course name",
			payload:  `{"training_date":"2024-06-30"}`,
			wantBody: "missing or invalid training fields",
		},
		{
			name:     "malformed date",
			payload:  `{"course_name":"Go","training_date":"June 30"}`,
			wantBody: "training_date must be in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, stubStore{
				addTrainingFn: func(ctx context.Context, record *models.TrainingRecord) error {
					t.Fatal("store must not be called for invalid input")
					return nil
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/employees/3/training", bytes.NewBufferString(tt.payload))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
