package webui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stafflane-system/internal/database/models"
)

func sampleEmployees() []models.Employee {
	return []models.Employee{
		{ID: 1, FirstName: "Anan", LastName: "P", Email: "anan@x.com", Position: "Engineer"},
		{ID: 2, FirstName: "Somsak", LastName: "T", Email: "somsak@x.com", Position: "Manager"},
	}
}

func TestFilterMatchesCaseInsensitively(t *testing.T) {
	matched := FilterEmployees(sampleEmployees(), "eng")
	require.Len(t, matched, 1)
	assert.Equal(t, "Anan", matched[0].FirstName)

	matched = FilterEmployees(sampleEmployees(), "ENG")
	require.Len(t, matched, 1)
	assert.Equal(t, "Anan", matched[0].FirstName)
}

func TestFilterNoMatchIsEmpty(t *testing.T) {
	matched := FilterEmployees(sampleEmployees(), "zzz")
	assert.Empty(t, matched)
}

func TestFilterClearedRestoresFullList(t *testing.T) {
	state := &State{}
	state.SetFilter("zzz")
	assert.Empty(t, state.Visible(sampleEmployees()))

	state.SetFilter("")
	assert.Len(t, state.Visible(sampleEmployees()), 2)
}

func TestFilterCoversLastNameAndEmail(t *testing.T) {
	matched := FilterEmployees(sampleEmployees(), "somsak@")
	require.Len(t, matched, 1)
	assert.Equal(t, int64(2), matched[0].ID)

	matched = FilterEmployees(sampleEmployees(), "t")
	require.Len(t, matched, 1)
	assert.Equal(t, "Somsak", matched[0].FirstName)
}

func TestFormModeTransitions(t *testing.T) {
	state := &State{}

	_, editing := state.Mode.EditTarget()
	assert.False(t, editing, "zero value must be create mode")

	state.StartEdit(5)
	id, editing := state.Mode.EditTarget()
	assert.True(t, editing)
	assert.Equal(t, int64(5), id)

	state.CancelEdit()
	_, editing = state.Mode.EditTarget()
	assert.False(t, editing)
}

func TestTrainingModalLifecycle(t *testing.T) {
	state := &State{}

	_, open := state.Modal.OpenFor()
	assert.False(t, open)

	records := []models.TrainingRecord{{ID: 1, CourseName: "Go Fundamentals", TrainingDate: "2024-02-01", EmployeeID: 3}}
	state.OpenTraining(3, records)

	id, open := state.Modal.OpenFor()
	assert.True(t, open)
	assert.Equal(t, int64(3), id)
	assert.Len(t, state.Modal.Records(), 1)

	more := append(records, models.TrainingRecord{ID: 2, CourseName: "SQL Basics", TrainingDate: "2024-03-01", EmployeeID: 3})
	state.RefreshTraining(more)
	assert.Len(t, state.Modal.Records(), 2)

	state.CloseTraining()
	_, open = state.Modal.OpenFor()
	assert.False(t, open)
	assert.Empty(t, state.Modal.Records())
}

func TestRefreshTrainingIgnoredWhenClosed(t *testing.T) {
	state := &State{}
	state.RefreshTraining([]models.TrainingRecord{{ID: 1}})

	_, open := state.Modal.OpenFor()
	assert.False(t, open)
	assert.Empty(t, state.Modal.Records())
}
