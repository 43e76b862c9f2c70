package webui

import (
	"strings"

	"stafflane-system/internal/database/models"
)

// FormMode is the create/edit duality of the main form. The zero value is
// create mode; an edit target can only exist through EditMode, so there is
// no stray "id 0 means create" convention.
type FormMode struct {
	editing bool
	editID  int64
}

func CreateMode() FormMode {
	return FormMode{}
}

func EditMode(id int64) FormMode {
	return FormMode{editing: true, editID: id}
}

// EditTarget returns the employee being edited, if any.
func (m FormMode) EditTarget() (int64, bool) {
	return m.editID, m.editing
}

// TrainingModal is either closed or open for exactly one employee, holding
// that employee's fetched training list while open.
type TrainingModal struct {
	open       bool
	employeeID int64
	records    []models.TrainingRecord
}

func (m TrainingModal) OpenFor() (int64, bool) {
	return m.employeeID, m.open
}

func (m TrainingModal) Records() []models.TrainingRecord {
	return m.records
}

// State is the whole client-side UI state: form mode, filter text and the
// training modal. Requests never mutate it directly; transitions do.
//
// The embedded browser client (static/index.html) mirrors this model in
// JavaScript: its editId/searchTerm/modalEmployee variables and its filter
// must stay behaviorally identical to FormMode, Filter, TrainingModal and
// FilterEmployees. Change both together; the tests here are the contract.
type State struct {
	Mode   FormMode
	Filter string
	Modal  TrainingModal
}

func (s *State) StartEdit(id int64) {
	s.Mode = EditMode(id)
}

func (s *State) CancelEdit() {
	s.Mode = CreateMode()
}

func (s *State) SetFilter(term string) {
	s.Filter = term
}

func (s *State) OpenTraining(employeeID int64, records []models.TrainingRecord) {
	s.Modal = TrainingModal{open: true, employeeID: employeeID, records: records}
}

// RefreshTraining replaces the cached list while the modal stays open.
func (s *State) RefreshTraining(records []models.TrainingRecord) {
	if !s.Modal.open {
		return
	}
	s.Modal.records = records
}

func (s *State) CloseTraining() {
	s.Modal = TrainingModal{}
}

// Visible applies the current filter to an already-fetched employee list.
func (s *State) Visible(employees []models.Employee) []models.Employee {
	return FilterEmployees(employees, s.Filter)
}

// FilterEmployees keeps employees whose first name, last name, email or
// position contains term as a case-insensitive substring. An empty term
// keeps everyone. Filtering is purely local.
func FilterEmployees(employees []models.Employee, term string) []models.Employee {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return employees
	}

	matched := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.FirstName), term) ||
			strings.Contains(strings.ToLower(e.LastName), term) ||
			strings.Contains(strings.ToLower(e.Email), term) ||
			strings.Contains(strings.ToLower(e.Position), term) {
			matched = append(matched, e)
		}
	}
	return matched
}
