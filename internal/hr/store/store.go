package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stafflane-system/internal/database/models"
)

// ErrEmployeeNotFound reports an update against an identifier with no
// matching row.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeUpdate carries the five mutable employee fields. The profile
// picture is deliberately absent: edits never touch the photo.
type EmployeeUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Position  string
	Salary    decimal.Decimal
}

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *GormStore) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	return s.db.WithContext(ctx).Create(employee).Error
}

func (s *GormStore) UpdateEmployee(ctx context.Context, id int64, update EmployeeUpdate) (models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, err
	}

	employee.FirstName = update.FirstName
	employee.LastName = update.LastName
	employee.Email = update.Email
	employee.Position = update.Position
	employee.Salary = update.Salary

	if err := s.db.WithContext(ctx).Save(&employee).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

// DeleteEmployee removes the employee together with its training rows in
// one transaction. Deleting an absent identifier is a no-op success.
func (s *GormStore) DeleteEmployee(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.TrainingRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, id).Error
	})
}

func (s *GormStore) ListTraining(ctx context.Context, employeeID int64) ([]models.TrainingRecord, error) {
	var records []models.TrainingRecord
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) AddTraining(ctx context.Context, record *models.TrainingRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}
