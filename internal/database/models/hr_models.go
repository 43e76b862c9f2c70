package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Salary goes over the wire as a bare JSON number, matching what the
	// web client and the API consumers expect.
	decimal.MarshalJSONWithoutQuotes = true
}

type Employee struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string          `gorm:"not null" json:"first_name"`
	LastName       string          `gorm:"not null" json:"last_name"`
	Email          string          `gorm:"not null" json:"email"`
	Position       string          `gorm:"not null" json:"position"`
	Salary         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"salary"`
	ProfilePicture *string         `json:"profile_picture"`

	TrainingRecords []TrainingRecord `gorm:"foreignKey:EmployeeID" json:"-"`
}

// TrainingRecord keeps one course completion per row. Dates travel as
// YYYY-MM-DD strings, validated at the request boundary.
type TrainingRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseName   string `gorm:"not null" json:"course_name"`
	TrainingDate string `gorm:"not null" json:"training_date"`
	EmployeeID   int64  `gorm:"not null;index" json:"employee_id"`
}

func (TrainingRecord) TableName() string {
	return "training_history"
}
