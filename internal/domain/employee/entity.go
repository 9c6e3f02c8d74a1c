package employee

import "time"

type Employee struct {
	ID               string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	ShiftID          *string
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)
