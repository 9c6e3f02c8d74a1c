package employee

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// EmployeeRepository is the read side of the employee master consumed by
// attendance and payroll. Writes belong to the master-data screens.
type EmployeeRepository interface {
	GetByEmployeeCode(ctx context.Context, companyID string, employeeCode string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
