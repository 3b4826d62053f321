package postgres

import (
	"github.com/frahmantamala/homecare-staffing/internal/auth"
	"github.com/frahmantamala/homecare-staffing/internal/employee"
)

// Repository adapts the employee repository to auth.EmployeeStore. Password
// updates go through employee.Repository.Update so the pre-update lifecycle
// hook sees the hash change.
type Repository struct {
	employees employee.Repository
}

func NewRepository(employees employee.Repository) auth.EmployeeStore {
	return &Repository{employees: employees}
}

func (r *Repository) GetCredentials(username string) (int64, string, bool, error) {
	emp, err := r.employees.GetByUsername(username)
	if err != nil {
		return 0, "", false, err
	}
	return emp.ID, emp.PasswordHash, emp.IsActive, nil
}

func (r *Repository) GetUser(userID int64) (*auth.User, error) {
	emp, err := r.employees.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return &auth.User{
		ID:          emp.ID,
		Username:    emp.Username,
		FirstName:   emp.FirstName,
		IsActive:    emp.IsActive,
		IsSuperuser: emp.IsSuperuser,
	}, nil
}

func (r *Repository) ForcePasswordChange(userID int64) (bool, error) {
	profile, err := r.employees.GetProfile(userID)
	if err != nil {
		return false, err
	}
	return profile.ForcePasswordChange, nil
}

func (r *Repository) UpdatePassword(userID int64, newHash string) error {
	emp, err := r.employees.GetByID(userID)
	if err != nil {
		return err
	}
	emp.PasswordHash = newHash
	return r.employees.Update(emp)
}
