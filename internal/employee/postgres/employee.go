package postgres

import (
	"time"

	"github.com/frahmantamala/homecare-staffing/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.Repository using GORM. Post-create
// and pre-update hooks are supplied at construction and run inside the same
// transaction as the employee write.
type EmployeeRepository struct {
	db         *gorm.DB
	postCreate []employee.CreateHook
	preUpdate  []employee.UpdateHook
}

func NewEmployeeRepository(db *gorm.DB, postCreate []employee.CreateHook, preUpdate []employee.UpdateHook) employee.Repository {
	return &EmployeeRepository{db: db, postCreate: postCreate, preUpdate: preUpdate}
}

func (r *EmployeeRepository) WithTx(tx *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: tx, postCreate: r.postCreate, preUpdate: r.preUpdate}
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		emp.CreatedAt = now
		emp.UpdatedAt = now
		if emp.HiredAt.IsZero() {
			emp.HiredAt = now
		}
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		for _, hook := range r.postCreate {
			if err := hook(tx, emp); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetByUsername(username string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("username = ?", username).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&employee.Employee{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, hook := range r.preUpdate {
			if err := hook(tx, emp); err != nil {
				return err
			}
		}
		emp.UpdatedAt = time.Now()
		return tx.Save(emp).Error
	})
}

func (r *EmployeeRepository) List(limit, offset int) ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Order("last_name ASC, first_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetProfile(employeeID int64) (*employee.UserProfile, error) {
	var profile employee.UserProfile
	err := r.db.Where("employee_id = ?", employeeID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
