package employee

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Employee is the authoritative identity record for a staff member able to
// authenticate. Rows are created either by administrative provisioning (seed
// command) or by the applicant review workflow on hire.
type Employee struct {
	ID             int64      `json:"id" gorm:"primaryKey"`
	Username       string     `json:"username" gorm:"column:username;uniqueIndex;not null"`
	PasswordHash   string     `json:"-" gorm:"column:password_hash;not null"`
	FirstName      string     `json:"first_name" gorm:"column:first_name;not null"`
	LastName       string     `json:"last_name" gorm:"column:last_name;not null"`
	Email          string     `json:"email" gorm:"column:email;not null"`
	Phone          string     `json:"phone" gorm:"column:phone"`
	StreetAddress1 string     `json:"street_address1" gorm:"column:street_address1"`
	StreetAddress2 *string    `json:"street_address2,omitempty" gorm:"column:street_address2"`
	City           string     `json:"city" gorm:"column:city"`
	State          string     `json:"state" gorm:"column:state"`
	Zipcode        string     `json:"zipcode" gorm:"column:zipcode"`
	IsActive       bool       `json:"is_active" gorm:"column:is_active;default:true"`
	IsSuperuser    bool       `json:"is_superuser" gorm:"column:is_superuser;default:false"`
	HiredAt        time.Time  `json:"hired_at" gorm:"column:hired_at"`
	TerminatedAt   *time.Time `json:"terminated_at,omitempty" gorm:"column:terminated_at"`
	CreatedAt      time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// UserProfile holds per-account state that is not identity: the forced
// password change flag for freshly provisioned accounts and the timestamp of
// the last password change. Exactly one profile exists per employee.
type UserProfile struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	EmployeeID          int64     `json:"employee_id" gorm:"column:employee_id;uniqueIndex;not null"`
	ForcePasswordChange bool      `json:"force_password_change" gorm:"column:force_password_change;default:true"`
	LastPasswordChange  time.Time `json:"last_password_change" gorm:"column:last_password_change"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// DeriveUsername builds the candidate username for a new hire: lowercased
// first and last name joined by a dot, with interior spaces collapsed to
// dots ("Mary Jane", "Van Der Berg" -> "mary.jane.van.der.berg").
// Disambiguation against existing rows is the caller's job.
func DeriveUsername(firstName, lastName string) string {
	first := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(firstName)), " ", ".")
	last := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lastName)), " ", ".")
	return first + "." + last
}

// CreateHook runs inside the employee-insert transaction, after the row is
// written. A returned error rolls the whole transaction back.
type CreateHook func(tx *gorm.DB, emp *Employee) error

// UpdateHook runs inside the employee-update transaction, before the row is
// written. Hooks receive the incoming state and may read the stored one.
type UpdateHook func(tx *gorm.DB, incoming *Employee) error

type Repository interface {
	Create(emp *Employee) error
	GetByID(id int64) (*Employee, error)
	GetByUsername(username string) (*Employee, error)
	UsernameExists(username string) (bool, error)
	Update(emp *Employee) error
	List(limit, offset int) ([]*Employee, error)
	GetProfile(employeeID int64) (*UserProfile, error)

	// WithTx returns a repository bound to an open transaction so callers can
	// compose the employee write with their own mutations atomically.
	WithTx(tx *gorm.DB) Repository
}

var ErrNotFound = errors.New("employee not found")
