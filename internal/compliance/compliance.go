package compliance

import (
	"errors"
	"time"
)

// Record tracks onboarding and regulatory completion state for one employee.
// Exactly one record exists per employee; it is created by the employee
// post-create hook in the same transaction as the employee row.
type Record struct {
	ID                    int64      `json:"id" gorm:"primaryKey"`
	EmployeeID            int64      `json:"employee_id" gorm:"column:employee_id;uniqueIndex;not null"`
	APSCheckPassed        bool       `json:"aps_check_passed" gorm:"column:aps_check_passed;default:false"`
	APSCheckVerifiedAt    *time.Time `json:"aps_check_verified_at,omitempty" gorm:"column:aps_check_verified_at"`
	HHSOIGExclusionary    bool       `json:"hhs_oig_exclusionary" gorm:"column:hhs_oig_exclusionary;default:false"`
	IDPHBackgroundCheck   bool       `json:"idph_background_check" gorm:"column:idph_background_check;default:false"`
	TrainingExempt        bool       `json:"training_exempt" gorm:"column:training_exempt;default:false"`
	PreServiceCompletedAt *time.Time `json:"pre_service_completed_at,omitempty" gorm:"column:pre_service_completed_at"`
	InCompliance          bool       `json:"in_compliance" gorm:"column:in_compliance;default:false"`
	Onboarded             bool       `json:"onboarded" gorm:"column:onboarded;default:false"`
	CreatedAt             time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt             time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "compliance_records"
}

var ErrRecordNotFound = errors.New("compliance record not found")

type Repository interface {
	GetByEmployeeID(employeeID int64) (*Record, error)
	Update(record *Record) error
}
