package application

import (
	"time"

	"gorm.io/gorm"
)

// EmploymentApplication is one candidate submission. It is created by the
// public careers form and mutated exactly once by the review workflow; rows
// are never deleted.
//
// Invariant: Hired is non-nil iff Reviewed is true. A reviewed application
// is terminal; re-review would need an explicit reset workflow that does not
// exist here.
type EmploymentApplication struct {
	ID              int64   `json:"id" gorm:"primaryKey"`
	FirstName       string  `json:"first_name" gorm:"column:first_name;not null"`
	LastName        string  `json:"last_name" gorm:"column:last_name;not null"`
	Email           string  `json:"email" gorm:"column:email;not null"`
	ContactNumber   string  `json:"contact_number" gorm:"column:contact_number"`
	HomeAddress1    string  `json:"home_address1" gorm:"column:home_address1"`
	HomeAddress2    *string `json:"home_address2,omitempty" gorm:"column:home_address2"`
	City            string  `json:"city" gorm:"column:city"`
	State           string  `json:"state" gorm:"column:state"`
	Zipcode         string  `json:"zipcode" gorm:"column:zipcode"`
	Mobility        string  `json:"mobility" gorm:"column:mobility"`
	PriorExperience string  `json:"prior_experience" gorm:"column:prior_experience"`
	IPDHRegistered  bool    `json:"ipdh_registered" gorm:"column:ipdh_registered;default:false"`

	AvailabilityMonday    *bool `json:"availability_monday,omitempty" gorm:"column:availability_monday"`
	AvailabilityTuesday   *bool `json:"availability_tuesday,omitempty" gorm:"column:availability_tuesday"`
	AvailabilityWednesday *bool `json:"availability_wednesday,omitempty" gorm:"column:availability_wednesday"`
	AvailabilityThursday  *bool `json:"availability_thursday,omitempty" gorm:"column:availability_thursday"`
	AvailabilityFriday    *bool `json:"availability_friday,omitempty" gorm:"column:availability_friday"`
	AvailabilitySaturday  *bool `json:"availability_saturday,omitempty" gorm:"column:availability_saturday"`
	AvailabilitySunday    *bool `json:"availability_sunday,omitempty" gorm:"column:availability_sunday"`

	Reviewed      bool      `json:"reviewed" gorm:"column:reviewed;default:false"`
	Hired         *bool     `json:"hired,omitempty" gorm:"column:hired"`
	ReviewedBy    *int64    `json:"reviewed_by,omitempty" gorm:"column:reviewed_by"`
	DateSubmitted time.Time `json:"date_submitted" gorm:"column:date_submitted"`
}

func (EmploymentApplication) TableName() string {
	return "employment_applications"
}

// Mobility choices
const (
	MobilityCar       = "C"
	MobilityPublic    = "P"
	MobilityRideShare = "RS"
	MobilityOther     = "NA"
)

// Prior experience choices
const (
	ExperienceSenior = "S" // 12+ months
	ExperienceJunior = "J" // 3+ months
	ExperienceNew    = "N" // none
)

type Repository interface {
	Create(app *EmploymentApplication) error
	GetByID(id int64) (*EmploymentApplication, error)

	// GetByIDForUpdate reads the row under a row-level lock so concurrent
	// reviewers serialize; the loser of the race re-reads a terminal row and
	// fails the precondition check instead of overwriting the decision.
	GetByIDForUpdate(id int64) (*EmploymentApplication, error)

	Update(app *EmploymentApplication) error
	List(limit, offset int) ([]*EmploymentApplication, error)
	ListPending(limit, offset int) ([]*EmploymentApplication, error)

	WithTx(tx *gorm.DB) Repository
}
