package intake

import (
	"time"

	"gorm.io/gorm"
)

// ClientInterestSubmission is a prospective client's service inquiry from the
// public website. Staff review submissions and follow up out of band; the
// record only tracks whether someone has looked at it.
type ClientInterestSubmission struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	FirstName        string    `json:"first_name" gorm:"column:first_name;not null"`
	LastName         string    `json:"last_name" gorm:"column:last_name;not null"`
	Email            string    `json:"email" gorm:"column:email;not null"`
	ContactNumber    string    `json:"contact_number" gorm:"column:contact_number"`
	HomeAddress1     string    `json:"home_address1" gorm:"column:home_address1"`
	HomeAddress2     *string   `json:"home_address2,omitempty" gorm:"column:home_address2"`
	City             string    `json:"city" gorm:"column:city"`
	State            string    `json:"state" gorm:"column:state"`
	Zipcode          string    `json:"zipcode" gorm:"column:zipcode"`
	InsuranceCarrier string    `json:"insurance_carrier" gorm:"column:insurance_carrier"`
	DesiredService   string    `json:"desired_service" gorm:"column:desired_service"`
	Reviewed         bool      `json:"reviewed" gorm:"column:reviewed;default:false"`
	ReviewedBy       *int64    `json:"reviewed_by,omitempty" gorm:"column:reviewed_by"`
	DateSubmitted    time.Time `json:"date_submitted" gorm:"column:date_submitted"`
}

func (ClientInterestSubmission) TableName() string {
	return "client_interest_submissions"
}

// Desired service choices
const (
	ServiceIntermittent    = "I"
	ServiceNonMedical      = "NM"
	ServiceMedicalSocial   = "MSW"
	ServiceOccupational    = "OT"
	ServicePhysicalTherapy = "PT"
	ServiceOther           = "NA"
)

type Repository interface {
	Create(sub *ClientInterestSubmission) error
	GetByID(id int64) (*ClientInterestSubmission, error)
	Update(sub *ClientInterestSubmission) error
	List(limit, offset int) ([]*ClientInterestSubmission, error)
	ListUnreviewed(limit, offset int) ([]*ClientInterestSubmission, error)

	WithTx(tx *gorm.DB) Repository
}
