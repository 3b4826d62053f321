package application

import (
	"errors"
	"strings"
)

// CreateApplicationDTO is the public careers-form payload.
type CreateApplicationDTO struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	ContactNumber   string  `json:"contact_number"`
	HomeAddress1    string  `json:"home_address1"`
	HomeAddress2    *string `json:"home_address2,omitempty"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Zipcode         string  `json:"zipcode"`
	Mobility        string  `json:"mobility"`
	PriorExperience string  `json:"prior_experience"`
	IPDHRegistered  bool    `json:"ipdh_registered"`

	AvailabilityMonday    *bool `json:"availability_monday,omitempty"`
	AvailabilityTuesday   *bool `json:"availability_tuesday,omitempty"`
	AvailabilityWednesday *bool `json:"availability_wednesday,omitempty"`
	AvailabilityThursday  *bool `json:"availability_thursday,omitempty"`
	AvailabilityFriday    *bool `json:"availability_friday,omitempty"`
	AvailabilitySaturday  *bool `json:"availability_saturday,omitempty"`
	AvailabilitySunday    *bool `json:"availability_sunday,omitempty"`
}

var validMobility = map[string]bool{
	MobilityCar: true, MobilityPublic: true, MobilityRideShare: true, MobilityOther: true,
}

var validExperience = map[string]bool{
	ExperienceSenior: true, ExperienceJunior: true, ExperienceNew: true,
}

func (dto CreateApplicationDTO) Validate() error {
	if strings.TrimSpace(dto.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(dto.LastName) == "" {
		return errors.New("last name is required")
	}
	if dto.Email == "" || !strings.Contains(dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if !validMobility[dto.Mobility] {
		return errors.New("mobility must be one of C, P, RS, NA")
	}
	if !validExperience[dto.PriorExperience] {
		return errors.New("prior experience must be one of S, J, N")
	}
	return nil
}

// HireResult is handed back to the caller exactly once. The plaintext
// credential is never persisted; after this response it exists only in the
// onboarding email.
type HireResult struct {
	EmployeeID        int64  `json:"employee_id"`
	Username          string `json:"username"`
	PlaintextPassword string `json:"temporary_password"`
}

type ListResponse struct {
	Applications []*EmploymentApplication `json:"applications"`
	Limit        int                      `json:"limit"`
	Offset       int                      `json:"offset"`
}
