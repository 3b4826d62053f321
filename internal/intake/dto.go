package intake

import (
	"errors"
	"strings"
)

type CreateSubmissionDTO struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	ContactNumber    string  `json:"contact_number"`
	HomeAddress1     string  `json:"home_address1"`
	HomeAddress2     *string `json:"home_address2,omitempty"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zipcode          string  `json:"zipcode"`
	InsuranceCarrier string  `json:"insurance_carrier"`
	DesiredService   string  `json:"desired_service"`
}

var validServices = map[string]bool{
	ServiceIntermittent: true, ServiceNonMedical: true, ServiceMedicalSocial: true,
	ServiceOccupational: true, ServicePhysicalTherapy: true, ServiceOther: true,
}

func (dto CreateSubmissionDTO) Validate() error {
	if strings.TrimSpace(dto.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(dto.LastName) == "" {
		return errors.New("last name is required")
	}
	if dto.Email == "" || !strings.Contains(dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if !validServices[dto.DesiredService] {
		return errors.New("desired service must be one of I, NM, MSW, OT, PT, NA")
	}
	return nil
}

type ListResponse struct {
	Submissions []*ClientInterestSubmission `json:"submissions"`
	Limit       int                         `json:"limit"`
	Offset      int                         `json:"offset"`
}
