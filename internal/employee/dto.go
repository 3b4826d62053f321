package employee

import "github.com/frahmantamala/homecare-staffing/internal/compliance"

// EmployeeDetail bundles the identity record with its compliance state for
// the detail view.
type EmployeeDetail struct {
	Employee   *Employee          `json:"employee"`
	Compliance *compliance.Record `json:"compliance,omitempty"`
}

type RosterResponse struct {
	Employees []*Employee `json:"employees"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}
