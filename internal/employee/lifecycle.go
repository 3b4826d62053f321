package employee

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/homecare-staffing/internal/compliance"
	"gorm.io/gorm"
)

// Lifecycle provides the account provisioning hooks wired into the employee
// repository at construction. Keeping them as injected hook lists (rather
// than ambient global registration) makes invocation order and presence
// explicit and testable.
type Lifecycle struct {
	logger *slog.Logger
}

func NewLifecycle(logger *slog.Logger) *Lifecycle {
	return &Lifecycle{logger: logger}
}

// ProvisionAccount is the post-create hook: every new employee gets exactly
// one user profile (with a forced password change pending) and one compliance
// record, written in the same transaction as the employee row. A second
// invocation for the same employee trips the unique constraint on the 1:1
// relation; that error is deliberately not suppressed here.
func (l *Lifecycle) ProvisionAccount(tx *gorm.DB, emp *Employee) error {
	now := time.Now()

	profile := &UserProfile{
		EmployeeID:          emp.ID,
		ForcePasswordChange: true,
		LastPasswordChange:  now,
		CreatedAt:           now,
	}
	if err := tx.Create(profile).Error; err != nil {
		return err
	}
	l.logger.Debug("user profile provisioned", "employee_id", emp.ID, "username", emp.Username)

	record := &compliance.Record{
		EmployeeID: emp.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := tx.Create(record).Error; err != nil {
		return err
	}
	l.logger.Debug("compliance record provisioned", "employee_id", emp.ID, "username", emp.Username)

	return nil
}

// DetectPasswordChange is the pre-update hook: when the incoming password
// hash differs from the stored one for the same username, the forced-change
// flag on the profile is cleared and the change timestamp stamped. An update
// for a username with no stored row is an expected non-error condition (for
// example a stub that was never persisted) and is a silent no-op.
func (l *Lifecycle) DetectPasswordChange(tx *gorm.DB, incoming *Employee) error {
	var current Employee
	err := tx.Where("username = ?", incoming.Username).First(&current).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	if current.PasswordHash == incoming.PasswordHash {
		return nil
	}

	err = tx.Model(&UserProfile{}).
		Where("employee_id = ?", current.ID).
		Updates(map[string]interface{}{
			"force_password_change": false,
			"last_password_change":  time.Now(),
		}).Error
	if err != nil {
		return err
	}

	l.logger.Info("password change detected, forced-change flag cleared",
		"employee_id", current.ID,
		"username", current.Username)
	return nil
}
