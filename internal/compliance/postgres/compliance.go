package postgres

import (
	"time"

	"github.com/frahmantamala/homecare-staffing/internal/compliance"
	"gorm.io/gorm"
)

type ComplianceRepository struct {
	db *gorm.DB
}

func NewComplianceRepository(db *gorm.DB) compliance.Repository {
	return &ComplianceRepository{db: db}
}

func (r *ComplianceRepository) GetByEmployeeID(employeeID int64) (*compliance.Record, error) {
	var record compliance.Record
	err := r.db.Where("employee_id = ?", employeeID).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, compliance.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ComplianceRepository) Update(record *compliance.Record) error {
	record.UpdatedAt = time.Now()
	return r.db.Save(record).Error
}
