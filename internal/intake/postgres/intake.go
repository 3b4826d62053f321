package postgres

import (
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/intake"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) intake.Repository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) WithTx(tx *gorm.DB) intake.Repository {
	return &SubmissionRepository{db: tx}
}

func (r *SubmissionRepository) Create(sub *intake.ClientInterestSubmission) error {
	if sub.DateSubmitted.IsZero() {
		sub.DateSubmitted = time.Now()
	}
	return r.db.Create(sub).Error
}

func (r *SubmissionRepository) GetByID(id int64) (*intake.ClientInterestSubmission, error) {
	var sub intake.ClientInterestSubmission
	err := r.db.Where("id = ?", id).First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrSubmissionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) Update(sub *intake.ClientInterestSubmission) error {
	return r.db.Save(sub).Error
}

func (r *SubmissionRepository) List(limit, offset int) ([]*intake.ClientInterestSubmission, error) {
	var subs []*intake.ClientInterestSubmission
	err := r.db.Order("date_submitted DESC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) ListUnreviewed(limit, offset int) ([]*intake.ClientInterestSubmission, error) {
	var subs []*intake.ClientInterestSubmission
	err := r.db.Where("reviewed = ?", false).
		Order("date_submitted ASC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error
	return subs, err
}
