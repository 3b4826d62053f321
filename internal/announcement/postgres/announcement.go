package postgres

import (
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/announcement"
	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) announcement.Repository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) WithTx(tx *gorm.DB) announcement.Repository {
	return &AnnouncementRepository{db: tx}
}

func (r *AnnouncementRepository) Create(a *announcement.Announcement) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	return r.db.Create(a).Error
}

func (r *AnnouncementRepository) GetByID(id int64) (*announcement.Announcement, error) {
	var a announcement.Announcement
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AnnouncementRepository) Update(a *announcement.Announcement) error {
	a.UpdatedAt = time.Now()
	return r.db.Save(a).Error
}

func (r *AnnouncementRepository) List(limit, offset int) ([]*announcement.Announcement, error) {
	var items []*announcement.Announcement
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *AnnouncementRepository) ListActive(limit, offset int) ([]*announcement.Announcement, error) {
	var items []*announcement.Announcement
	err := r.db.Where("status = ?", announcement.StatusActive).
		Order("date_posted DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}
