package announcement

import (
	"time"

	"gorm.io/gorm"
)

// Announcement is an internal staff notice. Drafts and archived notices can
// be (re)posted, which makes them active and re-stamps date_posted; active
// notices can be archived. There is no delete.
type Announcement struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"column:title;not null"`
	Message     string     `json:"message" gorm:"column:message;not null"`
	MessageType string     `json:"message_type" gorm:"column:message_type;not null"`
	Status      string     `json:"status" gorm:"column:status;not null"`
	PostedBy    *int64     `json:"posted_by,omitempty" gorm:"column:posted_by"`
	DatePosted  *time.Time `json:"date_posted,omitempty" gorm:"column:date_posted"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// Message type choices
const (
	TypeSafety     = "C"
	TypeTraining   = "T"
	TypeCompliance = "X"
	TypeGeneral    = "G"
)

// Status choices
const (
	StatusActive  = "A"
	StatusDraft   = "D"
	StatusArchive = "X"
)

type Repository interface {
	Create(a *Announcement) error
	GetByID(id int64) (*Announcement, error)
	Update(a *Announcement) error
	List(limit, offset int) ([]*Announcement, error)
	ListActive(limit, offset int) ([]*Announcement, error)

	WithTx(tx *gorm.DB) Repository
}
