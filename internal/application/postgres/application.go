package postgres

import (
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/application"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) application.Repository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) WithTx(tx *gorm.DB) application.Repository {
	return &ApplicationRepository{db: tx}
}

func (r *ApplicationRepository) Create(app *application.EmploymentApplication) error {
	if app.DateSubmitted.IsZero() {
		app.DateSubmitted = time.Now()
	}
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) GetByID(id int64) (*application.EmploymentApplication, error) {
	var app application.EmploymentApplication
	err := r.db.Where("id = ?", id).First(&app).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByIDForUpdate takes a row-level lock where the dialect supports it.
// SQLite serializes writers at the connection level, so the clause is only
// applied on postgres.
func (r *ApplicationRepository) GetByIDForUpdate(id int64) (*application.EmploymentApplication, error) {
	q := r.db
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var app application.EmploymentApplication
	err := q.Where("id = ?", id).First(&app).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) Update(app *application.EmploymentApplication) error {
	return r.db.Save(app).Error
}

func (r *ApplicationRepository) List(limit, offset int) ([]*application.EmploymentApplication, error) {
	var apps []*application.EmploymentApplication
	err := r.db.Order("date_submitted DESC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) ListPending(limit, offset int) ([]*application.EmploymentApplication, error) {
	var apps []*application.EmploymentApplication
	err := r.db.Where("reviewed = ?", false).
		Order("date_submitted ASC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error
	return apps, err
}
