package application_test

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/application"
	"github.com/frahmantamala/homecare-staffing/internal/core/events"
	"github.com/frahmantamala/homecare-staffing/internal/employee"
)

func TestApplicationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ApplicationService Suite")
}

// fakeTxRunner runs the transaction function directly; rollback semantics
// are covered by the repository suites against a real database.
type fakeTxRunner struct {
	err error
}

func (f *fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	if f.err != nil {
		return f.err
	}
	return fc(nil)
}

type mockApplicationRepo struct {
	applications map[int64]*application.EmploymentApplication
	getError     error
	updateError  error
	nextID       int64
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{
		applications: make(map[int64]*application.EmploymentApplication),
		nextID:       1,
	}
}

func (m *mockApplicationRepo) Create(app *application.EmploymentApplication) error {
	app.ID = m.nextID
	m.nextID++
	m.applications[app.ID] = app
	return nil
}

func (m *mockApplicationRepo) GetByID(id int64) (*application.EmploymentApplication, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	app, exists := m.applications[id]
	if !exists {
		return nil, internal.ErrApplicationNotFound
	}
	copy := *app
	return &copy, nil
}

func (m *mockApplicationRepo) GetByIDForUpdate(id int64) (*application.EmploymentApplication, error) {
	return m.GetByID(id)
}

func (m *mockApplicationRepo) Update(app *application.EmploymentApplication) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.applications[app.ID] = app
	return nil
}

func (m *mockApplicationRepo) List(limit, offset int) ([]*application.EmploymentApplication, error) {
	out := make([]*application.EmploymentApplication, 0, len(m.applications))
	for _, app := range m.applications {
		out = append(out, app)
	}
	return out, nil
}

func (m *mockApplicationRepo) ListPending(limit, offset int) ([]*application.EmploymentApplication, error) {
	out := make([]*application.EmploymentApplication, 0)
	for _, app := range m.applications {
		if !app.Reviewed {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) WithTx(tx *gorm.DB) application.Repository {
	return m
}

type mockEmployeeRepo struct {
	employees   map[int64]*employee.Employee
	byUsername  map[string]*employee.Employee
	createError error
	nextID      int64
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees:  make(map[int64]*employee.Employee),
		byUsername: make(map[string]*employee.Employee),
		nextID:     1,
	}
}

func (m *mockEmployeeRepo) Create(emp *employee.Employee) error {
	if m.createError != nil {
		return m.createError
	}
	emp.ID = m.nextID
	m.nextID++
	m.employees[emp.ID] = emp
	m.byUsername[emp.Username] = emp
	return nil
}

func (m *mockEmployeeRepo) GetByID(id int64) (*employee.Employee, error) {
	emp, exists := m.employees[id]
	if !exists {
		return nil, employee.ErrNotFound
	}
	return emp, nil
}

func (m *mockEmployeeRepo) GetByUsername(username string) (*employee.Employee, error) {
	emp, exists := m.byUsername[username]
	if !exists {
		return nil, employee.ErrNotFound
	}
	return emp, nil
}

func (m *mockEmployeeRepo) UsernameExists(username string) (bool, error) {
	_, exists := m.byUsername[username]
	return exists, nil
}

func (m *mockEmployeeRepo) Update(emp *employee.Employee) error {
	m.employees[emp.ID] = emp
	m.byUsername[emp.Username] = emp
	return nil
}

func (m *mockEmployeeRepo) List(limit, offset int) ([]*employee.Employee, error) {
	out := make([]*employee.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (m *mockEmployeeRepo) GetProfile(employeeID int64) (*employee.UserProfile, error) {
	return nil, employee.ErrNotFound
}

func (m *mockEmployeeRepo) WithTx(tx *gorm.DB) employee.Repository {
	return m
}

type fakeCredentials struct {
	plaintext     string
	generateError error
	hashError     error
}

func (f *fakeCredentials) Generate() (string, error) {
	if f.generateError != nil {
		return "", f.generateError
	}
	return f.plaintext, nil
}

func (f *fakeCredentials) Hash(plaintext string) (string, error) {
	if f.hashError != nil {
		return "", f.hashError
	}
	return "hashed:" + plaintext, nil
}

var _ = Describe("ApplicationService", func() {
	var (
		svc         *application.Service
		appRepo     *mockApplicationRepo
		empRepo     *mockEmployeeRepo
		credentials *fakeCredentials
		txRunner    *fakeTxRunner
		logger      *slog.Logger
		ctx         context.Context
	)

	submitApp := func(first, last string) *application.EmploymentApplication {
		app := &application.EmploymentApplication{
			FirstName:       first,
			LastName:        last,
			Email:           "applicant@example.com",
			Mobility:        application.MobilityCar,
			PriorExperience: application.ExperienceSenior,
			DateSubmitted:   time.Now(),
		}
		Expect(appRepo.Create(app)).To(Succeed())
		return app
	}

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
		appRepo = newMockApplicationRepo()
		empRepo = newMockEmployeeRepo()
		credentials = &fakeCredentials{plaintext: "Temp0rary!Passw0rd"}
		txRunner = &fakeTxRunner{}
		bus := events.NewEventBus(logger)
		svc = application.NewService(txRunner, appRepo, empRepo, credentials, bus, logger)
		ctx = context.Background()
	})

	Describe("Submit", func() {
		It("stores a valid application as unreviewed", func() {
			app, err := svc.Submit(application.CreateApplicationDTO{
				FirstName:       "Jane",
				LastName:        "Doe",
				Email:           "jane@example.com",
				Mobility:        application.MobilityPublic,
				PriorExperience: application.ExperienceJunior,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(app.ID).NotTo(BeZero())
			Expect(app.Reviewed).To(BeFalse())
			Expect(app.Hired).To(BeNil())
		})

		It("rejects an unknown mobility code", func() {
			_, err := svc.Submit(application.CreateApplicationDTO{
				FirstName:       "Jane",
				LastName:        "Doe",
				Email:           "jane@example.com",
				Mobility:        "BICYCLE",
				PriorExperience: application.ExperienceJunior,
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))
		})

		It("rejects a missing email", func() {
			_, err := svc.Submit(application.CreateApplicationDTO{
				FirstName:       "Jane",
				LastName:        "Doe",
				Mobility:        application.MobilityCar,
				PriorExperience: application.ExperienceNew,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Hire", func() {
		It("creates the employee and marks the application hired", func() {
			app := submitApp("Jane", "Doe")

			result, err := svc.Hire(ctx, app.ID, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Username).To(Equal("jane.doe"))
			Expect(result.PlaintextPassword).To(Equal("Temp0rary!Passw0rd"))

			emp, err := empRepo.GetByID(result.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.PasswordHash).To(Equal("hashed:Temp0rary!Passw0rd"))
			Expect(emp.IsActive).To(BeTrue())
			Expect(emp.IsSuperuser).To(BeFalse())
			Expect(emp.Email).To(Equal("applicant@example.com"))

			stored, err := appRepo.GetByID(app.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Reviewed).To(BeTrue())
			Expect(stored.Hired).NotTo(BeNil())
			Expect(*stored.Hired).To(BeTrue())
			Expect(stored.ReviewedBy).NotTo(BeNil())
			Expect(*stored.ReviewedBy).To(Equal(int64(42)))
		})

		It("disambiguates colliding usernames with a numeric suffix", func() {
			first := submitApp("John", "Smith")
			second := submitApp("John", "Smith")

			r1, err := svc.Hire(ctx, first.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(r1.Username).To(Equal("john.smith"))

			r2, err := svc.Hire(ctx, second.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(r2.Username).To(Equal("john.smith2"))
		})

		It("collapses interior name spaces into dots", func() {
			app := submitApp("Mary Jane", "Van Der Berg")

			result, err := svc.Hire(ctx, app.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Username).To(Equal("mary.jane.van.der.berg"))
		})

		It("fails with AlreadyReviewed on a second hire", func() {
			app := submitApp("Jane", "Doe")

			_, err := svc.Hire(ctx, app.ID, 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Hire(ctx, app.ID, 2)
			Expect(errors.Is(err, internal.ErrAlreadyReviewed)).To(BeTrue())
			Expect(len(empRepo.employees)).To(Equal(1))
		})

		It("fails with AlreadyReviewed when the application was rejected", func() {
			app := submitApp("Jane", "Doe")

			Expect(svc.Reject(ctx, app.ID, 1)).To(Succeed())

			_, err := svc.Hire(ctx, app.ID, 2)
			Expect(errors.Is(err, internal.ErrAlreadyReviewed)).To(BeTrue())
			Expect(empRepo.employees).To(BeEmpty())
		})

		It("wraps employee creation failures in HireFailed", func() {
			app := submitApp("Jane", "Doe")
			empRepo.createError = errors.New("constraint violation")

			_, err := svc.Hire(ctx, app.ID, 1)
			Expect(errors.Is(err, internal.ErrHireFailed)).To(BeTrue())
		})

		It("wraps credential generation failures in HireFailed", func() {
			app := submitApp("Jane", "Doe")
			credentials.generateError = errors.New("entropy source unavailable")

			_, err := svc.Hire(ctx, app.ID, 1)
			Expect(errors.Is(err, internal.ErrHireFailed)).To(BeTrue())
			Expect(empRepo.employees).To(BeEmpty())
		})

		It("returns NotFound for an unknown application", func() {
			_, err := svc.Hire(ctx, 9999, 1)
			Expect(errors.Is(err, internal.ErrApplicationNotFound)).To(BeTrue())
		})
	})

	Describe("Reject", func() {
		It("marks the application reviewed and not hired", func() {
			app := submitApp("Jane", "Doe")

			Expect(svc.Reject(ctx, app.ID, 7)).To(Succeed())

			stored, err := appRepo.GetByID(app.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Reviewed).To(BeTrue())
			Expect(stored.Hired).NotTo(BeNil())
			Expect(*stored.Hired).To(BeFalse())
			Expect(*stored.ReviewedBy).To(Equal(int64(7)))
		})

		It("fails with AlreadyReviewed on a second reject", func() {
			app := submitApp("Jane", "Doe")

			Expect(svc.Reject(ctx, app.ID, 1)).To(Succeed())

			err := svc.Reject(ctx, app.ID, 2)
			Expect(errors.Is(err, internal.ErrAlreadyReviewed)).To(BeTrue())

			stored, _ := appRepo.GetByID(app.ID)
			Expect(*stored.ReviewedBy).To(Equal(int64(1)))
		})

		It("never creates an employee", func() {
			app := submitApp("Jane", "Doe")

			Expect(svc.Reject(ctx, app.ID, 1)).To(Succeed())
			Expect(empRepo.employees).To(BeEmpty())
		})
	})
})
