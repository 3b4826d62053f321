package postgres

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/homecare-staffing/internal/compliance"
	"github.com/frahmantamala/homecare-staffing/internal/employee"
)

func TestEmployeeRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EmployeeRepository Suite")
}

var _ = Describe("EmployeeRepository", func() {
	var (
		db   *gorm.DB
		repo employee.Repository
	)

	newEmployee := func(username string) *employee.Employee {
		return &employee.Employee{
			Username:     username,
			PasswordHash: "$2a$04$stubstubstubstubstubstub",
			FirstName:    "Jane",
			LastName:     "Doe",
			Email:        username + "@example.com",
			IsActive:     true,
			HiredAt:      time.Now(),
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&employee.Employee{},
			&employee.UserProfile{},
			&compliance.Record{},
		)
		Expect(err).NotTo(HaveOccurred())

		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		lifecycle := employee.NewLifecycle(logger)
		repo = NewEmployeeRepository(db,
			[]employee.CreateHook{lifecycle.ProvisionAccount},
			[]employee.UpdateHook{lifecycle.DetectPasswordChange},
		)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Create", func() {
		It("provisions a profile and compliance record with the employee", func() {
			emp := newEmployee("jane.doe")
			Expect(repo.Create(emp)).To(Succeed())
			Expect(emp.ID).NotTo(BeZero())

			profile, err := repo.GetProfile(emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.ForcePasswordChange).To(BeTrue())

			var recordCount int64
			Expect(db.Model(&compliance.Record{}).
				Where("employee_id = ?", emp.ID).
				Count(&recordCount).Error).To(Succeed())
			Expect(recordCount).To(Equal(int64(1)))
		})

		It("rejects a duplicate username", func() {
			Expect(repo.Create(newEmployee("jane.doe"))).To(Succeed())
			Expect(repo.Create(newEmployee("jane.doe"))).NotTo(Succeed())

			// the failed create must not leave partial rows behind
			var empCount int64
			Expect(db.Model(&employee.Employee{}).Count(&empCount).Error).To(Succeed())
			Expect(empCount).To(Equal(int64(1)))
			var profileCount int64
			Expect(db.Model(&employee.UserProfile{}).Count(&profileCount).Error).To(Succeed())
			Expect(profileCount).To(Equal(int64(1)))
		})

		It("surfaces a second provisioning attempt for the same employee", func() {
			emp := newEmployee("jane.doe")
			Expect(repo.Create(emp)).To(Succeed())

			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			lifecycle := employee.NewLifecycle(logger)
			Expect(lifecycle.ProvisionAccount(db, emp)).NotTo(Succeed())
		})
	})

	Describe("Update", func() {
		It("clears the forced-change flag when the password hash changes", func() {
			emp := newEmployee("jane.doe")
			Expect(repo.Create(emp)).To(Succeed())

			before, err := repo.GetProfile(emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(before.ForcePasswordChange).To(BeTrue())

			emp.PasswordHash = "$2a$04$differentdifferentdiffer"
			Expect(repo.Update(emp)).To(Succeed())

			after, err := repo.GetProfile(emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.ForcePasswordChange).To(BeFalse())
			Expect(after.LastPasswordChange.After(before.LastPasswordChange)).To(BeTrue())
		})

		It("leaves the flag alone when the hash is unchanged", func() {
			emp := newEmployee("jane.doe")
			Expect(repo.Create(emp)).To(Succeed())

			emp.Phone = "555-0100"
			Expect(repo.Update(emp)).To(Succeed())

			profile, err := repo.GetProfile(emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.ForcePasswordChange).To(BeTrue())
		})

		It("no-ops the password hook for an unknown username", func() {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			lifecycle := employee.NewLifecycle(logger)

			ghost := newEmployee("nobody.here")
			Expect(lifecycle.DetectPasswordChange(db, ghost)).To(Succeed())
		})
	})

	Describe("lookups", func() {
		It("finds employees by username and reports existence", func() {
			Expect(repo.Create(newEmployee("jane.doe"))).To(Succeed())

			emp, err := repo.GetByUsername("jane.doe")
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.Email).To(Equal("jane.doe@example.com"))

			exists, err := repo.UsernameExists("jane.doe")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = repo.UsernameExists("john.smith")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("returns NotFound for missing employees", func() {
			_, err := repo.GetByID(404)
			Expect(err).To(Equal(employee.ErrNotFound))

			_, err = repo.GetByUsername("ghost")
			Expect(err).To(Equal(employee.ErrNotFound))
		})
	})
})
