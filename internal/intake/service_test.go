package intake_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/intake"
)

func TestIntakeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "IntakeService Suite")
}

type mockSubmissionRepo struct {
	submissions map[int64]*intake.ClientInterestSubmission
	updateError error
	nextID      int64
}

func newMockSubmissionRepo() *mockSubmissionRepo {
	return &mockSubmissionRepo{
		submissions: make(map[int64]*intake.ClientInterestSubmission),
		nextID:      1,
	}
}

func (m *mockSubmissionRepo) Create(sub *intake.ClientInterestSubmission) error {
	sub.ID = m.nextID
	m.nextID++
	m.submissions[sub.ID] = sub
	return nil
}

func (m *mockSubmissionRepo) GetByID(id int64) (*intake.ClientInterestSubmission, error) {
	sub, exists := m.submissions[id]
	if !exists {
		return nil, internal.ErrSubmissionNotFound
	}
	return sub, nil
}

func (m *mockSubmissionRepo) Update(sub *intake.ClientInterestSubmission) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.submissions[sub.ID] = sub
	return nil
}

func (m *mockSubmissionRepo) List(limit, offset int) ([]*intake.ClientInterestSubmission, error) {
	out := make([]*intake.ClientInterestSubmission, 0, len(m.submissions))
	for _, sub := range m.submissions {
		out = append(out, sub)
	}
	return out, nil
}

func (m *mockSubmissionRepo) ListUnreviewed(limit, offset int) ([]*intake.ClientInterestSubmission, error) {
	out := make([]*intake.ClientInterestSubmission, 0)
	for _, sub := range m.submissions {
		if !sub.Reviewed {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *mockSubmissionRepo) WithTx(tx *gorm.DB) intake.Repository {
	return m
}

var _ = Describe("IntakeService", func() {
	var (
		svc  *intake.Service
		repo *mockSubmissionRepo
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		repo = newMockSubmissionRepo()
		svc = intake.NewService(repo, logger)
	})

	Describe("Submit", func() {
		It("stores a valid inquiry as unreviewed", func() {
			sub, err := svc.Submit(intake.CreateSubmissionDTO{
				FirstName:      "Pat",
				LastName:       "Client",
				Email:          "pat@example.com",
				DesiredService: intake.ServiceOccupational,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(sub.ID).NotTo(BeZero())
			Expect(sub.Reviewed).To(BeFalse())
			Expect(sub.DateSubmitted).NotTo(BeZero())
		})

		It("rejects an unknown service code", func() {
			_, err := svc.Submit(intake.CreateSubmissionDTO{
				FirstName:      "Pat",
				LastName:       "Client",
				Email:          "pat@example.com",
				DesiredService: "ZZ",
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))
		})
	})

	Describe("MarkReviewed", func() {
		It("records the reviewer", func() {
			sub, err := svc.Submit(intake.CreateSubmissionDTO{
				FirstName:      "Pat",
				LastName:       "Client",
				Email:          "pat@example.com",
				DesiredService: intake.ServiceNonMedical,
			})
			Expect(err).NotTo(HaveOccurred())

			reviewed, err := svc.MarkReviewed(sub.ID, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(reviewed.Reviewed).To(BeTrue())
			Expect(*reviewed.ReviewedBy).To(Equal(int64(42)))
		})

		It("is idempotent and keeps the latest reviewer", func() {
			sub, err := svc.Submit(intake.CreateSubmissionDTO{
				FirstName:      "Pat",
				LastName:       "Client",
				Email:          "pat@example.com",
				DesiredService: intake.ServiceNonMedical,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.MarkReviewed(sub.ID, 1)
			Expect(err).NotTo(HaveOccurred())

			reviewed, err := svc.MarkReviewed(sub.ID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(*reviewed.ReviewedBy).To(Equal(int64(2)))
		})

		It("returns NotFound for an unknown submission", func() {
			_, err := svc.MarkReviewed(404, 1)
			Expect(errors.Is(err, internal.ErrSubmissionNotFound)).To(BeTrue())
		})
	})

	Describe("ListUnreviewed", func() {
		It("drops reviewed submissions", func() {
			first, _ := svc.Submit(intake.CreateSubmissionDTO{
				FirstName: "A", LastName: "One", Email: "a@example.com",
				DesiredService: intake.ServiceIntermittent,
			})
			_, err := svc.Submit(intake.CreateSubmissionDTO{
				FirstName: "B", LastName: "Two", Email: "b@example.com",
				DesiredService: intake.ServicePhysicalTherapy,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.MarkReviewed(first.ID, 1)
			Expect(err).NotTo(HaveOccurred())

			unreviewed, err := svc.ListUnreviewed(10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(unreviewed).To(HaveLen(1))
		})
	})
})
