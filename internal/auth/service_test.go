package auth_test

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/auth"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

type mockEmployeeStore struct {
	users       map[int64]*auth.User
	hashes      map[string]string
	forceChange map[int64]bool
	updatedHash string
	updateError error
}

func newMockEmployeeStore() *mockEmployeeStore {
	return &mockEmployeeStore{
		users:       make(map[int64]*auth.User),
		hashes:      make(map[string]string),
		forceChange: make(map[int64]bool),
	}
}

func (m *mockEmployeeStore) addUser(id int64, username, password string, active bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	m.users[id] = &auth.User{ID: id, Username: username, FirstName: "Jane", IsActive: active}
	m.hashes[username] = string(hash)
}

func (m *mockEmployeeStore) GetCredentials(username string) (int64, string, bool, error) {
	hash, exists := m.hashes[username]
	if !exists {
		return 0, "", false, errors.New("not found")
	}
	for id, user := range m.users {
		if user.Username == username {
			return id, hash, user.IsActive, nil
		}
	}
	return 0, "", false, errors.New("not found")
}

func (m *mockEmployeeStore) GetUser(userID int64) (*auth.User, error) {
	user, exists := m.users[userID]
	if !exists {
		return nil, errors.New("not found")
	}
	return user, nil
}

func (m *mockEmployeeStore) ForcePasswordChange(userID int64) (bool, error) {
	return m.forceChange[userID], nil
}

func (m *mockEmployeeStore) UpdatePassword(userID int64, newHash string) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.updatedHash = newHash
	user := m.users[userID]
	m.hashes[user.Username] = newHash
	return nil
}

var _ = Describe("GeneratePassword", func() {
	It("produces the fixed policy length", func() {
		password, err := auth.GeneratePassword()
		Expect(err).NotTo(HaveOccurred())
		Expect(password).To(HaveLen(auth.PasswordLength))
	})

	It("always contains every character class", func() {
		for i := 0; i < 50; i++ {
			password, err := auth.GeneratePassword()
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")).To(BeTrue())
			Expect(strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz")).To(BeTrue())
			Expect(strings.ContainsAny(password, "0123456789")).To(BeTrue())
			Expect(strings.ContainsAny(password, "!@#$%^&*()-_=+[]{}<>?")).To(BeTrue())
		}
	})

	It("does not repeat itself", func() {
		first, err := auth.GeneratePassword()
		Expect(err).NotTo(HaveOccurred())
		second, err := auth.GeneratePassword()
		Expect(err).NotTo(HaveOccurred())
		Expect(first).NotTo(Equal(second))
	})
})

var _ = Describe("CredentialGenerator", func() {
	It("hashes what it generates so the pair verifies", func() {
		gen := auth.NewCredentialGenerator(bcrypt.MinCost)

		plaintext, err := gen.Generate()
		Expect(err).NotTo(HaveOccurred())

		hash, err := gen.Hash(plaintext)
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).NotTo(ContainSubstring(plaintext))
		Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))).To(Succeed())
	})
})

var _ = Describe("AuthService", func() {
	var (
		svc   *auth.Service
		store *mockEmployeeStore
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		store = newMockEmployeeStore()
		tokenGen := auth.NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
		svc = auth.NewService(store, tokenGen, bcrypt.MinCost, logger)
	})

	Describe("Authenticate", func() {
		It("returns tokens for valid credentials", func() {
			store.addUser(1, "jane.doe", "correct-horse-battery", true)

			tokens, err := svc.Authenticate(auth.LoginDTO{Username: "jane.doe", Password: "correct-horse-battery"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
			Expect(tokens.MustChangePassword).To(BeFalse())
		})

		It("surfaces a pending forced password change", func() {
			store.addUser(1, "jane.doe", "correct-horse-battery", true)
			store.forceChange[1] = true

			tokens, err := svc.Authenticate(auth.LoginDTO{Username: "jane.doe", Password: "correct-horse-battery"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.MustChangePassword).To(BeTrue())
		})

		It("rejects a wrong password", func() {
			store.addUser(1, "jane.doe", "correct-horse-battery", true)

			_, err := svc.Authenticate(auth.LoginDTO{Username: "jane.doe", Password: "wrong"})
			Expect(errors.Is(err, internal.ErrInvalidCredentials)).To(BeTrue())
		})

		It("rejects an unknown username with the same error", func() {
			_, err := svc.Authenticate(auth.LoginDTO{Username: "ghost", Password: "anything"})
			Expect(errors.Is(err, internal.ErrInvalidCredentials)).To(BeTrue())
		})

		It("rejects an inactive account", func() {
			store.addUser(1, "jane.doe", "correct-horse-battery", false)

			_, err := svc.Authenticate(auth.LoginDTO{Username: "jane.doe", Password: "correct-horse-battery"})
			Expect(errors.Is(err, internal.ErrUserInactive)).To(BeTrue())
		})
	})

	Describe("ChangePassword", func() {
		It("stores a new hash when the current password matches", func() {
			store.addUser(1, "jane.doe", "correct-horse-battery", true)

			err := svc.ChangePassword(1, auth.ChangePasswordDTO{
				CurrentPassword: "correct-horse-battery",
				NewPassword:     "brand-new-password-1",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(bcrypt.CompareHashAndPassword(
				[]byte(store.updatedHash), []byte("brand-new-password-1"))).To(Succeed())
		})

		It("rejects a wrong current password", func() {
			store.addUser(1, "jane.doe", "correct-horse-battery", true)

			err := svc.ChangePassword(1, auth.ChangePasswordDTO{
				CurrentPassword: "wrong",
				NewPassword:     "brand-new-password-1",
			})
			Expect(errors.Is(err, internal.ErrInvalidCredentials)).To(BeTrue())
		})

		It("rejects a short new password", func() {
			store.addUser(1, "jane.doe", "correct-horse-battery", true)

			err := svc.ChangePassword(1, auth.ChangePasswordDTO{
				CurrentPassword: "correct-horse-battery",
				NewPassword:     "short",
			})
			Expect(err).To(HaveOccurred())
			Expect(store.updatedHash).To(BeEmpty())
		})
	})

	Describe("tokens", func() {
		It("round-trips access token validation", func() {
			store.addUser(7, "jane.doe", "correct-horse-battery", true)

			tokens, err := svc.Authenticate(auth.LoginDTO{Username: "jane.doe", Password: "correct-horse-battery"})
			Expect(err).NotTo(HaveOccurred())

			claims, err := svc.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(int64(7)))
		})

		It("exchanges a refresh token for a new pair", func() {
			store.addUser(7, "jane.doe", "correct-horse-battery", true)

			tokens, err := svc.Authenticate(auth.LoginDTO{Username: "jane.doe", Password: "correct-horse-battery"})
			Expect(err).NotTo(HaveOccurred())

			refreshed, err := svc.RefreshTokens(tokens.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(refreshed.AccessToken).NotTo(BeEmpty())
		})

		It("rejects a garbage token", func() {
			_, err := svc.ValidateAccessToken("not-a-jwt")
			Expect(errors.Is(err, internal.ErrInvalidToken)).To(BeTrue())
		})
	})
})
