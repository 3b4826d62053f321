package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("LoggingMiddleware", func() {
	var logOutput *bytes.Buffer

	newHandler := func() http.Handler {
		logger := slog.New(slog.NewTextHandler(logOutput, nil))
		return LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	}

	BeforeEach(func() {
		logOutput = &bytes.Buffer{}
	})

	It("redacts credential fields from request bodies", func() {
		body := strings.NewReader(`{"username":"jane.doe","password":"hunter2-hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		rec := httptest.NewRecorder()

		newHandler().ServeHTTP(rec, req)

		logged := logOutput.String()
		Expect(logged).To(ContainSubstring("jane.doe"))
		Expect(logged).NotTo(ContainSubstring("hunter2-hunter2"))
		Expect(logged).To(ContainSubstring("[FILTERED]"))
	})

	It("redacts temporary passwords wherever they appear", func() {
		body := strings.NewReader(`{"employee_id":5,"temporary_password":"Aa1!Aa1!Aa1!Aa1!"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/anything", body)
		rec := httptest.NewRecorder()

		newHandler().ServeHTTP(rec, req)

		Expect(logOutput.String()).NotTo(ContainSubstring("Aa1!Aa1!Aa1!Aa1!"))
	})

	It("passes harmless bodies through intact", func() {
		body := strings.NewReader(`{"title":"Training reminder"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/announcements", body)
		rec := httptest.NewRecorder()

		newHandler().ServeHTTP(rec, req)

		Expect(logOutput.String()).To(ContainSubstring("Training reminder"))
	})
})
