package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobport/internal/config"
	"jobport/internal/models"
	"jobport/internal/repository"
	"jobport/internal/service"
	"jobport/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server over an in-memory SQLite database with
// all routes mounted, so requests exercise the real auth middleware.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}))

	resumeStore, err := storage.NewResumeStore(t.TempDir())
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	s := &Server{
		config:      &config.Config{JWTSecret: "test-secret", Env: "test"},
		db:          db,
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		resumeStore: resumeStore,
	}
	s.userService = service.NewUserService(userRepo)
	s.jobService = service.NewJobService(jobRepo, appRepo, userRepo)
	s.applicationService = service.NewApplicationService(appRepo, jobRepo, userRepo)
	s.moderationService = service.NewModerationService(db)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string, admin bool) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		Role:     role,
		IsAdmin:  admin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestJob(t *testing.T, db *gorm.DB, employerID uint, status string, override ...func(*models.Job)) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID:   employerID,
		Title:        "Backend Engineer",
		Description:  "Build APIs in Go",
		Location:     "Remote",
		JobType:      models.JobTypeFullTime,
		Category:     "Engineering",
		Requirements: "Go experience",
		Status:       status,
	}
	for _, fn := range override {
		fn(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func bearer(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

// doJSON performs a request with an optional JSON body and auth header.
func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// applyRequest builds the multipart apply request with a small PDF resume.
func applyRequest(t *testing.T, jobID uint, auth, coverLetter string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test resume"))
	require.NoError(t, err)
	if coverLetter != "" {
		require.NoError(t, w.WriteField("cover_letter", coverLetter))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", auth)
	return req
}
