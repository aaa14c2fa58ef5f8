package server

import (
	"fmt"
	"net/http"
	"testing"

	"jobport/internal/models"
	"jobport/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminGate(t *testing.T) {
	t.Parallel()
	s, app, db := newTestServer(t)

	regular := createTestUser(t, db, "gate_regular", models.RoleEmployer, false)

	t.Run("non-admin gets 403", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/admin/jobs", bearer(t, s, regular), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/admin/jobs", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestBulkJobModeration(t *testing.T) {
	t.Parallel()
	s, app, db := newTestServer(t)

	admin := createTestUser(t, db, "bulk_admin", models.RoleJobSeeker, true)
	emp := createTestUser(t, db, "bulk_emp", models.RoleEmployer, false)
	a := createTestJob(t, db, emp.ID, models.JobStatusPending)
	b := createTestJob(t, db, emp.ID, models.JobStatusPending)
	c := createTestJob(t, db, emp.ID, models.JobStatusPending)

	t.Run("bulk approve", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/jobs/approve", bearer(t, s, admin),
			map[string]any{"ids": []uint{a.ID, b.ID}})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.BulkResult
		decodeBody(t, resp, &result)
		assert.Equal(t, int64(2), result.Affected)

		var approved int64
		db.Model(&models.Job{}).Where("status = ?", models.JobStatusApproved).Count(&approved)
		assert.Equal(t, int64(2), approved)
	})

	t.Run("bulk reject", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/jobs/reject", bearer(t, s, admin),
			map[string]any{"ids": []uint{c.ID}})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stored models.Job
		require.NoError(t, db.First(&stored, c.ID).Error)
		assert.Equal(t, models.JobStatusRejected, stored.Status)
	})

	t.Run("empty id set is 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/jobs/approve", bearer(t, s, admin),
			map[string]any{"ids": []uint{}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBulkApplicationTriage(t *testing.T) {
	t.Parallel()
	s, app, db := newTestServer(t)

	admin := createTestUser(t, db, "triage_admin", models.RoleJobSeeker, true)
	emp := createTestUser(t, db, "triage_emp", models.RoleEmployer, false)
	job := createTestJob(t, db, emp.ID, models.JobStatusApproved)

	var ids []uint
	for i := 0; i < 2; i++ {
		seeker := createTestUser(t, db, fmt.Sprintf("triage_seeker%d", i), models.RoleJobSeeker, false)
		application := models.Application{
			JobID: job.ID, ApplicantID: seeker.ID, Resume: "r.pdf",
			Status: models.ApplicationStatusSubmitted,
		}
		require.NoError(t, db.Create(&application).Error)
		ids = append(ids, application.ID)
	}

	t.Run("bulk under_review", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/applications/status", bearer(t, s, admin),
			map[string]any{"ids": ids, "status": models.ApplicationStatusUnderReview})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.BulkResult
		decodeBody(t, resp, &result)
		assert.Equal(t, int64(2), result.Affected)
	})

	t.Run("accepted is not a triage status", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/applications/status", bearer(t, s, admin),
			map[string]any{"ids": ids, "status": models.ApplicationStatusAccepted})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAdminListings(t *testing.T) {
	t.Parallel()
	s, app, db := newTestServer(t)

	admin := createTestUser(t, db, "listing_admin", models.RoleJobSeeker, true)
	emp := createTestUser(t, db, "listing_emp", models.RoleEmployer, false)
	createTestJob(t, db, emp.ID, models.JobStatusPending)
	createTestJob(t, db, emp.ID, models.JobStatusPending)
	createTestJob(t, db, emp.ID, models.JobStatusApproved)

	t.Run("filter by status", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/admin/jobs?status=pending", bearer(t, s, admin), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Jobs []models.Job `json:"jobs"`
		}
		decodeBody(t, resp, &body)
		assert.Len(t, body.Jobs, 2)
	})

	t.Run("unfiltered includes everything", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/admin/jobs", bearer(t, s, admin), nil)
		var body struct {
			Jobs []models.Job `json:"jobs"`
		}
		decodeBody(t, resp, &body)
		assert.Len(t, body.Jobs, 3)
	})
}

// TestHiringFlow walks the whole lifecycle: employer posts, admin
// approves, seeker finds and applies, employer shortlists, both
// dashboards reflect the result.
func TestHiringFlow(t *testing.T) {
	t.Parallel()
	s, app, db := newTestServer(t)

	admin := createTestUser(t, db, "flow_admin", models.RoleJobSeeker, true)
	emp := createTestUser(t, db, "flow_emp", models.RoleEmployer, false)
	seeker := createTestUser(t, db, "flow_seeker", models.RoleJobSeeker, false)

	// employer posts
	resp := doJSON(t, app, http.MethodPost, "/api/jobs/", bearer(t, s, emp), map[string]any{
		"title":        "Site Reliability Engineer",
		"description":  "Run production",
		"location":     "Remote",
		"job_type":     models.JobTypeFullTime,
		"category":     "Engineering",
		"requirements": "Go, Kubernetes",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var job models.Job
	decodeBody(t, resp, &job)

	// not publicly visible yet
	notFound := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/jobs/%d", job.ID), "", nil)
	require.Equal(t, http.StatusNotFound, notFound.StatusCode)

	// admin approves
	approve := doJSON(t, app, http.MethodPost, "/api/admin/jobs/approve", bearer(t, s, admin),
		map[string]any{"ids": []uint{job.ID}})
	require.Equal(t, http.StatusOK, approve.StatusCode)

	// seeker finds it in the catalog
	list := doJSON(t, app, http.MethodGet, "/api/jobs/?search=reliability", "", nil)
	var page service.JobPage
	decodeBody(t, list, &page)
	require.Len(t, page.Jobs, 1)

	// seeker applies
	applied, err := app.Test(applyRequest(t, job.ID, bearer(t, s, seeker), "I run things"), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, applied.StatusCode)
	var application models.Application
	decodeBody(t, applied, &application)

	// detail now reports already_applied for the seeker
	detail := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/jobs/%d", job.ID), bearer(t, s, seeker), nil)
	var seen models.Job
	decodeBody(t, detail, &seen)
	assert.True(t, seen.AlreadyApplied)

	// employer shortlists
	shortlist := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/applications/%d/status", application.ID), bearer(t, s, emp),
		map[string]string{"status": models.ApplicationStatusShortlisted})
	require.Equal(t, http.StatusOK, shortlist.StatusCode)

	// seeker dashboard shows the new status
	dash := doJSON(t, app, http.MethodGet, "/api/jobseeker/dashboard", bearer(t, s, seeker), nil)
	var body struct {
		Applications []models.Application `json:"applications"`
	}
	decodeBody(t, dash, &body)
	require.Len(t, body.Applications, 1)
	assert.Equal(t, models.ApplicationStatusShortlisted, body.Applications[0].Status)

	// employer dashboard counts the application
	empDash := doJSON(t, app, http.MethodGet, "/api/employer/dashboard", bearer(t, s, emp), nil)
	var empBody struct {
		Jobs []models.Job `json:"jobs"`
	}
	decodeBody(t, empDash, &empBody)
	require.Len(t, empBody.Jobs, 1)
	assert.Equal(t, 1, empBody.Jobs[0].ApplicationsCount)
}
