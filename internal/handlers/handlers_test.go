package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/identity"
	"jobboard_backend/internal/repositories/repotest"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const identitySecret = "identity-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type testEnv struct {
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/files"})
	require.NoError(t, err)

	companyRepo := repotest.NewCompanyRepo()
	userRepo := repotest.NewUserRepo()
	jobRepo := repotest.NewJobRepo()
	appRepo := repotest.NewApplicationRepo()
	savedRepo := repotest.NewSavedJobRepo()

	tokens := auth.NewTokenIssuer("test-secret", 60)
	verifier := identity.NewJWTVerifier(identitySecret, "")

	sc := &services.ServiceContainer{
		CompanyAuthService: services.NewCompanyAuthService(companyRepo, tokens, store),
		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo, appRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo),
		SavedJobService:    services.NewSavedJobService(savedRepo, jobRepo),
		ResumeService:      services.NewResumeService(userRepo, store),
	}

	h := handlers.NewAppHandlers(sc, validator.New())

	router := gin.New()
	routes.Register(router, h, sc, verifier)

	return &testEnv{router: router}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed), "body: %s", rec.Body.String())
	return rec, parsed
}

func (e *testEnv) registerCompany(t *testing.T, email string) string {
	t.Helper()

	form := url.Values{}
	form.Set("name", "Acme Corp")
	form.Set("email", email)
	form.Set("password", "supersecret")

	req := httptest.NewRequest(http.MethodPost, "/api/company/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var parsed struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	require.True(t, parsed.Success)
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}

func (e *testEnv) postJob(t *testing.T, companyToken string) string {
	t.Helper()

	rec, body := e.do(t, http.MethodPost, "/api/company/post-job", companyToken, gin.H{
		"title":       "Backend Engineer",
		"description": "Build APIs",
		"location":    "Almaty",
		"salary":      "500000",
		"level":       "Middle",
		"category":    "Engineering",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)

	job := body["job"].(map[string]any)
	return job["_id"].(string)
}

func userToken(t *testing.T, externalID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   externalID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(identitySecret))
	require.NoError(t, err)
	return token
}

func listedJobIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	raw, ok := body["jobs"].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, item := range raw {
		ids = append(ids, item.(map[string]any)["_id"].(string))
	}
	return ids
}

func TestVisibilityLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerCompany(t, "hr@acme.test")
	jobID := env.postJob(t, token)

	rec, body := env.do(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, listedJobIDs(t, body), jobID)

	rec, _ = env.do(t, http.MethodPost, "/api/company/change-visibility", token, gin.H{"id": jobID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = env.do(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, listedJobIDs(t, body), jobID)

	// Direct fetch still works for hidden jobs.
	rec, body = env.do(t, http.MethodGet, "/api/jobs/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, jobID, body["job"].(map[string]any)["_id"])
}

func TestChangeVisibilityForeignJobForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCompany(t, "hr@acme.test")
	stranger := env.registerCompany(t, "hr@other.test")
	jobID := env.postJob(t, owner)

	rec, body := env.do(t, http.MethodPost, "/api/company/change-visibility", stranger, gin.H{"id": jobID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, false, body["success"])

	rec, listBody := env.do(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, listedJobIDs(t, listBody), jobID)
}

func TestApplicationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	companyToken := env.registerCompany(t, "hr@acme.test")
	jobID := env.postJob(t, companyToken)
	uToken := userToken(t, "ext-user-1")

	rec, body := env.do(t, http.MethodPost, "/api/users/apply-job", uToken, gin.H{"jobId": jobID})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %v", body)
	app := body["application"].(map[string]any)
	assert.Equal(t, "Pending", app["status"])
	appID := app["_id"].(string)

	// Second apply conflicts.
	rec, body = env.do(t, http.MethodPost, "/api/users/apply-job", uToken, gin.H{"jobId": jobID})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, body["success"])

	// Company rejects.
	rec, _ = env.do(t, http.MethodPut, "/api/company/update-status", companyToken, gin.H{
		"id":     appID,
		"status": "Rejected",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// A second decision conflicts and the status stays Rejected.
	rec, _ = env.do(t, http.MethodPut, "/api/company/update-status", companyToken, gin.H{
		"id":     appID,
		"status": "Accepted",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = env.do(t, http.MethodGet, "/api/users/applications", uToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	apps := body["applications"].([]any)
	require.Len(t, apps, 1)
	assert.Equal(t, "Rejected", apps[0].(map[string]any)["status"])
}

func TestUpdateStatusRejectsInvalidValue(t *testing.T) {
	env := newTestEnv(t)
	companyToken := env.registerCompany(t, "hr@acme.test")

	rec, body := env.do(t, http.MethodPut, "/api/company/update-status", companyToken, gin.H{
		"id":     "some-id",
		"status": "Pending",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestSaveToggleScenario(t *testing.T) {
	env := newTestEnv(t)
	companyToken := env.registerCompany(t, "hr@acme.test")
	jobID := env.postJob(t, companyToken)
	uToken := userToken(t, "ext-user-1")

	rec, body := env.do(t, http.MethodPost, "/api/users/saved-jobs/save-job", uToken, gin.H{"jobId": jobID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job saved", body["message"])

	rec, body = env.do(t, http.MethodPost, "/api/users/saved-jobs/save-job", uToken, gin.H{"jobId": jobID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job unsaved", body["message"])

	rec, body = env.do(t, http.MethodGet, "/api/users/saved-jobs/saved-jobs/list", uToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["savedJobs"])
}

func TestUserDataLazyProvisioning(t *testing.T) {
	env := newTestEnv(t)
	uToken := userToken(t, "ext-user-1")

	rec, body := env.do(t, http.MethodGet, "/api/users/data", uToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "ext-user-1", user["externalId"])
	assert.Equal(t, "Unnamed User", user["name"])
}

func TestUserSync(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/users/sync", "", gin.H{
		"externalId": "ext-user-1",
		"name":       "Aigerim",
		"email":      "aigerim@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Aigerim", user["name"])

	// Authenticated data fetch sees the synced profile.
	rec, body = env.do(t, http.MethodGet, "/api/users/data", userToken(t, "ext-user-1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Aigerim", body["user"].(map[string]any)["name"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/company/company"},
		{http.MethodPost, "/api/company/post-job"},
		{http.MethodGet, "/api/users/data"},
		{http.MethodPost, "/api/users/apply-job"},
	} {
		rec, body := env.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, false, body["success"], "%s %s", tc.method, tc.path)
	}
}

func TestCompanyAuthAcceptsBareTokenHeader(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerCompany(t, "hr@acme.test")

	req := httptest.NewRequest(http.MethodGet, "/api/company/company", nil)
	req.Header.Set("token", token)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
}

func TestJobsCount(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerCompany(t, "hr@acme.test")
	env.postJob(t, token)
	env.postJob(t, token)

	rec, body := env.do(t, http.MethodGet, "/api/jobs/count", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["total"])
}

func TestListJobsReportsApplicantCounts(t *testing.T) {
	env := newTestEnv(t)
	companyToken := env.registerCompany(t, "hr@acme.test")
	jobID := env.postJob(t, companyToken)

	for _, ext := range []string{"ext-a", "ext-b"} {
		rec, _ := env.do(t, http.MethodPost, "/api/users/apply-job", userToken(t, ext), gin.H{"jobId": jobID})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, body := env.do(t, http.MethodGet, "/api/company/list-jobs", companyToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	jobsData := body["jobsData"].([]any)
	require.Len(t, jobsData, 1)
	assert.Equal(t, float64(2), jobsData[0].(map[string]any)["applicants"])
}

func multipartResume(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func TestUpdateResume(t *testing.T) {
	env := newTestEnv(t)
	uToken := userToken(t, "ext-user-1")

	buf, contentType := multipartResume(t, "resume", "cv.pdf", "application/pdf", []byte("%PDF-1.4 data"))
	req := httptest.NewRequest(http.MethodPost, "/api/users/update-resume", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+uToken)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Resume Updated", body["message"])
	assert.Contains(t, body["user"].(map[string]any)["resume"], "resumes/")
}

func TestUpdateResumeRejectsNonPDF(t *testing.T) {
	env := newTestEnv(t)
	uToken := userToken(t, "ext-user-1")

	buf, contentType := multipartResume(t, "resume", "cv.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/users/update-resume", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+uToken)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("name", "Acme Corp")
	form.Set("email", "not-an-email")
	form.Set("password", "short")

	req := httptest.NewRequest(http.MethodPost, "/api/company/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}
