package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/api"
	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/mocks"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
	"github.com/carewell-health/cms-api/internal/validation"
)

const testSecret = "test-secret"

type testServices struct {
	Post     *mocks.MockPostService
	Category *mocks.MockCategoryService
	Tag      *mocks.MockTagService
	Team     *mocks.MockTeamService
	Media    *mocks.MockMediaService
	Audit    *mocks.MockAuditService
	Stats    *mocks.MockStatsService
}

func setupTestRouter() (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)

	ts := &testServices{
		Post:     mocks.NewMockPostService(),
		Category: mocks.NewMockCategoryService(),
		Tag:      mocks.NewMockTagService(),
		Team:     mocks.NewMockTeamService(),
		Media:    mocks.NewMockMediaService(),
		Audit:    mocks.NewMockAuditService(),
		Stats:    mocks.NewMockStatsService(),
	}

	services := &service.Services{
		Post:     ts.Post,
		Category: ts.Category,
		Tag:      ts.Tag,
		Team:     ts.Team,
		Media:    ts.Media,
		Audit:    ts.Audit,
		Stats:    ts.Stats,
	}

	cfg := &config.Config{
		Pagination: config.PaginationConfig{
			DefaultLimit:      10,
			DefaultMediaLimit: 20,
			MaxLimit:          100,
		},
	}

	verifier := auth.NewTokenVerifier(testSecret, time.Hour)
	router := api.NewRouter(services, verifier, cfg, zerolog.Nop())

	return router, ts
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	verifier := auth.NewTokenVerifier(testSecret, time.Hour)
	token, err := verifier.Issue(auth.Identity{UserID: "user-" + string(role), Name: "Test User", Role: role})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "cms-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Stats.CountsByName["posts"] = 42
	ts.Stats.CountsByName["media"] = 7

	w := doJSON(router, "GET", "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	db := response["database"].(map[string]interface{})
	if db["posts"].(float64) != 42 {
		t.Errorf("Expected 42 posts, got %v", db["posts"])
	}
}

func TestListPostsEnvelope(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Post.Items = []*models.Post{
		{ID: "p1", Title: "First", Slug: "first", Status: models.PostStatusPublished},
		{ID: "p2", Title: "Second", Slug: "second", Status: models.PostStatusDraft},
	}

	w := doJSON(router, "GET", "/v1/posts", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Items []models.Post   `json:"items"`
		Meta  models.ListMeta `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(response.Items))
	}
	if response.Meta.Total != 2 || response.Meta.Page != 1 || response.Meta.Limit != 10 {
		t.Errorf("unexpected meta: %+v", response.Meta)
	}
}

func TestListPostsQueryDefaults(t *testing.T) {
	router, ts := setupTestRouter()

	doJSON(router, "GET", "/v1/posts", "", nil)
	if ts.Post.LastFilter.Page != 1 || ts.Post.LastFilter.Limit != 10 {
		t.Errorf("expected defaults page=1 limit=10, got %+v", ts.Post.LastFilter.ListParams)
	}

	doJSON(router, "GET", "/v1/posts?page=3&limit=5&status=PUBLISHED&categoryId=c1", "", nil)
	f := ts.Post.LastFilter
	if f.Page != 3 || f.Limit != 5 {
		t.Errorf("expected page=3 limit=5, got %+v", f.ListParams)
	}
	if f.Status != "PUBLISHED" || f.CategoryID != "c1" {
		t.Errorf("filter params not passed through: %+v", f)
	}
}

func TestListPostsLimitCap(t *testing.T) {
	router, ts := setupTestRouter()

	doJSON(router, "GET", "/v1/posts?limit=5000", "", nil)
	if ts.Post.LastFilter.Limit != 100 {
		t.Errorf("expected limit capped at 100, got %d", ts.Post.LastFilter.Limit)
	}

	doJSON(router, "GET", "/v1/posts?page=-2&limit=0", "", nil)
	if ts.Post.LastFilter.Page != 1 || ts.Post.LastFilter.Limit != 10 {
		t.Errorf("expected invalid values replaced by defaults, got %+v", ts.Post.LastFilter.ListParams)
	}
}

func TestGetPostNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "GET", "/v1/posts/missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestCreatePostRequiresToken(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Post.Err = service.ErrUnauthenticated

	w := doJSON(router, "POST", "/v1/posts", "", map[string]string{
		"title": "T", "content": "C", "status": "DRAFT",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	if ts.Post.LastActor != nil {
		t.Errorf("expected nil actor for anonymous request, got %+v", ts.Post.LastActor)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "POST", "/v1/posts", "not-a-token", map[string]string{"title": "T"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	req := httptest.NewRequest("POST", "/v1/posts", bytes.NewBufferString("{}"))
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	if w2.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for non-Bearer scheme, got %d", w2.Code)
	}
}

func TestCreatePostWithToken(t *testing.T) {
	router, ts := setupTestRouter()

	w := doJSON(router, "POST", "/v1/posts", tokenFor(t, models.RoleEditor), map[string]string{
		"title": "New Post", "content": "Body", "status": "DRAFT",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if ts.Post.LastActor == nil || ts.Post.LastActor.Role != models.RoleEditor {
		t.Errorf("actor not resolved from token: %+v", ts.Post.LastActor)
	}
	if ts.Post.LastInput.Title != "New Post" {
		t.Errorf("input not passed through: %+v", ts.Post.LastInput)
	}
}

func TestCreatePostValidationError(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Post.Err = validation.Errors{
		{Field: "title", Message: "title is required"},
		{Field: "status", Message: "status is required"},
	}

	w := doJSON(router, "POST", "/v1/posts", tokenFor(t, models.RoleEditor), map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var response struct {
		Error   string                  `json:"error"`
		Details []validation.FieldError `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Details) != 2 {
		t.Errorf("Expected 2 field errors, got %+v", response)
	}
}

func TestUpdatePostForbidden(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Post.Err = service.ErrForbidden

	w := doJSON(router, "PUT", "/v1/posts/p1", tokenFor(t, models.RoleViewer), map[string]string{
		"content": "rewrite",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
}

func TestSlugConflictResponse(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Category.Err = &service.ConflictError{Message: "A category with this slug already exists"}

	w := doJSON(router, "POST", "/v1/categories", tokenFor(t, models.RoleAdmin), map[string]string{
		"name": "Home Care",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "A category with this slug already exists" {
		t.Errorf("unexpected error message: %v", response["error"])
	}
}

func TestTeamListHiddenMembers(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Team.Items = []*models.TeamMember{
		{ID: "m1", Name: "Visible", IsVisible: true},
		{ID: "m2", Name: "Hidden", IsVisible: false},
	}

	// anonymous callers never see hidden members, even when asking
	doJSON(router, "GET", "/v1/team?includeHidden=true", "", nil)
	if ts.Team.LastFilter.IncludeHidden {
		t.Error("anonymous request must not include hidden members")
	}

	// authenticated callers can opt in
	doJSON(router, "GET", "/v1/team?includeHidden=true", tokenFor(t, models.RoleEditor), nil)
	if !ts.Team.LastFilter.IncludeHidden {
		t.Error("authenticated includeHidden=true should be honored")
	}

	// opt-in is explicit
	doJSON(router, "GET", "/v1/team", tokenFor(t, models.RoleEditor), nil)
	if ts.Team.LastFilter.IncludeHidden {
		t.Error("includeHidden should default to false")
	}
}

func TestMediaDefaultLimit(t *testing.T) {
	router, ts := setupTestRouter()

	doJSON(router, "GET", "/v1/media", tokenFor(t, models.RoleEditor), nil)
	if ts.Media.LastActor == nil {
		t.Fatal("actor not passed to media list")
	}
	if ts.Media.LastFilter.Limit != 20 {
		t.Errorf("media lists default to limit 20, got %d", ts.Media.LastFilter.Limit)
	}
}

func TestMediaBulkDelete(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Media.DeleteCount = 2

	w := doJSON(router, "DELETE", "/v1/media", tokenFor(t, models.RoleEditor), map[string][]string{
		"ids": {"a", "b", "c"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["deleted"].(float64) != 2 {
		t.Errorf("Expected deleted=2, got %v", response["deleted"])
	}
	if len(ts.Media.LastIDs) != 3 {
		t.Errorf("ids not passed through: %v", ts.Media.LastIDs)
	}
}

func TestAuditLogAccess(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Audit.Entries = []*models.AuditLogEntry{
		{ID: "e1", Action: models.AuditActionCreate, Entity: "Post", EntityID: "p1", UserID: "u1"},
	}

	w := doJSON(router, "GET", "/v1/audit", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for anonymous, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/v1/audit", tokenFor(t, models.RoleEditor), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for editor, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/v1/audit", tokenFor(t, models.RoleAdmin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for admin, got %d", w.Code)
	}

	var response struct {
		Items []models.AuditLogEntry `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Items) != 1 || response.Items[0].Entity != "Post" {
		t.Errorf("unexpected audit items: %+v", response.Items)
	}
}

func TestDeletePost(t *testing.T) {
	router, ts := setupTestRouter()
	ts.Post.ByID["p1"] = &models.Post{ID: "p1", Title: "Doomed"}

	w := doJSON(router, "DELETE", "/v1/posts/p1", tokenFor(t, models.RoleAdmin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if len(ts.Post.DeletedIDs) != 1 || ts.Post.DeletedIDs[0] != "p1" {
		t.Errorf("delete not forwarded: %v", ts.Post.DeletedIDs)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("POST", "/v1/posts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleEditor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
