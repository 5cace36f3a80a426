package controllers_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"

	"github.com/studysphere/backend/internal/app/controllers"
	"github.com/studysphere/backend/internal/app/migrations"
	"github.com/studysphere/backend/internal/app/repositories"
	"github.com/studysphere/backend/internal/app/routes"
	"github.com/studysphere/backend/internal/app/services"
)

// newTestRouter builds the full route tree over a throwaway database,
// wired exactly like the production bootstrap.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.NewMigrator(db).Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repos := repositories.NewRepositories(db)

	subjectService := services.NewSubjectService(repos.SubjectRepository)
	announcementService := services.NewAnnouncementService(repos.AnnouncementRepository)
	commentService := services.NewCommentService(repos.CommentRepository)
	materialService := services.NewMaterialService(repos.MaterialRepository)
	assignmentService := services.NewAssignmentService(repos.AssignmentRepository)
	reminderService := services.NewReminderService(repos.ReminderRepository)
	feedService := services.NewFeedService(
		repos.AnnouncementRepository,
		repos.MaterialRepository,
		repos.AssignmentRepository,
		repos.ReminderRepository,
	)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewSubjectController(subjectService),
		controllers.NewAnnouncementController(announcementService, commentService),
		controllers.NewMaterialController(materialService),
		controllers.NewAssignmentController(assignmentService),
		controllers.NewReminderController(reminderService),
		controllers.NewFeedController(feedService),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSubjectLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// empty store lists as an empty array, not null
	rec := doRequest(t, router, http.MethodGet, "/subject", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = doRequest(t, router, http.MethodPost, "/subject", `{"name":"Mathematics","teacher":"Dr. Euler"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	decodeJSON(t, rec, &created)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Mathematics", created["name"])
	assert.Equal(t, "Dr. Euler", created["teacher"])

	rec = doRequest(t, router, http.MethodGet, "/subject/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/subject/1", `{"name":"Applied Mathematics","teacher":"Dr. Gauss"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]interface{}
	decodeJSON(t, rec, &updated)
	assert.Equal(t, "Applied Mathematics", updated["name"])
	assert.Equal(t, "Dr. Gauss", updated["teacher"])

	rec = doRequest(t, router, http.MethodDelete, "/subject/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/subject/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var errBody map[string]string
	decodeJSON(t, rec, &errBody)
	assert.Contains(t, errBody, "error")
	assert.NotEmpty(t, errBody["error"])
}

func TestCreateSubjectValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"teacher":"Dr. Euler"}`},
		{"missing teacher", `{"name":"Mathematics"}`},
		{"empty name", `{"name":"","teacher":"Dr. Euler"}`},
		{"whitespace name", `{"name":"   ","teacher":"Dr. Euler"}`},
		{"whitespace teacher", `{"name":"Mathematics","teacher":"\t"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/subject", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errBody map[string]string
			decodeJSON(t, rec, &errBody)
			assert.Equal(t, "Both 'name' and 'teacher' are required and cannot be empty", errBody["error"])
		})
	}

	// none of the rejected requests may have created a row
	rec := doRequest(t, router, http.MethodGet, "/subject", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestInvalidIDParam(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/subject/abc", "/announcement/abc", "/material/abc"} {
		method := http.MethodGet
		if strings.HasPrefix(path, "/material") {
			method = http.MethodDelete
		}
		rec := doRequest(t, router, method, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)

		var errBody map[string]string
		decodeJSON(t, rec, &errBody)
		assert.Contains(t, errBody["error"], "Invalid")
	}
}

func TestAnnouncementFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/subject", `{"name":"Physics","teacher":"Dr. Noether"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	for _, title := range []string{"A", "B", "C"} {
		rec = doRequest(t, router, http.MethodPost, "/subject/1/announcement",
			`{"title":"`+title+`","content":"content of `+title+`"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	// global listing is newest first
	rec = doRequest(t, router, http.MethodGet, "/announcement", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var listed []map[string]interface{}
	decodeJSON(t, rec, &listed)
	assert.Len(t, listed, 3)
	assert.Equal(t, "C", listed[0]["title"])
	assert.Equal(t, "B", listed[1]["title"])
	assert.Equal(t, "A", listed[2]["title"])

	// per-subject listing is insertion order
	rec = doRequest(t, router, http.MethodGet, "/subject/1/announcement", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &listed)
	assert.Len(t, listed, 3)
	assert.Equal(t, "A", listed[0]["title"])

	firstID := listed[0]["id"].(float64)
	originalPosted := listed[0]["date_posted"]

	rec = doRequest(t, router, http.MethodPut, "/announcement/1", `{"title":"A2","content":"rewritten"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]interface{}
	decodeJSON(t, rec, &updated)
	assert.Equal(t, firstID, updated["id"])
	assert.Equal(t, "A2", updated["title"])
	assert.Equal(t, "rewritten", updated["content"])
	assert.Equal(t, float64(1), updated["subject_id"])
	assert.Equal(t, originalPosted, updated["date_posted"])

	rec = doRequest(t, router, http.MethodPut, "/announcement/999", `{"title":"x","content":"y"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/announcement/3", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doRequest(t, router, http.MethodGet, "/announcement/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentsUnderAnnouncement(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/subject", `{"name":"Chemistry","teacher":"Dr. Curie"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/announcement", `{"title":"Lab","content":"Lab on Friday"}`)

	rec := doRequest(t, router, http.MethodGet, "/announcement/1/comments", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = doRequest(t, router, http.MethodPost, "/announcement/1/comments", `{"user":"ayse","content":"thanks!"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var comment map[string]interface{}
	decodeJSON(t, rec, &comment)
	assert.Equal(t, float64(1), comment["announcement_id"])
	assert.Equal(t, "ayse", comment["user"])
	assert.NotEmpty(t, comment["date_posted"])

	rec = doRequest(t, router, http.MethodPost, "/announcement/1/comments", `{"user":"mehmet"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/announcement/1/comments", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var comments []map[string]interface{}
	decodeJSON(t, rec, &comments)
	assert.Len(t, comments, 1)
}

func TestMaterialNullableFields(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/subject", `{"name":"Biology","teacher":"Dr. Mendel"}`)

	rec := doRequest(t, router, http.MethodPost, "/subject/1/materials", `{"title":"Notes"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var material map[string]interface{}
	decodeJSON(t, rec, &material)
	assert.Equal(t, "Notes", material["title"])
	assert.Nil(t, material["description"])
	assert.Nil(t, material["file_url"])
	assert.NotEmpty(t, material["date_uploaded"])

	rec = doRequest(t, router, http.MethodPost, "/subject/1/materials",
		`{"title":"Slides","description":"Week 1","file_url":"https://example.com/w1.pdf"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	decodeJSON(t, rec, &material)
	assert.Equal(t, "Week 1", material["description"])
	assert.Equal(t, "https://example.com/w1.pdf", material["file_url"])

	rec = doRequest(t, router, http.MethodPost, "/subject/1/materials", `{"description":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/material/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doRequest(t, router, http.MethodDelete, "/material/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChildrenSurviveSubjectDelete(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/subject", `{"name":"History","teacher":"Dr. Herodotus"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/announcement", `{"title":"Trip","content":"Museum visit"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/materials", `{"title":"Reading list"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/assignments", `{"title":"Essay","due_date":"2024-12-01"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/reminders", `{"message":"Bring notebook","remind_at":"monday"}`)

	rec := doRequest(t, router, http.MethodDelete, "/subject/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// children keep their subject_id and stay retrievable
	rec = doRequest(t, router, http.MethodGet, "/announcement/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var announcement map[string]interface{}
	decodeJSON(t, rec, &announcement)
	assert.Equal(t, float64(1), announcement["subject_id"])

	for _, path := range []string{"/material", "/assignment", "/reminder"} {
		rec = doRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var items []map[string]interface{}
		decodeJSON(t, rec, &items)
		assert.Len(t, items, 1, "path %s", path)
	}

	rec = doRequest(t, router, http.MethodGet, "/subject/1/announcement", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var bySubject []map[string]interface{}
	decodeJSON(t, rec, &bySubject)
	assert.Len(t, bySubject, 1)
}

func TestAssignmentAndReminderEndpoints(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/subject", `{"name":"Literature","teacher":"Dr. Woolf"}`)

	rec := doRequest(t, router, http.MethodPost, "/subject/1/assignments",
		`{"title":"Book report","instructions":"Read chapters 1-3.","due_date":"next friday"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var assignment map[string]interface{}
	decodeJSON(t, rec, &assignment)
	assert.Equal(t, "Read chapters 1-3.", assignment["instructions"])
	assert.Equal(t, "next friday", assignment["due_date"])

	// instructions are optional, the date fields are not
	rec = doRequest(t, router, http.MethodPost, "/subject/1/assignments", `{"title":"No date"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/subject/1/reminders", `{"message":"Quiz soon","remind_at":"2024-11-11"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/subject/1/reminders", `{"message":"no date"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/subject/1/assignments", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	decodeJSON(t, rec, &items)
	assert.Len(t, items, 1)

	rec = doRequest(t, router, http.MethodDelete, "/assignment/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doRequest(t, router, http.MethodDelete, "/reminder/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doRequest(t, router, http.MethodDelete, "/reminder/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedEndpoints(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/subject", `{"name":"Geography","teacher":"Dr. Humboldt"}`)

	longContent := strings.Repeat("x", 120)
	doRequest(t, router, http.MethodPost, "/subject/1/announcement", `{"title":"Long","content":"`+longContent+`"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/materials", `{"title":"Maps"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/assignments", `{"title":"Atlas work","due_date":"2024-10-10"}`)
	doRequest(t, router, http.MethodPost, "/subject/1/reminders", `{"message":"Bring atlas","remind_at":"2024-10-09"}`)

	rec := doRequest(t, router, http.MethodGet, "/feed/latest", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var feed []map[string]interface{}
	decodeJSON(t, rec, &feed)
	assert.Len(t, feed, 2)
	assert.Equal(t, "announcement", feed[0]["type"])
	assert.Equal(t, strings.Repeat("x", 80), feed[0]["preview"])
	assert.Equal(t, "material", feed[1]["type"])
	assert.Equal(t, "", feed[1]["preview"])
	assert.Equal(t, float64(1), feed[1]["subject"])

	rec = doRequest(t, router, http.MethodGet, "/feed/upcoming-deadlines", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var deadlines []map[string]interface{}
	decodeJSON(t, rec, &deadlines)
	assert.Len(t, deadlines, 2)
	assert.Equal(t, "assignment", deadlines[0]["type"])
	assert.Equal(t, "Atlas work", deadlines[0]["title"])
	assert.Equal(t, "reminder", deadlines[1]["type"])
	assert.Equal(t, "Bring atlas", deadlines[1]["title"])
	assert.Equal(t, "2024-10-09", deadlines[1]["due_date"])
}
