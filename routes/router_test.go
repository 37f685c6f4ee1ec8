package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/schoolsports/config"
	"github.com/DhavalSuthar-24/schoolsports/docs"
	"github.com/DhavalSuthar-24/schoolsports/internal/achievement"
	"github.com/DhavalSuthar-24/schoolsports/internal/audit"
	"github.com/DhavalSuthar-24/schoolsports/internal/enrollment"
	"github.com/DhavalSuthar-24/schoolsports/internal/middleware"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/internal/testutil"
	"github.com/DhavalSuthar-24/schoolsports/internal/tournament"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"github.com/DhavalSuthar-24/schoolsports/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/schoolsports/pkg/token"
)

const secret = "router-test-secret"

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newAPI(t *testing.T) (*apiClient, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &sport.Sport{}, &team.Team{}, &enrollment.SportsEnrollment{},
		&tournament.Tournament{}, &achievement.SportsAchievement{}, &audit.AuditLog{})

	cfg := &config.Config{}
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.JWT.AccessTokenSecret = secret
	router := SetupRoutes(cfg, db, zap.NewNop(), audit.NewGormRecorder(db))
	return &apiClient{t: t, router: router}, db
}

func bearer(t *testing.T, userID uint, role string) string {
	t.Helper()
	signed, err := token.GenerateJWT(userID, role, secret, 10)
	require.NoError(t, err)
	return "Bearer " + signed
}

func (a *apiClient) do(method, path, auth string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHealthAndMetrics(t *testing.T) {
	api, _ := newAPI(t)

	w, _ := api.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w, _ = api.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "schoolsports_http_requests_total")
}

func TestListClampsHugePages(t *testing.T) {
	api, _ := newAPI(t)

	w, _ := api.do(http.MethodGet, "/api/sports?page=200000000000000000&limit=100", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Data       []sport.Sport   `json:"data"`
		Pagination pagination.Meta `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
	assert.Equal(t, pagination.MaxPage, body.Pagination.Page)
}

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	api, _ := newAPI(t)

	w, _ := api.do(http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, docs.SwaggerInfo.BasePath, doc.BasePath)

	documented := 0
	for _, r := range api.router.Routes() {
		if !strings.HasPrefix(r.Path, doc.BasePath+"/") {
			continue
		}
		path := pathParam.ReplaceAllString(strings.TrimPrefix(r.Path, doc.BasePath), "{$1}")
		assert.Contains(t, doc.Paths[path], strings.ToLower(r.Method), "%s %s is not documented", r.Method, path)
		documented++
	}
	assert.Equal(t, 43, documented)
}

func TestEnrollmentOverHTTP(t *testing.T) {
	api, db := newAPI(t)
	coach := bearer(t, 1, rmiddleware.RoleCoach)
	student := bearer(t, 50, rmiddleware.RoleStudent)

	w, _ := api.do(http.MethodPost, "/api/sports", "", map[string]any{"name": "Football", "category": "team"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = api.do(http.MethodPost, "/api/sports", student, map[string]any{"name": "Football", "category": "team"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := api.do(http.MethodPost, "/api/sports", coach, map[string]any{"name": "Football", "category": "team"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var s sport.Sport
	require.NoError(t, json.Unmarshal(env.Data, &s))

	w, _ = api.do(http.MethodPost, "/api/enrollments", coach, map[string]any{"sport_id": s.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code, "student_id is required")

	w, env = api.do(http.MethodPost, "/api/enrollments", coach, map[string]any{"sport_id": s.ID, "student_id": 50})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var e enrollment.SportsEnrollment
	require.NoError(t, json.Unmarshal(env.Data, &e))
	assert.Equal(t, enrollment.StatusActive, e.Status)

	w, env = api.do(http.MethodPost, "/api/enrollments", coach, map[string]any{"sport_id": s.ID, "student_id": 50})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "student 50 already has an active enrollment in Football", env.Message)

	w, _ = api.do(http.MethodPost, "/api/enrollments/999/attendance", coach, map[string]any{"present": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	attendance := fmt.Sprintf("/api/enrollments/%d/attendance", e.ID)
	for _, present := range []bool{true, true, false, true} {
		w, _ = api.do(http.MethodPost, attendance, coach, map[string]any{"present": present})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w, env = api.do(http.MethodGet, attendance, student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var att enrollment.AttendanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &att))
	assert.Equal(t, enrollment.AttendanceResponse{EnrollmentID: e.ID, AttendanceCount: 3, TotalSessions: 4, Percentage: 75}, att)

	w, _ = api.do(http.MethodPost, fmt.Sprintf("/api/enrollments/%d/withdraw", e.ID), coach, map[string]any{"remarks": "moved"})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = api.do(http.MethodPost, fmt.Sprintf("/api/enrollments/%d/complete", e.ID), coach, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var audits int64
	require.NoError(t, db.Model(&audit.AuditLog{}).Count(&audits).Error)
	assert.EqualValues(t, 6, audits, "one create, four attendance updates and the withdrawal")
}

func TestTournamentOverHTTP(t *testing.T) {
	api, _ := newAPI(t)
	admin := bearer(t, 1, rmiddleware.RoleAdmin)

	_, env := api.do(http.MethodPost, "/api/sports", admin, map[string]any{"name": "Chess", "category": "individual"})
	var s sport.Sport
	require.NoError(t, json.Unmarshal(env.Data, &s))

	w, env := api.do(http.MethodPost, "/api/tournaments", admin, map[string]any{
		"sport_id":   s.ID,
		"name":       "Spring Open",
		"type":       "inter_school",
		"start_date": "2099-03-01T00:00:00Z",
		"end_date":   "2099-03-10T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tr tournament.Tournament
	require.NoError(t, json.Unmarshal(env.Data, &tr))
	base := fmt.Sprintf("/api/tournaments/%d", tr.ID)

	w, _ = api.do(http.MethodPost, base+"/participants", admin, map[string]any{"student_ids": []uint{7, 8}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, _ = api.do(http.MethodPost, base+"/matches", admin, map[string]any{"matches": []map[string]any{
		{"match_id": "r1", "date": "2099-03-02T09:00:00Z", "participant1_id": 7, "participant2_id": 8},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = api.do(http.MethodPut, base+"/matches/r1/result", admin, map[string]any{"winner_id": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = api.do(http.MethodPut, base+"/matches/r1/result", admin, map[string]any{"winner_id": 8, "score1": "0", "score2": "1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = api.do(http.MethodGet, base+"/player-stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tallies []tournament.Tally
	require.NoError(t, json.Unmarshal(env.Data, &tallies))
	assert.Equal(t, []tournament.Tally{
		{ID: 7, Kind: tournament.KindParticipant, MatchesPlayed: 1, Losses: 1},
		{ID: 8, Kind: tournament.KindParticipant, MatchesPlayed: 1, Wins: 1},
	}, tallies)

	w, _ = api.do(http.MethodPut, base+"/status", admin, map[string]any{"status": "completed"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = api.do(http.MethodPost, base+"/photos", admin, map[string]any{"urls": []string{"not a url"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
