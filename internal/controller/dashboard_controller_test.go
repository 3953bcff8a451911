package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

// fakeRecordStore keeps merged columns in memory.
type fakeRecordStore struct {
	merged map[string]interface{}
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{merged: map[string]interface{}{}}
}

func (f *fakeRecordStore) Get(email string) (*model.UserRecord, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecordStore) Merge(email, column string, value interface{}) error {
	f.merged[column] = value
	return nil
}

func testContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	ctx.Set("user", &util.Claims{
		TokenType:        util.TokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user@example.com"},
	})
	return ctx, w
}

func TestSaveSkillsResponseIncludesCount(t *testing.T) {
	store := newFakeRecordStore()
	ctrl := NewDashboardController(service.NewDashboardService(store, nil, nil, nil))

	body := `{"skills":[
		{"name":"Python","level":"Advanced","category":"Backend"},
		{"name":"SQL","level":"Beginner","category":"Backend"}
	]}`
	ctx, w := testContext(t, http.MethodPost, "/api/dashboard/skills", body)

	ctrl.SaveSkills(ctx)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string        `json:"message"`
		Count   int           `json:"count"`
		Skills  []model.Skill `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Skills saved", resp.Message)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Skills, 2)

	saved, ok := store.merged["skills"].([]model.Skill)
	require.True(t, ok)
	assert.Equal(t, "Python", saved[0].Name)
}

func TestSaveSkillsEmptyListCountsZero(t *testing.T) {
	store := newFakeRecordStore()
	ctrl := NewDashboardController(service.NewDashboardService(store, nil, nil, nil))

	ctx, w := testContext(t, http.MethodPost, "/api/dashboard/skills", `{"skills":[]}`)

	ctrl.SaveSkills(ctx)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}
