package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"

	"github.com/devshare/devshare-go/config"
	"github.com/devshare/devshare-go/db"
	"github.com/devshare/devshare-go/internal/api/middleware"
	"github.com/devshare/devshare-go/internal/api/routes"
	"github.com/devshare/devshare-go/internal/testutils"
	"github.com/devshare/devshare-go/pkg/response"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	db.InitWithGormDB(gormDB)

	// Gin router
	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, gormDB)

	// setup
	registerUserForTests("alice", "123456", "Alice Doe")
	registerUserForTests("bob", "123456", "Bob Roe")
	registerUserForTests("carol", "123456", "Carol Poe")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

// doRequest marshals body as JSON (nil means an empty body) and runs the
// request through the shared router.
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func registerUserForTests(username, password, fullname string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"username":"%s","password":"%s","fullname":"%s"}`, username, password, fullname)
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
}

func loginUser(t *testing.T, username, password string) string {
	resp := doRequest(t, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	}, http.StatusOK)

	var out response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// publishProject pushes a minimal valid publish payload and returns the slug.
func publishProject(t *testing.T, token, title string, tags []string) string {
	body := map[string]interface{}{
		"title":      title,
		"des":        "integration fixture",
		"banner":     "https://img.example/banner.png",
		"repository": "https://github.com/example/fixture",
		"tags":       tags,
		"content":    map[string]interface{}{"blocks": []map[string]string{{"type": "paragraph"}}},
	}

	resp := doRequest(t, "POST", "/project/create", token, body, http.StatusOK)

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func getProject(t *testing.T, slug string, expectStatus int) *httptest.ResponseRecorder {
	return doRequest(t, "POST", "/project/get", "", map[string]string{"project_id": slug}, expectStatus)
}
