package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/domain/permission"
	"complaintdesk/internal/domain/user"
	infraPermission "complaintdesk/internal/infrastructure/permission"
	"complaintdesk/internal/shared/constants"
	"complaintdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedSession struct {
	user *user.User
}

func (s fixedSession) Current() *user.User {
	return s.user
}

func mustUser(t *testing.T, id string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Test "+id, id+"@example.com", role, "", "", time.Now())
	require.NoError(t, err)
	return u
}

func serve(engine *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		engine := gin.New()
		engine.Use(NewAuthMiddleware(fixedSession{user: mustUser(t, "agent-1", user.RoleAgent)}).RequireAuth())
		var gotID, gotName, gotRole string
		engine.GET("/", func(c *gin.Context) {
			gotID = c.GetString(constants.ContextKeyUserID)
			gotName = c.GetString(constants.ContextKeyUserName)
			gotRole = c.GetString(constants.ContextKeyUserRole)
			c.Status(http.StatusOK)
		})

		w := serve(engine, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "agent-1", gotID)
		assert.Equal(t, "Test agent-1", gotName)
		assert.Equal(t, "agent", gotRole)
	})

	t.Run("no session", func(t *testing.T) {
		engine := gin.New()
		engine.Use(NewAuthMiddleware(fixedSession{}).RequireAuth())
		reached := false
		engine.GET("/", func(c *gin.Context) { reached = true })

		w := serve(engine, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})
}

func TestRequirePermission(t *testing.T) {
	enforcer, err := infraPermission.NewDefaultEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	perms := NewPermissionMiddleware(enforcer, logger.NewNopLogger())

	tests := []struct {
		name       string
		role       user.Role
		resource   permission.Resource
		action     permission.Action
		wantStatus int
	}{
		{"customer creates", user.RoleCustomer, permission.ResourceComplaint, permission.ActionCreate, http.StatusOK},
		{"agent cannot create", user.RoleAgent, permission.ResourceComplaint, permission.ActionCreate, http.StatusForbidden},
		{"customer cannot assign", user.RoleCustomer, permission.ResourceComplaint, permission.ActionAssign, http.StatusForbidden},
		{"manager assigns", user.RoleManager, permission.ResourceComplaint, permission.ActionAssign, http.StatusOK},
		{"manager inherits status updates", user.RoleManager, permission.ResourceComplaint, permission.ActionUpdateStatus, http.StatusOK},
		{"agent cannot archive", user.RoleAgent, permission.ResourceComplaint, permission.ActionArchive, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			u := mustUser(t, "someone", tt.role)
			engine.Use(NewAuthMiddleware(fixedSession{user: u}).RequireAuth())
			engine.GET("/", perms.RequirePermission(tt.resource, tt.action), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := serve(engine, http.MethodGet, "/", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequirePermission_WithoutAuth(t *testing.T) {
	enforcer, err := infraPermission.NewDefaultEnforcer(logger.NewNopLogger())
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/", NewPermissionMiddleware(enforcer, logger.NewNopLogger()).
		RequirePermission(permission.ResourceComplaint, permission.ActionReadAll))

	w := serve(engine, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantCreds  string
		wantStatus int
	}{
		{
			name:       "listed origin",
			allowed:    []string{"http://localhost:5173"},
			origin:     "http://localhost:5173",
			method:     http.MethodGet,
			wantOrigin: "http://localhost:5173",
			wantCreds:  "true",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unlisted origin",
			allowed:    []string{"http://localhost:5173"},
			origin:     "http://evil.example",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wildcard",
			allowed:    []string{"*"},
			origin:     "http://anything.example",
			method:     http.MethodGet,
			wantOrigin: "*",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight",
			allowed:    []string{"http://localhost:5173"},
			origin:     "http://localhost:5173",
			method:     http.MethodOptions,
			wantOrigin: "http://localhost:5173",
			wantCreds:  "true",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.Use(CORS(tt.allowed))
			engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := serve(engine, tt.method, "/", map[string]string{"Origin": tt.origin})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID(func() string { return "generated" }))
	var seen string
	engine.GET("/", func(c *gin.Context) {
		seen = c.GetString(constants.ContextKeyRequestID)
		c.Status(http.StatusOK)
	})

	w := serve(engine, http.MethodGet, "/", nil)
	assert.Equal(t, "generated", seen)
	assert.Equal(t, "generated", w.Header().Get(constants.HeaderXRequestID))

	w = serve(engine, http.MethodGet, "/", map[string]string{constants.HeaderXRequestID: "client-id"})
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(engine, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestLogger_PassesThrough(t *testing.T) {
	engine := gin.New()
	engine.Use(Logger(logger.NewNopLogger()))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := serve(engine, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusTeapot, w.Code)
}
