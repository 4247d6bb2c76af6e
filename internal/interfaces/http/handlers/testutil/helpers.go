package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"complaintdesk/internal/shared/constants"
	"complaintdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetAuthContext stores the signed-in identity the way the session middleware does.
func SetAuthContext(c *gin.Context, userID, name, role string) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserName, name)
	c.Set(constants.ContextKeyUserRole, role)
}

// Identities used by handler tests.
const (
	CustomerID   = "user-1"
	CustomerName = "John Smith"
	AgentID      = "agent-1"
	AgentName    = "Mike Johnson"
	ManagerID    = "manager-1"
	ManagerName  = "Robert Davis"
)

// AsCustomer signs c in as the test customer.
func AsCustomer(c *gin.Context) {
	SetAuthContext(c, CustomerID, CustomerName, "customer")
}

// AsAgent signs c in as the test agent.
func AsAgent(c *gin.Context) {
	SetAuthContext(c, AgentID, AgentName, "agent")
}

// AsManager signs c in as the test manager.
func AsManager(c *gin.Context) {
	SetAuthContext(c, ManagerID, ManagerName, "manager")
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListData mirrors utils.ListResponse with raw items.
type ListData struct {
	Items      json.RawMessage `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return logger.NewNopLogger()
}
