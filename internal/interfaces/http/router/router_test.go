package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func reply(body string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, body) }
}

func serve(engine *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNewRouter_Prefix(t *testing.T) {
	assert.Equal(t, "/api/v1", NewRouter(gin.New()).Prefix())
	assert.Equal(t, "/api/v2", NewRouter(gin.New(), WithAPIVersion("/v2/")).Prefix())
}

func TestRouter_SetupMountsEveryMethod(t *testing.T) {
	engine := gin.New()

	g := NewDomainGroup("surveys", "/surveys").
		GET("", reply("list")).
		POST("", reply("create")).
		PUT("/:id", reply("update")).
		PATCH("/:id/status", reply("status")).
		DELETE("/:id", reply("delete"))
	NewRouter(engine).Register(g).Setup()

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/api/v1/surveys", "list"},
		{http.MethodPost, "/api/v1/surveys", "create"},
		{http.MethodPut, "/api/v1/surveys/42", "update"},
		{http.MethodPatch, "/api/v1/surveys/42/status", "status"},
		{http.MethodDelete, "/api/v1/surveys/42", "delete"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(engine, tt.method, tt.target)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/surveys").Code)
}

func TestDomainGroup_SubgroupInheritsMiddleware(t *testing.T) {
	engine := gin.New()
	var trail []string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			trail = append(trail, name)
			c.Next()
		}
	}

	departments := NewDomainGroup("departments", "/departments").Use(mark("outer"))
	departments.GET("", reply("public"))
	departments.Group("departments-admin", "").
		Use(mark("inner")).
		POST("/:id/faculties", reply("added"))

	NewRouter(engine).Use(mark("api")).Register(departments).Setup()

	w := serve(engine, http.MethodPost, "/api/v1/departments/7/faculties")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"api", "outer", "inner"}, trail)

	trail = nil
	serve(engine, http.MethodGet, "/api/v1/departments")
	assert.Equal(t, []string{"api", "outer"}, trail)
}

func TestRouter_Routes(t *testing.T) {
	reports := NewDomainGroup("reports", "/reports").
		GET("/department-year", reply("chart")).
		GET("/files/*key", reply("file"))
	feedbacks := NewDomainGroup("feedbacks", "/feedbacks").GET("", reply("all"))
	feedbacks.Group("feedbacks-mine", "/mine").GET("", reply("mine"))

	r := NewRouter(gin.New()).Register(reports).Register(feedbacks)

	assert.Equal(t, []Route{
		{Group: "reports", Method: http.MethodGet, Path: "/api/v1/reports/department-year"},
		{Group: "reports", Method: http.MethodGet, Path: "/api/v1/reports/files/*key"},
		{Group: "feedbacks", Method: http.MethodGet, Path: "/api/v1/feedbacks"},
		{Group: "feedbacks-mine", Method: http.MethodGet, Path: "/api/v1/feedbacks/mine"},
	}, r.Routes())
}

func TestDomainGroup_NameAndPrefix(t *testing.T) {
	g := NewDomainGroup("dashboard", "/dashboard")
	assert.Equal(t, "dashboard", g.Name())
	assert.Equal(t, "/dashboard", g.Prefix())
}
