package router

import (
	"github.com/facultyfeedback/backend/internal/domain/identity"
	"github.com/facultyfeedback/backend/internal/interfaces/http/handler"
	"github.com/facultyfeedback/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers mounted under the API prefix
type Handlers struct {
	Auth       *handler.AuthHandler
	Department *handler.DepartmentHandler
	Question   *handler.QuestionHandler
	Survey     *handler.SurveyHandler
	Session    *handler.SessionHandler
	Feedback   *handler.FeedbackHandler
	Report     *handler.ReportHandler
	Dashboard  *handler.DashboardHandler
	System     *handler.SystemHandler
}

// Guards are the authentication chains the route table applies.
// Authenticate must reject anonymous requests; Identify only reads a token
// when one is sent. AuthLimit throttles credential endpoints and may be nil.
type Guards struct {
	Authenticate gin.HandlerFunc
	Identify     gin.HandlerFunc
	AuthLimit    gin.HandlerFunc
}

func (g Guards) authenticated(roles ...string) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{g.Authenticate, middleware.SpanIdentity()}
	if len(roles) > 0 {
		chain = append(chain, middleware.RequireRole(roles...))
	}
	return chain
}

func (g Guards) identified() []gin.HandlerFunc {
	return []gin.HandlerFunc{g.Identify, middleware.SpanIdentity()}
}

func (g Guards) limited() []gin.HandlerFunc {
	if g.AuthLimit == nil {
		return nil
	}
	return []gin.HandlerFunc{g.AuthLimit}
}

// with appends the handler to a middleware chain
func with(chain []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}

const (
	roleAdmin   = string(identity.RoleAdmin)
	roleStudent = string(identity.RoleStudent)
)

// APIGroups builds the route table of the API
func APIGroups(h Handlers, g Guards) []*DomainGroup {
	admin := g.authenticated(roleAdmin)
	student := g.authenticated(roleStudent)

	authRoutes := NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", with(append(g.limited(), g.identified()...), h.Auth.Register)...)
	authRoutes.POST("/login", with(g.limited(), h.Auth.Login)...)
	authRoutes.POST("/refresh", with(g.limited(), h.Auth.RefreshToken)...)
	authRoutes.POST("/logout", with(g.authenticated(), h.Auth.Logout)...)
	authRoutes.GET("/me", with(g.authenticated(), h.Auth.Me)...)
	authRoutes.GET("/users", with(admin, h.Auth.ListUsers)...)

	// the registration form lists departments before the student has an account
	departmentRoutes := NewDomainGroup("departments", "/departments")
	departmentRoutes.GET("", with(g.identified(), h.Department.List)...)
	departmentRoutes.GET("/:id", with(g.identified(), h.Department.GetByID)...)
	departmentRoutes.Group("departments-admin", "").
		Use(admin...).
		POST("", h.Department.Create).
		PUT("/:id", h.Department.Update).
		DELETE("/:id", h.Department.Delete).
		POST("/:id/faculties", h.Department.AddFaculty).
		DELETE("/:id/faculties/:facultyId", h.Department.RemoveFaculty)

	questionRoutes := NewDomainGroup("questions", "/questions").Use(admin...)
	questionRoutes.GET("", h.Question.List).
		GET("/:id", h.Question.GetByID).
		POST("", h.Question.Create).
		PUT("/:id", h.Question.Update).
		DELETE("/:id", h.Question.Delete)

	surveyRoutes := NewDomainGroup("surveys", "/surveys").Use(admin...)
	surveyRoutes.GET("", h.Survey.List).
		GET("/:id", h.Survey.GetByID).
		POST("", h.Survey.Create).
		PATCH("/:id/status", h.Survey.SetActive).
		DELETE("/:id", h.Survey.Delete)

	sessionRoutes := NewDomainGroup("sessions", "/sessions").Use(student...)
	sessionRoutes.POST("", h.Session.Begin).
		GET("/:id", h.Session.Get).
		PUT("/:id/respondent-info", h.Session.SubmitRespondentInfo).
		PUT("/:id/raters", h.Session.SelectRaters).
		PUT("/:id/ratings", h.Session.Rate).
		POST("/:id/next", h.Session.Next).
		POST("/:id/back", h.Session.Back).
		POST("/:id/submit", h.Session.Submit).
		DELETE("/:id", h.Session.Abandon)

	feedbackRoutes := NewDomainGroup("feedbacks", "/feedbacks")
	feedbackRoutes.GET("", with(admin, h.Feedback.List)...)
	feedbackRoutes.GET("/mine", with(student, h.Feedback.ListMine)...)

	reportRoutes := NewDomainGroup("reports", "/reports").Use(admin...)
	reportRoutes.GET("/department-year", h.Report.DepartmentYearChart).
		GET("/faculty-ratings", h.Report.FacultyRatings).
		POST("/export", h.Report.Export)
	if h.Report.ServesFiles() {
		reportRoutes.GET("/files/*key", h.Report.Download)
	}

	dashboardRoutes := NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/admin", with(admin, h.Dashboard.Admin)...)
	dashboardRoutes.GET("/student", with(student, h.Dashboard.Student)...)

	systemRoutes := NewDomainGroup("system", "")
	systemRoutes.GET("/health", h.System.Health)

	return []*DomainGroup{
		authRoutes,
		departmentRoutes,
		questionRoutes,
		surveyRoutes,
		sessionRoutes,
		feedbackRoutes,
		reportRoutes,
		dashboardRoutes,
		systemRoutes,
	}
}
