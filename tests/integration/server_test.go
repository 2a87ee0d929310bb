package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	feedbackapp "github.com/facultyfeedback/backend/internal/application/feedback"
	identityapp "github.com/facultyfeedback/backend/internal/application/identity"
	orgapp "github.com/facultyfeedback/backend/internal/application/organization"
	questionapp "github.com/facultyfeedback/backend/internal/application/question"
	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	surveyapp "github.com/facultyfeedback/backend/internal/application/survey"
	takingapp "github.com/facultyfeedback/backend/internal/application/surveytaking"
	"github.com/facultyfeedback/backend/internal/infrastructure/auth"
	"github.com/facultyfeedback/backend/internal/infrastructure/cache"
	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"github.com/facultyfeedback/backend/internal/infrastructure/event"
	"github.com/facultyfeedback/backend/internal/infrastructure/logger"
	"github.com/facultyfeedback/backend/internal/infrastructure/persistence"
	"github.com/facultyfeedback/backend/internal/infrastructure/storage"
	"github.com/facultyfeedback/backend/internal/interfaces/http/handler"
	"github.com/facultyfeedback/backend/internal/interfaces/http/middleware"
	"github.com/facultyfeedback/backend/internal/interfaces/http/router"
	"github.com/facultyfeedback/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "s3cretpass"

// TestServer is the full HTTP stack over a real database
type TestServer struct {
	DB       *TestDB
	Engine   *gin.Engine
	Client   *testutil.APIClient
	Events   *testutil.EventRecorder
	Sessions *cache.InMemorySessionStore
}

type serverOptions struct {
	authRateLimit int
}

// ServerOption tunes the test server
type ServerOption func(*serverOptions)

// WithAuthRateLimit throttles the credential endpoints
func WithAuthRateLimit(limit int) ServerOption {
	return func(o *serverOptions) { o.authRateLimit = limit }
}

// NewTestServer wires repositories, services and routes the way the server
// binary does, with an in-memory session store and local report files.
func NewTestServer(t *testing.T, opts ...ServerOption) *TestServer {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	o := &serverOptions{}
	for _, opt := range opts {
		opt(o)
	}

	gin.SetMode(gin.TestMode)
	testDB := NewTestDB(t)
	log := zap.NewNop()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	departmentRepo := persistence.NewGormDepartmentRepository(testDB.DB)
	questionRepo := persistence.NewGormQuestionRepository(testDB.DB)
	surveyRepo := persistence.NewGormSurveyRepository(testDB.DB)
	feedbackRepo := persistence.NewGormFeedbackRepository(testDB.DB)
	userRepo := persistence.NewGormUserRepository(testDB.DB)

	events := testutil.NewEventRecorder()
	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(events)
	require.NoError(t, bus.Start(ctx))

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-feedback-testing-1234567890",
		RefreshSecret:          "test-refresh-secret-key-for-feedback-testing",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "feedback-test",
	})

	revocations := auth.NewMemoryRevocationList()
	departmentService := orgapp.NewDepartmentService(departmentRepo, bus, log)
	sessions := cache.NewInMemorySessionStore(time.Hour)
	t.Cleanup(func() { _ = sessions.Close() })

	files, err := storage.NewFileSystemStorage(t.TempDir(), "/api/v1/reports/files", log)
	require.NoError(t, err)
	reportService := reportapp.NewReportService(surveyRepo, feedbackRepo, departmentRepo, userRepo, files,
		reportapp.ReportServiceConfig{DownloadURLExpiration: time.Hour, KeyPrefix: "exports"}, log)

	reportHandler := handler.NewReportHandler(reportService)
	reportHandler.SetFileOpener(files)

	systemHandler := handler.NewSystemHandler("test")
	systemHandler.AddCheck("database", func(context.Context) error {
		sqlDB, err := testDB.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})

	surveyService := surveyapp.NewSurveyService(surveyRepo, departmentRepo, questionRepo, feedbackRepo, bus, log)
	controller := takingapp.NewController(sessions, surveyRepo, userRepo, feedbackRepo, departmentService, log,
		takingapp.WithEventPublisher(bus))

	authService := identityapp.NewAuthService(userRepo, departmentRepo, jwtService, bus, log,
		identityapp.WithRevocationList(revocations))

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Department: handler.NewDepartmentHandler(departmentService),
		Question:   handler.NewQuestionHandler(questionapp.NewQuestionService(questionRepo, bus, log)),
		Survey:     handler.NewSurveyHandler(surveyService),
		Session:    handler.NewSessionHandler(controller),
		Feedback:   handler.NewFeedbackHandler(feedbackapp.NewFeedbackService(feedbackRepo, surveyRepo, log)),
		Report:     reportHandler,
		Dashboard:  handler.NewDashboardHandler(reportService),
		System:     systemHandler,
	}

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.BodyLimit(1<<20),
	)

	guards := router.Guards{
		Authenticate: middleware.Authenticate(jwtService, log, middleware.WithRevocations(revocations)),
		Identify:     middleware.Identify(jwtService, middleware.WithRevocations(revocations)),
	}
	if o.authRateLimit > 0 {
		guards.AuthLimit = middleware.RateLimit(middleware.NewWindowLimiter(ctx, o.authRateLimit, time.Minute), nil)
	}

	engine.GET("/health", systemHandler.Health)
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	for _, group := range router.APIGroups(handlers, guards) {
		r.Register(group)
	}
	r.Setup()

	return &TestServer{
		DB:       testDB,
		Engine:   engine,
		Client:   testutil.NewAPIClient(engine),
		Events:   events,
		Sessions: sessions,
	}
}

// As returns a client that authenticates with token
func (ts *TestServer) As(token string) *testutil.APIClient {
	return ts.Client.As(token)
}

// ===================== Fixtures =====================

// Login returns an access token for the account
func (ts *TestServer) Login(t *testing.T, email string) string {
	t.Helper()

	w := ts.Client.Do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	resp := testutil.RequireData[handler.LoginResponse](t, w, http.StatusOK)
	require.NotEmpty(t, resp.Token.AccessToken)
	return resp.Token.AccessToken
}

// BootstrapAdmin registers the first administrator and logs in
func (ts *TestServer) BootstrapAdmin(t *testing.T) string {
	t.Helper()

	w := ts.Client.Do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Head Admin",
		"email":    "admin@college.edu",
		"password": testPassword,
		"role":     "admin",
	})
	testutil.RequireData[handler.UserResponse](t, w, http.StatusCreated)
	return ts.Login(t, "admin@college.edu")
}

// RegisterStudent registers a student of department and logs in
func (ts *TestServer) RegisterStudent(t *testing.T, email, rollNo, department string, year int) string {
	t.Helper()

	w := ts.Client.Do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":       "Student " + rollNo,
		"email":      email,
		"password":   testPassword,
		"role":       "student",
		"rollNumber": rollNo,
		"department": department,
		"year":       year,
	})
	testutil.RequireData[handler.UserResponse](t, w, http.StatusCreated)
	return ts.Login(t, email)
}

// CreateDepartment creates a department and adds the named faculty members
func (ts *TestServer) CreateDepartment(t *testing.T, adminToken, name string, faculty ...string) orgapp.DepartmentResponse {
	t.Helper()

	admin := ts.As(adminToken)
	dept := testutil.RequireData[orgapp.DepartmentResponse](t,
		admin.Do(t, http.MethodPost, "/api/v1/departments", map[string]string{
			"name":     name,
			"fullName": name + " Department",
		}), http.StatusCreated)

	for i, member := range faculty {
		testutil.RequireData[orgapp.FacultyResponse](t,
			admin.Do(t, http.MethodPost, "/api/v1/departments/"+dept.ID.String()+"/faculties", map[string]string{
				"name":    member,
				"subject": fmt.Sprintf("Subject %d", i+1),
			}), http.StatusCreated)
	}

	return testutil.RequireData[orgapp.DepartmentResponse](t,
		ts.Client.Get(t, "/api/v1/departments/"+dept.ID.String()), http.StatusOK)
}

// CreateQuestions adds questions to the bank and returns their ids
func (ts *TestServer) CreateQuestions(t *testing.T, adminToken string, texts ...string) []string {
	t.Helper()

	ids := make([]string, len(texts))
	for i, text := range texts {
		res := testutil.RequireData[questionapp.QuestionResult](t,
			ts.As(adminToken).Do(t, http.MethodPost, "/api/v1/questions", map[string]any{"text": text}),
			http.StatusCreated)
		ids[i] = res.Question.ID.String()
	}
	return ids
}

// CreateSurveys creates surveys for department, or every department for "ALL"
func (ts *TestServer) CreateSurveys(t *testing.T, adminToken, department string, questionIDs []string) []surveyapp.SurveyResponse {
	t.Helper()

	outcome := testutil.RequireData[surveyapp.CreateSurveysOutcome](t,
		ts.As(adminToken).Do(t, http.MethodPost, "/api/v1/surveys", map[string]any{
			"department":  department,
			"questionIds": questionIDs,
		}), http.StatusCreated)
	return outcome.Surveys
}
