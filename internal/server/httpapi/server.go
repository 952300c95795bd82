// Package httpapi exposes the messaging service over HTTP. It owns the
// request gate: every protected route passes through token verification
// before any handler logic, and profile-scoped routes additionally require
// the path username to match the authenticated identity.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// userSvc and messageSvc are the slices of the service layer the transport
// needs. *services.UserService and *services.MessageService satisfy them.
type userSvc interface {
	Register(ctx context.Context, username, rawPassword, firstName, lastName, phone string) (*models.User, string, error)
	Login(ctx context.Context, username, rawPassword string) (string, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

type messageSvc interface {
	Send(ctx context.Context, from, to, body string) (*models.Message, error)
	Get(ctx context.Context, id int64) (*models.MessageDetail, error)
	MarkRead(ctx context.Context, id int64) (*models.Message, error)
	ListFrom(ctx context.Context, username string) ([]models.SentMessage, error)
	ListTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	users    userSvc
	messages messageSvc
	tokens   *auth.TokenManager
}

func NewHTTPServer(a string, l logging.Logger, us userSvc, ms messageSvc, tokens *auth.TokenManager) *HTTPServer {
	return &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		users:    us,
		messages: ms,
		tokens:   tokens,
	}
}

// Router builds the gin engine with all routes and gates attached. Exposed
// separately from Run so tests can drive it with httptest.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.POST("/login", s.Login)
	r.POST("/register", s.Register)

	authed := r.Group("", s.requireAuth())
	authed.GET("/users", s.ListUsers)
	authed.GET("/messages/:id", s.GetMessage)
	authed.POST("/messages", s.SendMessage)
	authed.POST("/messages/:id", s.MarkMessageRead)

	scoped := authed.Group("/users/:username", s.requireCorrectUser())
	scoped.GET("", s.GetUser)
	scoped.GET("/from", s.ListMessagesFrom)
	scoped.GET("/to", s.ListMessagesTo)

	return r
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
