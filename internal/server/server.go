package server

import (
	"context"
	"io"
	"time"

	"github.com/FuryACE007/team-ui/internal/config"
	"github.com/FuryACE007/team-ui/internal/logger"
	"github.com/FuryACE007/team-ui/internal/metrics"
	"github.com/FuryACE007/team-ui/internal/page"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	SessionCookie = "team_ui_session"
	QueryField    = "query"
	sourceWeb     = "web"
)

type queryPages interface {
	Submit(sessionID string, source string, input string) uint64
	State(sessionID string) page.State
}

type pageRenderer interface {
	Render(w io.Writer, state page.State) error
}

type Server struct {
	app        *fiber.App
	address    string
	sessionTTL time.Duration
	pages      queryPages
	renderer   pageRenderer
}

func NewServer(cfg config.ServerConfig, pages queryPages, renderer pageRenderer) (*Server, error) {

	if pages == nil {
		return nil, errors.New("query pages are nil")
	}
	if renderer == nil {
		return nil, errors.New("renderer is nil")
	}

	s := &Server{
		address:    cfg.Address,
		sessionTTL: cfg.SessionTTL,
		pages:      pages,
		renderer:   renderer,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		// form values and cookies outlive the handler as session input and keys
		Immutable:             true,
		ErrorHandler:          errorHandler,
	})
	s.app.Use(fiberRecover.New())
	s.app.Use(newRequestLogger())

	s.app.Get("/", s.showPage)
	s.app.Post(page.QueryAction, s.submitQuery)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	return s, nil
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	log.Infof("http server listening on %s", s.address)
	return s.app.Listen(s.address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) showPage(c *fiber.Ctx) error {
	state := s.pages.State(s.sessionOf(c))

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, "no-store")

	if err := s.renderer.Render(c, state); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeRender).Errorf("Failed to render page: %v", err)
		return fiber.ErrInternalServerError
	}
	return nil
}

func (s *Server) submitQuery(c *fiber.Ctx) error {
	s.pages.Submit(s.sessionOf(c), sourceWeb, c.FormValue(QueryField))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// sessionOf returns the session id from the cookie, issuing a new one when absent.
// The cookie is refreshed on every request to match the sliding session expiration.
func (s *Server) sessionOf(c *fiber.Ctx) string {
	id := c.Cookies(SessionCookie)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(s.sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return id
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
			Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).SendString(fiber.NewError(code).Message)
}
