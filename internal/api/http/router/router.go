package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/postboard-server/internal/api/http/handler"
	"github.com/dtroode/postboard-server/internal/api/http/middleware"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/metrics"
	"github.com/dtroode/postboard-server/internal/model"
)

// Options holds the services the routes are served by.
type Options struct {
	AuthService    handler.AuthService
	UserService    handler.UserService
	PostService    handler.PostService
	CommentService handler.CommentService
	// AttachmentService is optional; attachment routes are not registered without it.
	AttachmentService handler.AttachmentService
	TokenService      middleware.TokenService
	ContextManager    model.ContextManager
	Database          handler.Pinger
	Metrics           *metrics.Metrics
	RequestTimeout    time.Duration
	BodyLimit         int
}

// Router builds the fiber application with all routes and middleware.
type Router struct {
	opts   Options
	logger *logger.Logger
}

// New creates new HTTP Router instance.
func New(opts Options, logger *logger.Logger) *Router {
	return &Router{opts: opts, logger: logger}
}

// Register creates the fiber app. Middleware order: metrics, logging, request timeout.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "postboard",
		DisableStartupMessage: true,
		BodyLimit:             r.opts.BodyLimit,
		ErrorHandler:          handler.NewErrorHandler(r.logger),
	})

	app.Use(
		middleware.NewMetrics(r.opts.Metrics).Handle,
		middleware.NewLogging(r.logger).Handle,
	)
	if r.opts.RequestTimeout > 0 {
		app.Use(middleware.NewTimeout(r.opts.RequestTimeout).Handle)
	}

	authenticate := middleware.NewAuthenticate(r.opts.TokenService, r.opts.ContextManager, r.logger).Handle

	r.registerOperationalRoutes(app)
	r.registerAuthRoutes(app)
	r.registerUserRoutes(app, authenticate)
	r.registerPostRoutes(app, authenticate)
	r.registerCommentRoutes(app, authenticate)

	return app
}

func (r *Router) registerOperationalRoutes(app *fiber.App) {
	if r.opts.Database != nil {
		app.Get("/healthz", handler.NewHealth(r.opts.Database, r.logger).Check)
	}
	if r.opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(r.opts.Metrics.Registry(), promhttp.HandlerOpts{})))
	}
}

func (r *Router) registerAuthRoutes(app *fiber.App) {
	h := handler.NewAuth(r.opts.AuthService, r.logger)

	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/refresh-token", h.RefreshToken)
	app.Post("/logout", h.Logout)
}

func (r *Router) registerUserRoutes(app *fiber.App, authenticate fiber.Handler) {
	h := handler.NewUser(r.opts.UserService, r.opts.ContextManager, r.logger)

	users := app.Group("/users")
	users.Get("/", h.List)
	users.Get("/:id", h.Get)
	users.Put("/:id", authenticate, h.Update)
	users.Delete("/:id", authenticate, h.Delete)
}

func (r *Router) registerPostRoutes(app *fiber.App, authenticate fiber.Handler) {
	h := handler.NewPost(r.opts.PostService, r.opts.ContextManager, r.logger)

	posts := app.Group("/posts")
	posts.Get("/", h.List)
	posts.Post("/", authenticate, h.Create)
	posts.Get("/user/:userID", h.ListByUser)
	posts.Get("/:id", h.Get)
	posts.Put("/:id", authenticate, h.Update)
	posts.Delete("/:id", authenticate, h.Delete)

	if r.opts.AttachmentService != nil {
		attachments := handler.NewAttachment(r.opts.AttachmentService, r.opts.ContextManager, r.logger)
		posts.Get("/:id/attachment", attachments.Download)
		posts.Put("/:id/attachment", authenticate, attachments.Upload)
	}
}

func (r *Router) registerCommentRoutes(app *fiber.App, authenticate fiber.Handler) {
	h := handler.NewComment(r.opts.CommentService, r.opts.ContextManager, r.logger)

	comments := app.Group("/comments")
	comments.Get("/", h.ListByPost)
	comments.Post("/", authenticate, h.Create)
	comments.Get("/user/:userId", h.ListByUser)
	comments.Get("/:id", h.Get)
	comments.Put("/:id", authenticate, h.Update)
	comments.Delete("/:id", authenticate, h.Delete)
}
