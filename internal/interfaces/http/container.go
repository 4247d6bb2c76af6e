package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	userUsecases "complaintdesk/internal/application/user/usecases"
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/infrastructure/config"
	"complaintdesk/internal/interfaces/http/middleware"
	"complaintdesk/internal/interfaces/http/validation"
	"complaintdesk/internal/shared/logger"
)

// Container holds the stores, use cases, handlers and background services of
// the desk. It wires everything together and provides Shutdown for graceful
// termination.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	authMode userUsecases.AuthMode
	policy   complaint.TransitionPolicy

	repos *repositories
	infra *infrastructure
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware

	dispatcher events.EventDispatcher
	sessions   *userUsecases.SessionManager
}

// NewContainer builds the desk from cfg: it opens the session slot, seeds
// the fixtures, starts the event dispatcher and registers every route.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface) (*Container, error) {
	authMode, err := userUsecases.ParseAuthMode(cfg.Auth.Mode)
	if err != nil {
		return nil, err
	}
	policy, err := complaint.NewTransitionPolicy(cfg.Complaint.TransitionPolicy)
	if err != nil {
		return nil, err
	}
	if err := validation.RegisterEnums(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	c := &Container{
		engine:   gin.New(),
		cfg:      cfg,
		log:      log,
		authMode: authMode,
		policy:   policy,
	}

	// Section 1: Infrastructure - stores, session slot, enforcer, events
	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Seed data
	if err := c.seed(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 3: Use cases, handlers and middlewares
	c.initUseCases()
	c.initHandlers()

	c.SetupRoutes()

	return c, nil
}

func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown stops the event dispatcher and closes the redis client. It is
// safe to call on a partially built container.
func (c *Container) Shutdown() {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
