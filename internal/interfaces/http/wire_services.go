package http

import (
	"context"
	"fmt"

	"complaintdesk/internal/application/complaint/eventhandlers"
	userUsecases "complaintdesk/internal/application/user/usecases"
	"complaintdesk/internal/domain/complaint"
	"complaintdesk/internal/domain/shared/events"
	"complaintdesk/internal/domain/user"
	"complaintdesk/internal/infrastructure/auth"
	"complaintdesk/internal/infrastructure/permission"
	"complaintdesk/internal/infrastructure/persistence/seeds"
	"complaintdesk/internal/infrastructure/session"
	"complaintdesk/internal/shared/id"
	"complaintdesk/internal/shared/services/markdown"
)

const (
	sessionBackendFile  = "file"
	sessionBackendRedis = "redis"

	eventBufferSize = 256
)

// infrastructure holds the services shared by several use cases.
type infrastructure struct {
	codes    *complaint.YearlyCodeGenerator
	ids      id.Generator
	hasher   *auth.BcryptPasswordHasher
	enforcer *permission.Enforcer
	renderer markdown.Renderer
	store    user.SessionStore
}

// ============================================================
// Section 1: Infrastructure
// ============================================================

// initInfrastructure creates the stores, opens the session slot, restores the
// persisted session and starts the event dispatcher.
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories()

	enforcer, err := permission.NewDefaultEnforcer(log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to build permission enforcer: %w", err)
	}

	store, err := c.openSessionStore(ctx)
	if err != nil {
		return err
	}

	c.infra = &infrastructure{
		codes:    complaint.NewYearlyCodeGenerator(cfg.Complaint.CodePrefix),
		ids:      id.NewUUIDGenerator(),
		hasher:   auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost),
		enforcer: enforcer,
		renderer: markdown.NewRenderer(),
		store:    store,
	}

	c.sessions = userUsecases.NewSessionManager(ctx, store, log.Named("session"))

	dispatcher := events.NewInMemoryEventDispatcher(eventBufferSize, log.Named("events"))
	if err := eventhandlers.NewActivityLogHandler(log).Register(dispatcher); err != nil {
		return fmt.Errorf("failed to register activity log: %w", err)
	}
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	c.dispatcher = dispatcher
	log.Infow("event dispatcher started")

	return nil
}

// openSessionStore selects the session slot backend from configuration. The
// redis backend falls back to the file slot when the server cannot be reached.
func (c *Container) openSessionStore(ctx context.Context) (user.SessionStore, error) {
	cfg := c.cfg.Session
	codec := auth.NewSessionTokenCodec(cfg.Secret, cfg.TTL())

	switch cfg.Backend {
	case "", sessionBackendFile:
		c.log.Infow("using file session slot", "path", cfg.FilePath)
		return session.NewFileStore(cfg.FilePath, codec), nil
	case sessionBackendRedis:
		client, err := session.NewRedisClient(ctx, c.cfg.Redis.GetAddr(), c.cfg.Redis.Password, c.cfg.Redis.DB)
		if err != nil {
			// An unreachable redis costs only the persisted session, so the
			// slot moves to the local file instead of failing startup.
			c.log.Warnw("redis unavailable, using file session slot",
				"error", err,
				"addr", c.cfg.Redis.GetAddr(),
				"path", cfg.FilePath)
			return session.NewFileStore(cfg.FilePath, codec), nil
		}
		c.redis = client
		c.log.Infow("using redis session slot", "addr", c.cfg.Redis.GetAddr(), "key", cfg.Key)
		return session.NewRedisStore(client, cfg.Key, cfg.TTL(), codec), nil
	default:
		return nil, fmt.Errorf("unknown session backend: %s", cfg.Backend)
	}
}

// ============================================================
// Section 2: Seed data
// ============================================================

// seed loads the embedded fixtures. In strict auth mode every seeded user
// gets the configured demo password.
func (c *Container) seed(ctx context.Context) error {
	fixtures, err := seeds.Default()
	if err != nil {
		return err
	}

	var hasher user.PasswordHasher
	if c.authMode == userUsecases.AuthModeStrict {
		hasher = c.infra.hasher
	}

	loader := seeds.NewLoader(c.repos.userRepo, c.repos.complaintRepo, c.infra.codes, hasher)
	res, err := loader.Load(ctx, fixtures, c.cfg.Auth.DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to seed fixtures: %w", err)
	}

	c.log.Infow("fixtures loaded", "users", res.Users, "complaints", res.Complaints, "auth_mode", c.authMode)
	return nil
}
