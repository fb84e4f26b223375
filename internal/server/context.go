package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/teemow/daybrief/internal/agent"
	"github.com/teemow/daybrief/internal/calendar"
	"github.com/teemow/daybrief/internal/gmail"
	"github.com/teemow/daybrief/internal/instrumentation"
	"github.com/teemow/daybrief/internal/logging"
	"github.com/teemow/daybrief/internal/tasks"
	"github.com/teemow/daybrief/internal/weather"
)

// ServerContext holds the context for the MCP server: the shared task
// engine, the weather client, and per-account Google clients created
// lazily as tools first need them.
type ServerContext struct {
	ctx             context.Context
	cancel          context.CancelFunc
	engine          *tasks.Engine
	assistant       *agent.Agent
	weatherClient   *weather.Client
	gmailClients    map[string]*gmail.Client    // Maps account name to Gmail client
	calendarClients map[string]*calendar.Client // Maps account name to Calendar client
	logger          *slog.Logger
	metrics         *instrumentation.Metrics
	auditLogger     *instrumentation.AuditLogger
	mu              sync.RWMutex
	shutdown        bool
}

// NewServerContext creates a new server context. The task engine and
// weather client are always available; Google clients are created
// lazily per account when a token exists.
func NewServerContext(ctx context.Context, engine *tasks.Engine, logger *slog.Logger) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if logger == nil {
		logger = slog.Default()
	}

	sc := &ServerContext{
		ctx:             shutdownCtx,
		cancel:          cancel,
		engine:          engine,
		weatherClient:   weather.NewClient(weather.WithLogger(logger)),
		gmailClients:    make(map[string]*gmail.Client),
		calendarClients: make(map[string]*calendar.Client),
		logger:          logger,
	}

	// Eagerly create the default Gmail client when a token is present,
	// but don't fail startup if that doesn't work; it will be retried
	// lazily on first use.
	if gmail.HasToken() {
		client, err := gmail.NewClient(shutdownCtx)
		if err != nil {
			logger.Warn("failed to create Gmail client for default account", logging.Err(err))
		} else {
			sc.gmailClients["default"] = client
		}
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// TaskEngine returns the shared task command engine.
func (sc *ServerContext) TaskEngine() *tasks.Engine {
	return sc.engine
}

// WeatherClient returns the weather client.
func (sc *ServerContext) WeatherClient() *weather.Client {
	return sc.weatherClient
}

// GmailClientForAccount returns the Gmail client for a specific account
// Creates and caches the client if it doesn't exist yet
// Returns nil if the account has no token
func (sc *ServerContext) GmailClientForAccount(account string) *gmail.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if client already exists
	if client, ok := sc.gmailClients[account]; ok {
		return client
	}

	// Try to create client if token exists
	if !gmail.HasTokenForAccount(account) {
		return nil
	}

	client, err := gmail.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Gmail client",
			logging.Account(account), logging.Err(err))
		return nil
	}

	sc.gmailClients[account] = client
	return client
}

// GmailClient returns the Gmail client for the default account
func (sc *ServerContext) GmailClient() *gmail.Client {
	return sc.GmailClientForAccount("default")
}

// SetGmailClientForAccount sets the Gmail client for a specific account
func (sc *ServerContext) SetGmailClientForAccount(account string, client *gmail.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.gmailClients[account] = client
}

// SetGmailClient sets the Gmail client for the default account
func (sc *ServerContext) SetGmailClient(client *gmail.Client) {
	sc.SetGmailClientForAccount("default", client)
}

// CalendarClientForAccount returns the Calendar client for a specific account
// Creates and caches the client if it doesn't exist yet
// Returns nil if the account has no token
func (sc *ServerContext) CalendarClientForAccount(account string) *calendar.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if client already exists
	if client, ok := sc.calendarClients[account]; ok {
		return client
	}

	// Try to create client if token exists
	if !calendar.HasTokenForAccount(account) {
		return nil
	}

	client, err := calendar.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Calendar client",
			logging.Account(account), logging.Err(err))
		return nil
	}

	sc.calendarClients[account] = client
	return client
}

// CalendarClient returns the Calendar client for the default account
func (sc *ServerContext) CalendarClient() *calendar.Client {
	return sc.CalendarClientForAccount("default")
}

// SetCalendarClientForAccount sets the Calendar client for a specific account
func (sc *ServerContext) SetCalendarClientForAccount(account string, client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClients[account] = client
}

// SetCalendarClient sets the Calendar client for the default account
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.SetCalendarClientForAccount("default", client)
}

// SetMetrics sets the metrics recorder for tool instrumentation
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil if not configured
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool instrumentation
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// AuditLogger returns the audit logger, or nil if not configured
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
