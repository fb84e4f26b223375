package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/teemow/daybrief/internal/logging"
)

// Intent identifies which assistant capability a prompt addresses.
type Intent string

const (
	IntentEmail    Intent = "email"
	IntentCalendar Intent = "calendar"
	IntentWeather  Intent = "weather"
	IntentTasks    Intent = "tasks"
)

// RouteIntent classifies a prompt. Keyword checks run in order and the
// first hit wins; anything unmatched goes to the task engine, which has
// its own fallback for free text.
func RouteIntent(prompt string) Intent {
	lower := strings.ToLower(prompt)
	if strings.Contains(lower, "email") {
		return IntentEmail
	}
	if strings.Contains(lower, "schedule") || strings.Contains(lower, "plan") {
		return IntentCalendar
	}
	if strings.Contains(lower, "weather") {
		return IntentWeather
	}
	return IntentTasks
}

// MailSummarizer condenses unread mail into a short digest.
type MailSummarizer interface {
	SummarizeUnread(ctx context.Context, prompt string) (string, error)
}

// DayPlanner summarizes today's calendar.
type DayPlanner interface {
	PlanDay(ctx context.Context, timezone string) (string, error)
}

// WeatherReporter reports current conditions for a place.
type WeatherReporter interface {
	Current(ctx context.Context, city string) (string, error)
}

// TaskHandler interprets and applies free-text task commands.
type TaskHandler interface {
	Handle(ctx context.Context, prompt string) (string, error)
}

// Agent routes a prompt to one capability and returns its answer.
// Provider failures come back as answer text so a briefing degrades
// instead of failing outright; only task persistence errors propagate.
type Agent struct {
	mail    MailSummarizer
	planner DayPlanner
	weather WeatherReporter
	tasks   TaskHandler
	logger  *slog.Logger
}

// Config carries the agent's capability providers. Tasks is required;
// the other providers may be nil, in which case their intents answer
// with setup guidance.
type Config struct {
	Mail    MailSummarizer
	Planner DayPlanner
	Weather WeatherReporter
	Tasks   TaskHandler
	Logger  *slog.Logger
}

// New creates an agent from the given providers.
func New(cfg Config) (*Agent, error) {
	if cfg.Tasks == nil {
		return nil, fmt.Errorf("task handler is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{
		mail:    cfg.Mail,
		planner: cfg.Planner,
		weather: cfg.Weather,
		tasks:   cfg.Tasks,
		logger:  logger,
	}, nil
}

// Ask routes the prompt and returns the chosen capability's answer.
func (a *Agent) Ask(ctx context.Context, prompt string) (string, error) {
	intent := RouteIntent(prompt)
	logger := a.logger.With(
		logging.Operation("agent.ask"),
		slog.String("intent", string(intent)),
		logging.PromptHash(prompt),
	)

	switch intent {
	case IntentEmail:
		if a.mail == nil {
			return "Gmail is not configured. Authenticate with Google to get email summaries.", nil
		}
		summary, err := a.mail.SummarizeUnread(ctx, prompt)
		if err != nil {
			logger.Warn("email summary failed", logging.Err(err))
			return fmt.Sprintf("Email summary error: %v", err), nil
		}
		logger.Debug("answered prompt")
		return summary, nil

	case IntentCalendar:
		if a.planner == nil {
			return "Calendar is not configured. Authenticate with Google to get your day plan.", nil
		}
		plan, err := a.planner.PlanDay(ctx, "")
		if err != nil {
			logger.Warn("day plan failed", logging.Err(err))
			return fmt.Sprintf("Calendar error: %v", err), nil
		}
		logger.Debug("answered prompt")
		return plan, nil

	case IntentWeather:
		if a.weather == nil {
			return "Weather lookups are not configured.", nil
		}
		report, err := a.weather.Current(ctx, "")
		if err != nil {
			logger.Warn("weather lookup failed", logging.Err(err))
			return fmt.Sprintf("Weather error: %v", err), nil
		}
		logger.Debug("answered prompt")
		return report, nil

	default:
		result, err := a.tasks.Handle(ctx, prompt)
		if err != nil {
			logger.Error("task command failed", logging.Err(err))
			return "", err
		}
		logger.Debug("answered prompt")
		return result, nil
	}
}
