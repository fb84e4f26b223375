package server

import (
	"context"
	"fmt"

	"github.com/teemow/daybrief/internal/agent"
	"github.com/teemow/daybrief/internal/google"
)

// mailProvider resolves the Gmail client lazily so the assistant picks
// up tokens saved after the server started.
type mailProvider struct {
	sc      *ServerContext
	account string
}

func (p *mailProvider) SummarizeUnread(ctx context.Context, prompt string) (string, error) {
	client := p.sc.GmailClientForAccount(p.account)
	if client == nil {
		return "", fmt.Errorf("no Google token for account %q: %s",
			p.account, google.GetAuthenticationErrorMessage(p.account))
	}
	return client.SummarizeUnread(ctx, prompt)
}

type planProvider struct {
	sc      *ServerContext
	account string
}

func (p *planProvider) PlanDay(ctx context.Context, timezone string) (string, error) {
	client := p.sc.CalendarClientForAccount(p.account)
	if client == nil {
		return "", fmt.Errorf("no Google token for account %q: %s",
			p.account, google.GetAuthenticationErrorMessage(p.account))
	}
	return client.PlanDay(ctx, timezone)
}

// Assistant builds an agent wired to this context's clients. The agent
// is created on first use and cached for the lifetime of the context.
func (sc *ServerContext) Assistant() (*agent.Agent, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.assistant != nil {
		return sc.assistant, nil
	}

	a, err := agent.New(agent.Config{
		Mail:    &mailProvider{sc: sc, account: google.DefaultAccount},
		Planner: &planProvider{sc: sc, account: google.DefaultAccount},
		Weather: sc.weatherClient,
		Tasks:   sc.engine,
		Logger:  sc.logger,
	})
	if err != nil {
		return nil, err
	}

	sc.assistant = a
	return a, nil
}
