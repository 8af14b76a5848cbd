package assistant

import (
	"context"
	"strings"
)

// Gateway exposes the three assistant operations over a generation client.
// A Gateway with no client is valid: Available reports false and every
// operation returns ErrUnavailable, so the feature degrades to disabled.
type Gateway struct {
	client Client
}

// NewGateway wraps a generation client. A nil client yields a disabled
// gateway.
func NewGateway(client Client) *Gateway {
	return &Gateway{client: client}
}

// Disabled returns a gateway with no backing client.
func Disabled() *Gateway {
	return &Gateway{}
}

// Available reports whether assistant operations can be served.
func (g *Gateway) Available() bool {
	return g != nil && g.client != nil
}

// Close releases the underlying client, if any.
func (g *Gateway) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *Gateway) generate(ctx context.Context, op, prompt string) (string, error) {
	if !g.Available() {
		return "", ErrUnavailable
	}
	text, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", &AssistantError{Op: op, Message: "generation failed", Cause: err}
	}
	return strings.TrimSpace(text), nil
}

// ImproveBullets rewrites an experience description as stronger bullet
// points for the given job title.
func (g *Gateway) ImproveBullets(ctx context.Context, text, jobTitle string) (string, error) {
	return g.generate(ctx, "improveBullets", improveBulletsPrompt(text, jobTitle))
}

// GenerateSummary produces a short professional summary from the job title,
// an experience sketch, and the current skill list.
func (g *Gateway) GenerateSummary(ctx context.Context, jobTitle, experience string, skills []string) (string, error) {
	return g.generate(ctx, "generateSummary", generateSummaryPrompt(jobTitle, experience, skills))
}

// SuggestSkills asks for complementary skills for the job title and returns
// them as a cleaned list: comma-split, trimmed, empties dropped, and anything
// already present removed.
func (g *Gateway) SuggestSkills(ctx context.Context, jobTitle string, currentSkills []string) ([]string, error) {
	text, err := g.generate(ctx, "suggestSkills", suggestSkillsPrompt(jobTitle, currentSkills))
	if err != nil {
		return nil, err
	}
	return parseSkillList(text, currentSkills), nil
}

func parseSkillList(text string, currentSkills []string) []string {
	have := make(map[string]bool, len(currentSkills))
	for _, s := range currentSkills {
		have[s] = true
	}

	var skills []string
	for _, part := range strings.Split(text, ",") {
		s := strings.TrimSpace(part)
		if s == "" || have[s] {
			continue
		}
		have[s] = true
		skills = append(skills, s)
	}
	return skills
}
