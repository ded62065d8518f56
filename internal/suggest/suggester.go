package suggest

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/testimony-csv/internal/logging"
)

// maxSamples caps how many sample values are embedded in the prompt.
const maxSamples = 25

// Suggester builds keyword suggestions for a rule name from sample record
// text.
type Suggester struct {
	client AIClient
	logger logging.Logger
}

// NewSuggester creates a Suggester using the given client.
func NewSuggester(client AIClient, logger logging.Logger) *Suggester {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Suggester{client: client, logger: logger}
}

// SuggestKeywords asks the model for keywords that would match records
// belonging to the named category, given sample values from the upload.
func (s *Suggester) SuggestKeywords(ctx context.Context, ruleName string, samples []string) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("no AI client configured")
	}
	ruleName = strings.TrimSpace(ruleName)
	if ruleName == "" {
		return nil, fmt.Errorf("rule name is required")
	}

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}

	prompt := fmt.Sprintf(`You are helping build keyword rules that categorize free-text testimony records.

Category: %s

Sample records:
%s

Propose up to 10 short lowercase keywords or phrases that would appear in records belonging to this category. Respond with one keyword per line and nothing else.`,
		ruleName, strings.Join(samples, "\n"))

	response, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("keyword suggestion failed: %w", err)
	}

	keywords := parseKeywords(response)
	s.logger.WithFields(
		logging.Field{Key: logging.FieldRule, Value: ruleName},
		logging.Field{Key: logging.FieldCount, Value: len(keywords)},
	).Debug("Suggested keywords")

	return keywords, nil
}

// parseKeywords extracts one keyword per response line, stripping list
// markers the model sometimes adds despite instructions.
func parseKeywords(response string) []string {
	var keywords []string
	seen := make(map[string]struct{})

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		line = strings.Trim(line, `"`)
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		keywords = append(keywords, line)
	}

	return keywords
}
