// advisor.go - AI gateway: prompt building and response normalization

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// symptomPrompt asks the model for a fixed JSON shape. The model does not
// always comply, which is why ParseAnalysis has a fallback path.
const symptomPrompt = `Analyze these symptoms: %s

Provide the following information in JSON format:
1. Possible conditions with probability
2. Severity level (Low/Medium/High)
3. Recommendations
4. When to see a doctor
5. Home remedies

Format: {"conditions": [], "severity": "", "recommendations": "", "see_doctor": "", "home_remedies": ""}

IMPORTANT: Do not include any markdown formatting, code blocks, or backticks in your response.
Only return valid JSON format.`

// Analysis is the normalized symptom analysis. On the fallback path it holds
// {"analysis": ..., "severity": "Unknown", "conditions": []} instead of the
// requested shape.
type Analysis map[string]interface{}

// Advisor turns domain requests into model prompts and normalizes the text
// that comes back. Upstream flakiness (non-JSON output) is absorbed here and
// never becomes a server error.
type Advisor struct {
	client  Client
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewAdvisor(client Client, timeout time.Duration, log *zap.SugaredLogger) *Advisor {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Advisor{client: client, timeout: timeout, log: log}
}

// AnalyzeSymptoms asks the model for a structured analysis of the symptom
// text. The model call is bounded by the advisor timeout. Only a failed call
// returns an error; a malformed response degrades to the fallback shape.
func (a *Advisor) AnalyzeSymptoms(ctx context.Context, symptoms string) (Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.Generate(ctx, fmt.Sprintf(symptomPrompt, symptoms))
	if err != nil {
		return nil, fmt.Errorf("analyze symptoms: %w", err)
	}

	analysis, parsed := ParseAnalysis(raw)
	if !parsed {
		a.log.Warnw("model returned non-JSON analysis, using fallback", "raw_len", len(raw))
	}
	return analysis, nil
}

// Ask sends a free-form question and returns the model's answer verbatim.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	answer, err := a.client.Generate(ctx, question)
	if err != nil {
		return "", fmt.Errorf("ask: %w", err)
	}
	return answer, nil
}

// ParseAnalysis runs the two-stage parse over raw model output: sanitize then
// strict JSON parse, and on failure a degraded object carrying the raw text.
// The second return reports whether strict parsing succeeded.
func ParseAnalysis(raw string) (Analysis, bool) {
	clean := sanitizeModelOutput(raw)

	var parsed Analysis
	if err := json.Unmarshal([]byte(clean), &parsed); err == nil && parsed != nil {
		return parsed, true
	}

	// Fallback: keep the prose, mark severity unknown. Newlines become <br>
	// so the dashboard can render the text block directly.
	text := strings.ReplaceAll(raw, "\n", "<br>")
	text = strings.ReplaceAll(text, `\n`, "<br>")
	return Analysis{
		"analysis":   text,
		"severity":   "Unknown",
		"conditions": []interface{}{},
	}, false
}

// sanitizeModelOutput strips Markdown code fences, collapses literal escaped
// newlines and normalizes whitespace so a cooperative-but-sloppy response
// still parses strictly.
func sanitizeModelOutput(raw string) string {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```") {
		if i := strings.IndexByte(clean, '\n'); i >= 0 {
			clean = clean[i+1:]
		}
	}
	if strings.HasSuffix(clean, "```") {
		if i := strings.LastIndexByte(clean, '\n'); i >= 0 {
			clean = clean[:i]
		}
	}

	clean = strings.ReplaceAll(clean, `\n`, " ")
	return strings.Join(strings.Fields(clean), " ")
}
