// Package agent asks a Gemini model to comment on an investment evaluation.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const instruction = `You are a corporate finance analyst.
You comment on capital budgeting results for a non specialist.
Answer in at most five short sentences, in plain text.
Never recompute the figures you are given, explain them.`

// Advisor comments on evaluations.
type Advisor struct {
	Model  string
	Config *genai.GenerateContentConfig
	client *genai.Client
}

// NewAdvisor returns an Advisor on a Gemini client. An empty model means
// DefaultModel.
func NewAdvisor(client *genai.Client, model string) *Advisor {
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{
		Model: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
		client: client,
	}
}

// Advise returns the model commentary on an evaluation of a request.
func (a *Advisor) Advise(ctx context.Context, e invest.Evaluation, r invest.Request) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.Model, genai.Text(Prompt(e, r)), a.Config)
	if err != nil {
		return "", fmt.Errorf("asking %s: %w", a.Model, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("no response from the advisor")
	}
	return text, nil
}

// Prompt is the question sent to the model for an evaluation of a request.
func Prompt(e invest.Evaluation, r invest.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Discount rate: %v\n", r.DiscountRatePercent)
	fmt.Fprintf(&b, "Initial investment: %.2f\n", r.InitialInvestment)
	for i, cf := range r.YearlyCashFlows {
		fmt.Fprintf(&b, "Year %d cash flow: %.2f\n", i+1, cf)
	}
	b.WriteString("\nThe evaluation gave:\n")
	b.WriteString(renderer.Evaluation(e))
	b.WriteString("\nDiscounted cash flows:\n")
	b.WriteString(renderer.Schedule(r))
	b.WriteString("\nShould this project be undertaken, and what are the risks of this cash flow profile?")
	return b.String()
}
