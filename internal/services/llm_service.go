package services

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LLMService extracts structured job fields from raw posting HTML. It backs
// the /jobs/extract endpoint the extension can fall back to when its DOM
// selectors find nothing on a page.
type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client. Returns an error when
// GEMINI_API_KEY is unset so the server can run without the extractor.
func NewLLMService(ctx context.Context) (*LLMService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

const jobExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "company": "Name of the company (e.g., Google, StartupInc)",
    "location": "Job location or 'Remote'",
    "description": "A clean summary of the job. Focus on Responsibilities and Requirements. Remove HTML tags.",
    "work_type": "One of: remote, hybrid, onsite, or null",
    "employment_type": "One of: full-time, part-time, contract, freelance, or null",
    "salary_min": "Lower salary bound as an integer, otherwise null",
    "salary_max": "Upper salary bound as an integer, otherwise null",
    "requirements": "The listed requirements as plain text, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractJobDetails takes raw HTML and returns the extracted fields as a
// JSON string matching the capture payload.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (string, error) {
	// Keep the prompt inside the model's context window.
	if len(rawHTML) > 20000 {
		rawHTML = rawHTML[:20000]
	}

	prompt := fmt.Sprintf(jobExtractionPrompt, rawHTML)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return resp, nil
}
