package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"impromptu/internal/ai"
)

// Engine calls the Gemini API. The same implementation serves both the
// pro and flash models; only the model name differs.
type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini/" + e.Model }

const judgePromptFmt = `You are a strict judge for a photo scavenger hunt. The prompt is: "%s". Does this photo clearly show "%s"? Be strict - when in doubt, say no. Reply ONLY with this JSON and nothing else: {"matches": true, "feedback": "your feedback here"} or {"matches": false, "feedback": "your feedback here"}. Keep feedback under 20 words.`

// JudgePhoto sends the image plus the judge instruction and recovers the
// two-field verdict from the response text.
func (e *Engine) JudgePhoto(ctx context.Context, promptText string, img ai.Image) (ai.Verdict, error) {
	instruction := fmt.Sprintf(judgePromptFmt, promptText, promptText)

	// Token budget generous for a two-field object; truncation is still
	// recoverable downstream.
	raw, err := e.generate(ctx, 0.1, 256, &img, instruction)
	if err != nil {
		return ai.Verdict{}, err
	}
	v, err := ai.ExtractVerdict(raw)
	if err != nil {
		return ai.Verdict{}, fmt.Errorf("%w (raw: %q)", err, truncate(raw, 200))
	}
	return v, nil
}

const describePrompt = `Describe this photo in one short sentence for a screen reader. Plain language, no preamble, no quotes.`

func (e *Engine) DescribeImage(ctx context.Context, img ai.Image) (string, error) {
	raw, err := e.generate(ctx, 0.2, 80, &img, describePrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

const promptsPromptFmt = `You are a creative director for a daily photo scavenger hunt app.
Generate %d short, evocative photo prompts for today.

Rules:
- 1-4 words each (e.g. "Golden hour", "Something tiny", "Your hands")
- Should be achievable anywhere, indoors or outdoors
- Spark curiosity or a moment of noticing something beautiful
- One prompt per line, no numbering, no punctuation, no explanation

Today's date: %s`

// GeneratePrompts asks the model for n one-line prompts.
func (e *Engine) GeneratePrompts(ctx context.Context, date string, n int) ([]string, error) {
	raw, err := e.generate(ctx, 0.9, 80, nil, fmt.Sprintf(promptsPromptFmt, n, date))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `"'`)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	if len(out) == 0 {
		return nil, errors.New("gemini: no prompts in response")
	}
	return out, nil
}

// generate runs one completion with up to three attempts on transient errors.
func (e *Engine) generate(ctx context.Context, temperature float32, maxTokens int32, img *ai.Image, text string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("gemini: API key is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model %q is nil", e.Model)
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     ptrFloat32(temperature),
		MaxOutputTokens: ptrInt32(maxTokens),
	}

	parts := make([]genai.Part, 0, 2)
	if img != nil {
		mime := img.MIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, &genai.Blob{MIMEType: mime, Data: img.Data})
	}
	parts = append(parts, genai.Text(text))

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		txt := firstText(resp)
		if strings.TrimSpace(txt) == "" {
			return "", errors.New("gemini: empty response")
		}
		return txt, nil
	}
	return "", lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
