package handle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"impromptu/internal/ai"
)

type fakeEngine struct {
	verdict  ai.Verdict
	judgeErr error
	describe string
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) JudgePhoto(ctx context.Context, promptText string, img ai.Image) (ai.Verdict, error) {
	return f.verdict, f.judgeErr
}

func (f *fakeEngine) DescribeImage(ctx context.Context, img ai.Image) (string, error) {
	return f.describe, nil
}

func (f *fakeEngine) GeneratePrompts(ctx context.Context, date string, n int) ([]string, error) {
	return nil, errors.New("not implemented")
}

func judgeRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := New(ai.NewJudge(&fakeEngine{
		verdict:  ai.Verdict{Matches: true, Feedback: "Gorgeous warm light!"},
		describe: "A sunset over rooftops.",
	}), nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/photos/judge", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.JudgePhoto(rec, req)
	return rec
}

func TestJudgePhotoEndpoint(t *testing.T) {
	img := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0x01})
	body, _ := json.Marshal(map[string]string{
		"prompt": "Golden hour",
		"image":  img,
	})

	rec := judgeRequest(t, string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp judgeResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Matches || resp.Feedback != "Gorgeous warm light!" {
		t.Errorf("verdict = %+v", resp)
	}
	if resp.AltText != "A sunset over rooftops." {
		t.Errorf("alt = %q", resp.AltText)
	}
}

func TestJudgePhotoEndpointBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "not json", body: "{", code: http.StatusBadRequest},
		{name: "missing prompt", body: `{"image":"aGk="}`, code: http.StatusBadRequest},
		{name: "bad base64", body: `{"prompt":"Golden hour","image":"!!!"}`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := judgeRequest(t, tt.body); rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
		})
	}
}
