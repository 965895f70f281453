package ai

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoVerdict reports that no verdict could be recovered from model text.
var ErrNoVerdict = errors.New("no verdict in model response")

var (
	fenceRe    = regexp.MustCompile("(?i)```json|```")
	matchesRe  = regexp.MustCompile(`"matches"\s*:\s*(true|false)`)
	feedbackRe = regexp.MustCompile(`"feedback"\s*:\s*"((?:[^"\\]|\\.)*)"`)
)

// ExtractVerdict recovers a Verdict from raw model text. The text may be
// wrapped in markdown code fences and may be truncated mid-object.
//
// The loose regex pass runs before the strict parse on purpose: when the
// model output is cut off after the two fields of interest, the regexes
// still recover them while a full JSON parse cannot. Keep this order.
func ExtractVerdict(raw string) (Verdict, error) {
	stripped := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))

	mm := matchesRe.FindStringSubmatch(stripped)
	fm := feedbackRe.FindStringSubmatch(stripped)
	if mm != nil && fm != nil {
		return Verdict{
			Matches:  mm[1] == "true",
			Feedback: unescape(fm[1]),
		}, nil
	}

	// Last resort: strict parse of the outermost object.
	start := strings.IndexByte(stripped, '{')
	end := strings.LastIndexByte(stripped, '}')
	if start == -1 || end <= start {
		return Verdict{}, ErrNoVerdict
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(stripped[start:end+1]), &obj); err != nil {
		return Verdict{}, ErrNoVerdict
	}
	matches, okM := obj["matches"].(bool)
	feedback, okF := obj["feedback"].(string)
	if !okM || !okF {
		return Verdict{}, ErrNoVerdict
	}
	return Verdict{Matches: matches, Feedback: feedback}, nil
}

// unescape resolves JSON escapes captured by the feedback regex.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	if out, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return out
	}
	return s
}
