package prompt

import "time"

// fallbackPrompts keeps the app usable when the generator is unreachable.
var fallbackPrompts = []string{
	"Your view",
	"Something tiny",
	"Golden hour",
	"Favorite texture",
	"A heart shaped...",
	"Warm light",
	"Still life",
	"Morning sky",
	"A design fail",
	"Stranger's art",
	"Soft shadow",
	"A buddy",
	"Best snack",
	"Your hands",
}

// Fallback returns a deterministic set of n prompts for the given day,
// rotating through the built-in list so consecutive days differ.
func Fallback(day string, n int) []string {
	t, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		t = time.Now()
	}
	start := int(t.Unix()/86400) % len(fallbackPrompts)
	if start < 0 {
		start += len(fallbackPrompts)
	}

	out := make([]string, 0, n)
	for i := 0; i < n && i < len(fallbackPrompts); i++ {
		out = append(out, fallbackPrompts[(start+i)%len(fallbackPrompts)])
	}
	return out
}
