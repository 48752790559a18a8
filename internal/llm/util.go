package llm

import "strings"

// CleanJSONBlock strips a markdown code fence wrapper from a payload.
// Providers wrap JSON in ``` blocks even when told not to; the opening
// fence may carry a language tag, and the closing fence can be missing
// when the response was cut short.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")

	// Any other language tag sits alone on the opening fence line.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		tag := strings.TrimSpace(text[:idx])
		if tag == "" || (len(tag) < 20 && !strings.ContainsAny(tag, " {")) {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
