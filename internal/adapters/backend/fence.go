package backend

import (
	"encoding/json"
	"strings"
)

const fence = "```"

// StripCodeFence returns the body of the first markdown code fence in content,
// dropping an optional language tag. Content that is bare JSON or has no fence
// is returned trimmed.
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
		return content
	}

	start := strings.Index(content, fence)
	if start < 0 {
		return content
	}

	body := content[start+len(fence):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if !strings.ContainsAny(tag, "{[") {
			body = body[nl+1:]
		}
	}
	body = strings.TrimSpace(body)

	// A JSON body ends where its first value does, so fences inside strings
	// and anything after the block are left out.
	if strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
		dec := json.NewDecoder(strings.NewReader(body))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == nil {
			return body[:dec.InputOffset()]
		}
	}

	if end := strings.Index(body, fence); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}
