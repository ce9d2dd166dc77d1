package process

import (
	"encoding/json"
	"fmt"
)

// textFields are the top level keys that may hold generated text, in order of
// preference.
var textFields = []string{"text", "content", "completion", "response", "generated_text"}

// replyMatcher extracts text from one known reply shape. matched reports
// whether the shape applied; once a matcher applies no later one is tried,
// even when it produced no text.
type replyMatcher func(reply any, obj map[string]any) (text string, matched bool)

var replyMatchers = []replyMatcher{
	matchPlainString,
	matchChoices,
	matchTextField,
}

// NormalizeReply turns a completion reply of any known shape into plain text.
// Replies that yield no text are returned in their full textual form.
func NormalizeReply(reply any) string {
	obj := asObject(reply)

	var text string
	for _, match := range replyMatchers {
		if t, ok := match(reply, obj); ok {
			text = t
			break
		}
	}
	if text != "" {
		return text
	}

	return fullText(reply)
}

func matchPlainString(reply any, _ map[string]any) (string, bool) {
	switch r := reply.(type) {
	case string:
		return r, true
	case []byte:
		return rawString(r)
	case json.RawMessage:
		return rawString(r)
	}

	return "", false
}

func rawString(raw []byte) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}

	return s, true
}

func matchChoices(_ any, obj map[string]any) (string, bool) {
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}

	choice, _ := choices[0].(map[string]any)
	message, _ := choice["message"].(map[string]any)
	content, ok := message["content"]
	if !ok {
		return "", true
	}

	return stringify(content), true
}

func matchTextField(_ any, obj map[string]any) (string, bool) {
	for _, field := range textFields {
		if v, ok := obj[field]; ok {
			return stringify(v), true
		}
	}

	return "", false
}

// asObject views a reply as a JSON object. Structs and raw JSON go through
// their JSON form; anything that is not an object yields nil.
func asObject(reply any) map[string]any {
	switch r := reply.(type) {
	case nil, string:
		return nil
	case map[string]any:
		return r
	case []byte:
		return decodeObject(r)
	case json.RawMessage:
		return decodeObject(r)
	}

	raw, err := json.Marshal(reply)
	if err != nil {
		return nil
	}

	return decodeObject(raw)
}

func decodeObject(raw []byte) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}

	return obj
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}

	return fmt.Sprint(v)
}

func fullText(reply any) string {
	switch r := reply.(type) {
	case nil:
		return ""
	case string:
		return r
	case []byte:
		return string(r)
	case json.RawMessage:
		return string(r)
	}
	if raw, err := json.Marshal(reply); err == nil {
		return string(raw)
	}

	return fmt.Sprint(reply)
}
