package models

import "strconv"

// SharedPromptData is the payload carried by a stateless compressed link.
// The optional fields are omitted from the encoded form when empty so the
// fragment stays as short as possible.
type SharedPromptData struct {
	Transcript string `json:"transcript"`
	Prompt     string `json:"prompt"`
	// Modes is a comma-joined list of mode ids.
	Modes string `json:"modes"`
	// Timestamp is epoch milliseconds.
	Timestamp int64  `json:"timestamp"`
	Theme     string `json:"theme,omitempty"`
	Model     string `json:"model,omitempty"`
}

// Valid reports whether the payload satisfies the presence invariant:
// both prompt and transcript must be non-empty.
func (d *SharedPromptData) Valid() bool {
	return d != nil && d.Prompt != "" && d.Transcript != ""
}

// PublishedItem is one entry in the locally persisted list of shares the
// user has published. It lives only on the machine that created it.
type PublishedItem struct {
	ID         string `json:"id"`
	Timestamp  int64  `json:"timestamp"`
	Transcript string `json:"transcript"`
	Prompt     string `json:"prompt"`
	Modes      string `json:"modes"`
	URL        string `json:"url"`
}

// HistoryItem is one entry in the locally persisted prompt-generation
// history. Same cap and persistence pattern as PublishedItem, but no URL.
type HistoryItem struct {
	ID         string `json:"id"`
	Timestamp  int64  `json:"timestamp"`
	Transcript string `json:"transcript"`
	Prompt     string `json:"prompt"`
	Modes      string `json:"modes"`
}

// ItemID derives a list-entry id from an epoch-millisecond timestamp.
func ItemID(timestampMillis int64) string {
	return strconv.FormatInt(timestampMillis, 10)
}
