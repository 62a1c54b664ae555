package response_models

const (
	LiveEventChunk = "chunk"
	LiveEventDone  = "done"
	LiveEventError = "error"
)

// LiveEvent is one server-sent event of the live travel stream.
type LiveEvent struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	HistoryID string `json:"historyId,omitempty"`
	Message   string `json:"message,omitempty"`
}
