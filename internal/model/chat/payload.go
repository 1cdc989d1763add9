package chat

// Response is the body returned by POST /api/ai-chat. Error may accompany a usable
// Response as a soft notice.
type Response struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// ClientRequest is the body sent to POST /api/ai-chat.
type ClientRequest struct {
	Message             string `json:"message"`
	ConversationHistory []Turn `json:"conversationHistory,omitempty"`
}
