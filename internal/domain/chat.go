package domain

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatTurn is one message in a conversation.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatMode tells which responder produced a reply.
type ChatMode string

const (
	ChatModeLLM       ChatMode = "llm"
	ChatModeRuleBased ChatMode = "rule_based"
)

// ChatReply is the answer returned to the client.
type ChatReply struct {
	Response string   `json:"response"`
	Mode     ChatMode `json:"mode"`
}

// ChatStatus reports the configured responder.
type ChatStatus struct {
	Mode     ChatMode `json:"mode"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
}
