package dto

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant tool"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest defines the payload for the admin assistant endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

// ChatResponse defines the assistant's reply.
type ChatResponse struct {
	Message    ChatMessage `json:"message"`
	ToolRounds int         `json:"toolRounds"` // Tool-execution iterations consumed
}
