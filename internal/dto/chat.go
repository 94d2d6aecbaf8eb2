package dto

import "ghars/internal/models"

// ChatRequest is one free-text question with optional context narrowing.
type ChatRequest struct {
	Message string              `json:"message"`
	Context *models.ChatContext `json:"context,omitempty"`
}
