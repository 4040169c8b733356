package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatRequest requires the message key; an empty string gets the fallback reply
type ChatRequest struct {
	Message *string `json:"message" binding:"required"`
}

// Chat answers a single message from the keyword rules
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply := h.bot.Respond(*req.Message)
	if h.metrics != nil {
		h.metrics.ChatReplies.WithLabelValues(string(reply.Intent)).Inc()
	}
	c.JSON(http.StatusOK, reply)
}
