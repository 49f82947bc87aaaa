package controllers

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Chatbot forwards the message to the external assistant service and relays
// its answer. The service is plain request/response HTTP, nothing is kept
// server-side.
func Chatbot(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request"})
		return
	}

	chatbotURL := os.Getenv("CHATBOT_URL")
	if chatbotURL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chatbot is not configured"})
		return
	}

	resp, err := http.Post(chatbotURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Chatbot request failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Chatbot service unavailable"})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to read chatbot response"})
		return
	}

	c.Data(resp.StatusCode, "application/json", respBody)
}
