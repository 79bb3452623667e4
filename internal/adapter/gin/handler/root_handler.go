package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RootHandler serves the liveness/greeting endpoint. It carries no state and
// touches no collaborator; it exists as a smoke test for the service.
type RootHandler struct{}

// NewRootHandler creates a new RootHandler instance
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Greeting handles GET /
func (h *RootHandler) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to my World! It is now %s", time.Now().Format(time.RFC3339)),
	})
}
