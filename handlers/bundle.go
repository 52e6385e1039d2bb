// File: roomcheck/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	ValidateAvailability gin.HandlerFunc

	// Admin endpoints
	AdminToken              string
	InvalidateCategoryCache gin.HandlerFunc

	Health gin.HandlerFunc
}
