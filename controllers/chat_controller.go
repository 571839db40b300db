package controllers

import (
	"log"
	"net/http"
	"strings"

	"hotel-assistant/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	resolver  *services.Resolver
	extractor services.EntityExtractor
}

func NewChatController(resolver *services.Resolver, extractor services.EntityExtractor) *ChatController {
	return &ChatController{resolver: resolver, extractor: extractor}
}

type chatRequest struct {
	Sender   string            `json:"sender"`
	Message  string            `json:"message"`
	Entities []services.Entity `json:"entities"`
}

// HandleMessage runs one dialogue turn. Entities may come pre-extracted in
// the payload (an external NLU posting on behalf of the user); otherwise the
// configured extractor runs over the message. Exactly one reply is returned
// per turn.
func (ctrl *ChatController) HandleMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no message provided"})
		return
	}
	sender := req.Sender
	if sender == "" {
		sender = "user"
	}

	entities := req.Entities
	if entities == nil && ctrl.extractor != nil {
		extracted, err := ctrl.extractor.Extract(req.Message)
		if err != nil {
			// Extraction has no guaranteed recall; a failed extractor is
			// the same as an empty one.
			log.Printf("chat: entity extraction failed: %v", err)
		}
		entities = extracted
	}

	reply, err := ctrl.resolver.HandleTurn(sender, req.Message, entities)
	if err != nil {
		log.Printf("chat: turn for %q failed: %v", sender, err)
	}

	c.JSON(http.StatusOK, gin.H{"responses": []string{reply}})
}
