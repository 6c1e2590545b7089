package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lumistudy/lumistudy-backend/internal/services"
)

type CommitmentHandler struct {
	commitmentService services.CommitmentService
}

func NewCommitmentHandler(commitmentService services.CommitmentService) *CommitmentHandler {
	return &CommitmentHandler{commitmentService: commitmentService}
}

func (ch *CommitmentHandler) List(c *gin.Context) {
	commitments, err := ch.commitmentService.ListCommitments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitments": commitments})
}

func (ch *CommitmentHandler) Create(c *gin.Context) {
	var input services.CommitmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	commitment, err := ch.commitmentService.CreateCommitment(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"commitment": commitment})
}

func (ch *CommitmentHandler) Delete(c *gin.Context) {
	commitmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid commitment id"})
		return
	}
	if err := ch.commitmentService.DeleteCommitment(c.Request.Context(), commitmentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "commitment deleted"})
}
