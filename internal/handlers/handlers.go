package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID reads an ObjectID path parameter, answering 400 when it is malformed.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := repositories.ParseID(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindJSON binds the request body into obj, answering 400 on failure.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindPatch binds a typed update body into obj, rejecting members obj does
// not declare, and answers 400 on failure.
func bindPatch(c *gin.Context, obj interface{}) bool {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(obj)
	if err == nil {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// serverError records err for the request logger and answers 500.
func serverError(c *gin.Context, action string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + ": " + err.Error()})
}

// updateError answers 400 for a patch with nothing to set and 500 otherwise.
func updateError(c *gin.Context, action string, err error) {
	if errors.Is(err, repositories.ErrEmptyPatch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	serverError(c, action, err)
}
