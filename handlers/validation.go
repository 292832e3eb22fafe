package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldError names a single violated constraint
type fieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// bindingError translates a ShouldBind error into a response:
// 422 with the offending fields for constraint violations,
// 400 for payloads that do not parse at all.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			constraint := fe.Tag()
			if fe.Param() != "" {
				constraint += "=" + fe.Param()
			}
			fields = append(fields, fieldError{Field: fe.Field(), Constraint: constraint})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
