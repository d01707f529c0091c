package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
	"github.com/noah-isme/soutien-scolaire-api/pkg/response"
)

const msgInvalidBody = "Tous les champs requis doivent être fournis"

// bindJSON decodes the request body into dest, answering 400 on failure.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgInvalidBody))
		return false
	}
	return true
}
