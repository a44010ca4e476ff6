package controllers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	apperrors "github.com/Greendayy/Ali-Express/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondError(c *gin.Context, err *apperrors.Error) {
	c.JSON(err.Code, err)
}

// bindingMessage turns a ShouldBindJSON failure into a client-safe message
// naming the offending fields.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				parts = append(parts, fe.Field()+" is required")
			case "uuid":
				parts = append(parts, fe.Field()+" must be a valid UUID")
			case "min":
				parts = append(parts, fe.Field()+" must be at least "+fe.Param())
			default:
				parts = append(parts, fe.Field()+" is invalid")
			}
		}
		return "Invalid input: " + strings.Join(parts, ", ")
	}

	var uerr *json.UnmarshalTypeError
	if stderrors.As(err, &uerr) && uerr.Field != "" {
		return fmt.Sprintf("Invalid input: %s is malformed", uerr.Field)
	}

	return "Invalid request body"
}

// gatewayExpired reports whether a gateway call died on the request deadline
// rather than on the gateway itself.
func gatewayExpired(err error) bool {
	return stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled)
}
