package api

import (
	"net/http"

	"studio-calendar/internal/handler/httperr"
	"studio-calendar/internal/handler/middleware"
	"studio-calendar/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathUUID aborts with 400 when the path parameter is not a UUID.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortBind(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request format", err.Error())
}

// requireAccount reads the account set by RequireAuth.
func requireAccount(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetAccountID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
	}
	return id, ok
}
