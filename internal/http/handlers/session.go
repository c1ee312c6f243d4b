package handlers

import (
	"net/http"

	"luxride/internal/domain/models"
	"luxride/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func (a *API) GetSession(c *gin.Context) {
	sess, err := a.SessionService(middleware.GetRequestID(c)).Current(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sess})
}

func (a *API) CreateSession(c *gin.Context) {
	var in models.Session
	if !BindJSONOrError(c, &in) {
		return
	}
	sess, err := a.SessionService(middleware.GetRequestID(c)).Login(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed in", "data": sess})
}

func (a *API) DeleteSession(c *gin.Context) {
	if err := a.SessionService(middleware.GetRequestID(c)).Logout(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// RequireDriver guards driver routes behind the stored user/userType pair.
func (a *API) RequireDriver(c *gin.Context) {
	if err := a.SessionService(middleware.GetRequestID(c)).RequireDriver(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		c.Abort()
		return
	}
	c.Next()
}
