package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) EarningsSummary(c *gin.Context) {
	s, err := a.earningsService(c).Summary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}

func (a *API) MonthlyEarnings(c *gin.Context) {
	months, err := a.earningsService(c).Monthly(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": months})
}

func (a *API) Dashboard(c *gin.Context) {
	d, err := a.earningsService(c).Dashboard(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": d})
}

func (a *API) ExportEarnings(c *gin.Context) {
	data, filename, err := a.earningsService(c).ExportXLSX(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, data)
}
