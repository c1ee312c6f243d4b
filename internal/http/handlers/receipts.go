package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ListTrips(c *gin.Context) {
	trips, err := a.receiptService(c).ListTrips(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trips})
}

func (a *API) GetReceipt(c *gin.Context) {
	b, err := a.receiptService(c).Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": b})
}

func (a *API) ReceiptText(c *gin.Context) {
	data, filename, err := a.receiptService(c).Text(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "text/plain; charset=utf-8", filename, data)
}

func (a *API) ReceiptPDF(c *gin.Context) {
	data, filename, err := a.receiptService(c).PDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "application/pdf", filename, data)
}

type ratingPayload struct {
	Rating int `json:"rating"`
}

func (a *API) RateRide(c *gin.Context) {
	var in ratingPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	r, err := a.receiptService(c).Rate(c.Request.Context(), c.Param("id"), in.Rating)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "rating saved", "data": r})
}
