package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/businesscards/internal/entities"
)

type CardsController struct {
	reader CardReader
	writer CardWriter
}

func NewCardsController(reader CardReader, writer CardWriter) *CardsController {
	return &CardsController{
		reader: reader,
		writer: writer,
	}
}

// Create stores a card from a JSON body.
// POST /api/BusinessCard
func (cc *CardsController) Create(c *gin.Context) {
	var candidate entities.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid business card",
			Code:    "InvalidRequest",
			Details: err.Error(),
		})
		return
	}
	if candidate.DateOfBirth.IsZero() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid business card",
			Code:    "InvalidRequest",
			Details: "dateOfBirth is required",
		})
		return
	}

	card, err := cc.writer.Create(c.Request.Context(), candidate)
	if err != nil {
		respondServiceError(c, err, "create business card")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Business card created successfully",
		Data:    card,
	})
}

// List returns stored cards, filtered by the optional search query.
// GET /api/BusinessCard?search=
func (cc *CardsController) List(c *gin.Context) {
	list, err := cc.reader.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondInternalError(c, err, "list business cards")
		return
	}
	if list == nil {
		list = []entities.BusinessCard{}
	}
	c.JSON(http.StatusOK, list)
}

// Get returns a single card.
// GET /api/BusinessCard/:id
func (cc *CardsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := cc.reader.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get business card")
		return
	}
	c.JSON(http.StatusOK, card)
}

// Delete removes a card. Unknown ids still answer 200.
// DELETE /api/BusinessCard/:id
func (cc *CardsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := cc.writer.Delete(c.Request.Context(), id); err != nil {
		respondInternalError(c, err, "delete business card")
		return
	}
	respondSuccess(c, "Business card deleted successfully")
}
