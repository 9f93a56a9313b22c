package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Githubuser289/Calories-BE/services"
	"github.com/Githubuser289/Calories-BE/utils"
)

type DayController struct {
	ledger *services.LedgerService
}

func NewDayController(ledger *services.LedgerService) *DayController {
	return &DayController{ledger: ledger}
}

type ConsumedProductInput struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type ProductNameInput struct {
	Name string `json:"name" binding:"required"`
}

type consumedLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// GetDay godoc
// @Summary      List products consumed on a date
// @Tags         day
// @Security     BearerAuth
// @Produce      json
// @Param        date path string true "date as MM-DD-YYYY, not in the future"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /day/{date} [get]
func (ctl *DayController) GetDay(c *gin.Context) {
	date, err := utils.ParseLedgerDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID := c.GetString("userID")
	products, err := ctl.ledger.GetProducts(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "There are no records for given date."})
			return
		}
		serverError(c, err)
		return
	}

	lines := make([]consumedLine, 0, len(products))
	for _, p := range products {
		lines = append(lines, consumedLine{Name: p.Name, Amount: p.Amount})
	}
	c.JSON(http.StatusOK, gin.H{"data": lines})
}

// AddProduct godoc
// @Summary      Add a consumed product to a date
// @Tags         day
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        date path string true "date as MM-DD-YYYY, not in the future"
// @Param        body body ConsumedProductInput true "product to add"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /day/{date} [post]
func (ctl *DayController) AddProduct(c *gin.Context) {
	date, err := utils.ParseLedgerDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var input ConsumedProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID := c.GetString("userID")
	added, err := ctl.ledger.AddProduct(c.Request.Context(), userID, date, input.Name, input.Amount)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No profile for this user; submit intake data first."})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "The product has been successfully added.",
		"data":    consumedLine{Name: added.Name, Amount: added.Amount},
	})
}

// RemoveProduct godoc
// @Summary      Remove a consumed product from a date
// @Description  Removes the first line whose name matches exactly.
// @Tags         day
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        date path string true "date as MM-DD-YYYY, not in the future"
// @Param        body body ProductNameInput true "product name"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /day/{date} [delete]
func (ctl *DayController) RemoveProduct(c *gin.Context) {
	date, err := utils.ParseLedgerDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var input ProductNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID := c.GetString("userID")
	err = ctl.ledger.RemoveProduct(c.Request.Context(), userID, date, input.Name)
	if err != nil {
		// A miss answers 400, not 404, matching the established API.
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "There are no records for the given date"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "The product has been successfully deleted",
		"data":    ProductNameInput{Name: input.Name},
	})
}
