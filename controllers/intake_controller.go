package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Githubuser289/Calories-BE/services"
)

type IntakeController struct {
	intake *services.IntakeService
}

func NewIntakeController(intake *services.IntakeService) *IntakeController {
	return &IntakeController{intake: intake}
}

// Preview godoc
// @Summary      Compute daily calorie intake and restricted foods
// @Description  Anonymous preview; nothing is persisted.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body body services.BiometricInput true "biometric data"
// @Success      200 {object} services.IntakeResult
// @Failure      400 {object} map[string]string
// @Router       /intake [get]
func (ctl *IntakeController) Preview(c *gin.Context) {
	var input services.BiometricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := ctl.intake.Preview(c.Request.Context(), input)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Commit godoc
// @Summary      Compute intake and store it on the caller's profile
// @Tags         intake
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body services.BiometricInput true "biometric data"
// @Success      200 {object} services.IntakeResult
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /day [get]
func (ctl *IntakeController) Commit(c *gin.Context) {
	var input services.BiometricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID := c.GetString("userID")
	result, err := ctl.intake.Commit(c.Request.Context(), userID, input)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
