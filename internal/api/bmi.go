package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"sthira/internal/domain" // BMI calculation

	"github.com/gin-gonic/gin" // Gin web framework
)

// BMIHandler returns the live BMI reading for ?weight=&height=
func BMIHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		weight, werr := strconv.ParseFloat(c.Query("weight"), 64) // Weight in kg
		height, herr := strconv.ParseFloat(c.Query("height"), 64) // Height in cm
		if werr != nil || herr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight and height must be numbers"})
			return
		}
		reading, err := domain.CalculateBMI(weight, height)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reading)
	}
}
