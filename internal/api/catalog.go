package api

import (
	"net/http" // HTTP status codes

	"sthira/internal/accounts" // Account repository
	"sthira/internal/domain"   // Account models
	"sthira/internal/simulate" // Static catalogs

	"github.com/gin-gonic/gin" // Gin web framework
)

// TrainerCard is what an end-user sees when browsing trainers
type TrainerCard struct {
	ID             int64   `json:"id"`                       // Account id
	Name           string  `json:"name"`                     // Display name
	Specialization string  `json:"specialization,omitempty"` // Yoga styles
	Location       string  `json:"location,omitempty"`       // City or studio
	Experience     int     `json:"experience"`               // Years of experience
	Rating         float64 `json:"rating,omitempty"`         // Average rating
	Bio            string  `json:"bio,omitempty"`            // Free text
}

// RecipeHandler returns one recipe from the nutrition section
func RecipeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		recipe, err := simulate.LookupRecipe(c.Param("name"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, recipe)
	}
}

// KidsProgramsHandler lists the kids yoga programs of one age group
func KidsProgramsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		group := c.Param("ageGroup")
		programs, err := simulate.KidsPrograms(group)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ageGroup": group, "programs": programs})
	}
}

// SearchTrainersHandler filters registered trainers by ?q=
func SearchTrainersHandler(repo *accounts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		found := repo.SearchTrainers(c.Query("q"))
		cards := make([]TrainerCard, 0, len(found))
		for _, t := range found {
			cards = append(cards, trainerCard(t))
		}
		c.JSON(http.StatusOK, gin.H{"trainers": cards, "total": len(cards)})
	}
}

func trainerCard(a domain.Account) TrainerCard {
	return TrainerCard{
		ID:             a.ID,
		Name:           a.Name,
		Specialization: a.Specialization,
		Location:       a.Location,
		Experience:     a.Experience,
		Rating:         a.Rating,
		Bio:            a.Bio,
	}
}
