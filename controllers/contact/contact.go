package contactControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shchutski73/sport-store/models"
	"github.com/shchutski73/sport-store/serializers"
)

type CreateContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /contact
func CreateContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		contact := models.Contact{
			Name:    input.Name,
			Email:   input.Email,
			Message: input.Message,
		}
		if err := db.Create(&contact).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
	}
}

// GET /admin/contacts
func GetContacts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contacts []models.Contact
		if err := db.Order("created_at DESC").Find(&contacts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		resp := make([]serializers.ContactResponse, 0, len(contacts))
		for _, contact := range contacts {
			resp = append(resp, serializers.NewContactResponse(contact))
		}
		c.JSON(http.StatusOK, resp)
	}
}
