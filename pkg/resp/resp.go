package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Data(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
func CreatedMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
