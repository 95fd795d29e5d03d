package response

import "github.com/gin-gonic/gin"

// Msg writes the uniform `{"msg": ...}` body used for every error and
// confirmation response.
func Msg(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"msg": msg})
}
