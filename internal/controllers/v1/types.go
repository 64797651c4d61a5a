package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	zf_uuid "github.com/vchoerlle/zelofinanceiro-sub001/internal/uuid"
)

type URIID struct {
	ID zf_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// requestURL returns the base URL of the request, set by the router middleware.
func requestURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}

// currentUser returns the ID of the authenticated user. The auth
// middleware guarantees it is set on every protected route.
func currentUser(c *gin.Context) uuid.UUID {
	value, _ := c.Get(string(models.DBContextUser))
	id, _ := value.(uuid.UUID)
	return id
}
