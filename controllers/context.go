package controllers

import (
	"formforge/generation"

	"github.com/gin-gonic/gin"
)

const formServiceKey = "form_service"

// SetFormServiceToContext exposes the generation service to handlers, the
// same way db.SetDBtoContext exposes the database.
func SetFormServiceToContext(service *generation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(formServiceKey, service)
		c.Next()
	}
}

func FormServiceInstance(c *gin.Context) *generation.Service {
	v, ok := c.Get(formServiceKey)
	if !ok {
		return nil
	}
	service, _ := v.(*generation.Service)
	return service
}
