package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (hb *HandlerBundle) ListResourcesHandler(c *gin.Context) {
	resources, err := hb.Resources.List(c.Query("category"), c.Query("q"))
	if err != nil {
		respondErr(c, err)
		return
	}
	categories, err := hb.Resources.Categories()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources, "categories": categories})
}

func (hb *HandlerBundle) GetResourceHandler(c *gin.Context) {
	resource, err := hb.Resources.Get(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resource": resource})
}
