// Package webserver exposes the interaction log for analytics tooling.
// Read-only: the bot is the only writer.
package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sentra-id/cekfakta/src/models"
)

const maxPageSize = 100

func New(db *gorm.DB) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery(), cors.Default())
	attachRoutes(g, db)
	return g
}

func attachRoutes(g *gin.Engine, db *gorm.DB) {
	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := g.Group("/v1")
	v1.GET("/interactions", listInteractions(db))
	v1.GET("/interactions/:id", getInteraction(db))
}

func listInteractions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := intQuery(c, "limit", 25)
		if limit > maxPageSize {
			limit = maxPageSize
		}
		offset := intQuery(c, "offset", 0)

		q := db.Model(&models.Interaction{})
		if verdict := c.Query("verdict"); verdict != "" {
			q = q.Where("verdict = ?", verdict)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}

		var records []models.Interaction
		if err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total":        total,
			"interactions": records,
		})
	}
}

func getInteraction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var rec models.Interaction
		if err := db.First(&rec, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
