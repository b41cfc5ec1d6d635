package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the query endpoints onto router. Static segments
// (search, filter) and the composite-key params share the /cards prefix;
// gin resolves them by trying static children before the params.
func RegisterRoutes(router *gin.Engine, cards *CardHandler, stats *StatsHandler) {
	router.GET("/", Root)
	router.GET("/stats", stats.Stats)

	g := router.Group("/cards")
	g.GET("", cards.ListCards)
	g.GET("/search/name/:name", cards.SearchByName)
	g.GET("/filter/type/:type", cards.FilterByType)
	g.GET("/filter/rarity/:rarity", cards.FilterByRarity)
	g.GET("/filter/set/:set", cards.FilterBySet)
	g.GET("/:setId/:cardId", cards.GetCard)
}
