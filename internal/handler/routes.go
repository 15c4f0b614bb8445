package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/docsim/backend/internal/auth"
)

// RegisterRoutes wires every endpoint under /api/v1. Document routes and the
// authenticated user routes sit behind the access-kind bearer verifier; the
// refresh endpoint requires a refresh-kind token.
func RegisterRoutes(r *gin.Engine, users *UserHandler, documents *DocumentHandler, codec *auth.Codec, blocklist RevocationChecker) {
	r.GET("/", Root)
	r.GET("/ping", Ping)

	accessBearer := TokenBearer(AccessToken, codec, blocklist)
	refreshBearer := TokenBearer(RefreshToken, codec, blocklist)

	user := r.Group("/api/v1/user")
	{
		user.POST("/signup", users.Signup)
		user.POST("/login", users.Login)
		user.GET("/refresh", refreshBearer, users.Refresh)
		user.POST("/logout", accessBearer, users.Logout)
		user.GET("/me", accessBearer, users.Me)
		user.GET("", accessBearer, users.GetAll)
		user.GET("/:email", accessBearer, users.GetByEmail)
	}

	document := r.Group("/api/v1/document", accessBearer)
	{
		document.GET("", documents.GetAll)
		document.GET("/paginated", documents.GetAllPaginated)
		document.GET("/similarity", documents.Compare)
		document.GET("/title/:title", documents.GetByTitle)
		document.GET("/:id", documents.GetByID)
		document.POST("", documents.Create)
		document.PATCH("/:id", documents.Update)
		document.DELETE("/:id", documents.Delete)
	}
}
