package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/controller"
	"github.com/hugohenrick/gerador-nfe/pkg/auth"
)

// SetupNFeRoutes configura as rotas do módulo de NF-e
func SetupNFeRoutes(router *gin.RouterGroup, jwtService *auth.JWTService, nfeController *controller.NFeController) {
	// Todas as rotas de NF-e requerem autenticação
	nfeRouter := router.Group("/nfe")
	nfeRouter.Use(auth.Middleware(jwtService))
	{
		nfeRouter.POST("", nfeController.Generate)
		nfeRouter.GET("", nfeController.List)
		nfeRouter.GET("/:id", nfeController.GetByID)
		nfeRouter.GET("/:id/xml", nfeController.GetXML)
		nfeRouter.DELETE("/:id", nfeController.Delete)
	}
}
