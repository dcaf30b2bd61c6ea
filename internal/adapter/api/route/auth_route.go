package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Emissão de token (não requer autenticação)
		authRouter.POST("/token", authController.Token)
	}
}
