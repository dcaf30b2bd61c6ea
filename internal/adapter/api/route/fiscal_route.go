package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/controller"
	"github.com/hugohenrick/gerador-nfe/pkg/auth"
)

// SetupFiscalRoutes configura as rotas do módulo de configuração fiscal
func SetupFiscalRoutes(router *gin.RouterGroup, jwtService *auth.JWTService, fiscalController *controller.FiscalController) {
	// Todas as rotas de configuração fiscal requerem autenticação
	fiscalRouter := router.Group("/fiscal")
	fiscalRouter.Use(auth.Middleware(jwtService))
	{
		fiscalRouter.GET("/config", fiscalController.GetConfig)
		fiscalRouter.PUT("/config", fiscalController.UpdateConfig)
	}
}
