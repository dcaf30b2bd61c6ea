package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/controller"
	"github.com/hugohenrick/gerador-nfe/pkg/auth"
)

// SetupCertificateRoutes configura as rotas do módulo de certificados digitais
func SetupCertificateRoutes(router *gin.RouterGroup, jwtService *auth.JWTService, certificateController *controller.CertificateController) {
	// Todas as rotas de certificados requerem autenticação
	certificateRouter := router.Group("/certificates")
	certificateRouter.Use(auth.Middleware(jwtService))
	{
		certificateRouter.POST("", certificateController.Upload)
		certificateRouter.GET("", certificateController.List)
		certificateRouter.GET("/:id", certificateController.Get)
		certificateRouter.POST("/:id/activate", certificateController.Activate)
		certificateRouter.DELETE("/:id", certificateController.Delete)
	}
}
