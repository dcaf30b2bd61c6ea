package controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/dto"
	"github.com/hugohenrick/gerador-nfe/pkg/auth"
	"github.com/hugohenrick/gerador-nfe/pkg/logger"
)

// AuthController manipula a emissão de tokens de acesso. O serviço trabalha
// com um único operador, configurado pelas variáveis API_USER e
// API_PASSWORD_HASH (hash bcrypt).
type AuthController struct {
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		jwtService: jwtService,
		logger:     logger,
	}
}

// @Summary Emitir token
// @Description Autentica o operador do serviço e emite um token JWT
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Credenciais do operador"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/token [post]
func (c *AuthController) Token(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	username := os.Getenv("API_USER")
	passwordHash := os.Getenv("API_PASSWORD_HASH")
	if username == "" || passwordHash == "" {
		c.logger.Error("credenciais do operador não configuradas")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "autenticação não configurada", "defina API_USER e API_PASSWORD_HASH"))
		return
	}

	if req.Username != username || bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", "usuário ou senha incorretos"))
		return
	}

	token, err := c.jwtService.GenerateToken(req.Username)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token, TokenType: "Bearer"})
}
