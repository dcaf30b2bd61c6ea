package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/dto"
	"github.com/hugohenrick/gerador-nfe/internal/adapter/repository"
	"github.com/hugohenrick/gerador-nfe/internal/domain/fiscal"
	"github.com/hugohenrick/gerador-nfe/pkg/logger"
)

// FiscalController manipula as requisições de configuração fiscal
type FiscalController struct {
	fiscalRepo fiscal.Repository
	logger     logger.Logger
}

// NewFiscalController cria uma nova instância de FiscalController
func NewFiscalController(fiscalRepo fiscal.Repository, logger logger.Logger) *FiscalController {
	return &FiscalController{
		fiscalRepo: fiscalRepo,
		logger:     logger,
	}
}

// @Summary Consultar configuração fiscal
// @Description Retorna a configuração de numeração e ambiente usada na emissão
// @Tags Fiscal
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.FiscalConfigResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/config [get]
func (c *FiscalController) GetConfig(ctx *gin.Context) {
	config, err := c.fiscalRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "configuração fiscal não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar configuração fiscal", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFiscalConfigResponse(config))
}

// @Summary Atualizar configuração fiscal
// @Description Atualiza série, próximo número, ambiente e certificado da emissão
// @Tags Fiscal
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param config body dto.FiscalConfigRequest true "Configuração fiscal"
// @Success 200 {object} dto.FiscalConfigResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fiscal/config [put]
func (c *FiscalController) UpdateConfig(ctx *gin.Context) {
	var req dto.FiscalConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	config, err := c.fiscalRepo.Get(ctx)
	if err != nil {
		// Primeira configuração do serviço
		config = fiscal.NewConfiguration()
	}

	if err := config.Configure(req.Series, req.NextNumber, req.Environment); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "configuração inválida", err.Error()))
		return
	}

	config.SetCertificate(req.CertificateID)
	if req.ContingencyEnabled {
		config.EnableContingency()
	} else {
		config.DisableContingency()
	}

	if err := c.fiscalRepo.Save(ctx, config); err != nil {
		c.logger.Error("erro ao salvar configuração fiscal", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar configuração fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFiscalConfigResponse(config))
}
