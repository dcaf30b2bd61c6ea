package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/dto"
	"github.com/hugohenrick/gerador-nfe/internal/adapter/repository"
	"github.com/hugohenrick/gerador-nfe/internal/adapter/xmlbuilder"
	"github.com/hugohenrick/gerador-nfe/internal/domain/fiscal"
	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
	"github.com/hugohenrick/gerador-nfe/pkg/brdoc"
	"github.com/hugohenrick/gerador-nfe/pkg/logger"
)

// NFeController manipula as requisições de geração e consulta de NF-e
type NFeController struct {
	documentRepo nfe.DocumentRepository
	fiscalRepo   fiscal.Repository
	logger       logger.Logger
}

// NewNFeController cria uma nova instância de NFeController
func NewNFeController(documentRepo nfe.DocumentRepository, fiscalRepo fiscal.Repository, logger logger.Logger) *NFeController {
	return &NFeController{
		documentRepo: documentRepo,
		fiscalRepo:   fiscalRepo,
		logger:       logger,
	}
}

// @Summary Gerar NF-e
// @Description Gera o XML de uma NF-e a partir do modelo estruturado, calcula a chave de acesso e persiste o documento
// @Tags NF-e
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param nfe body dto.NFeRequest true "Modelo da NF-e"
// @Success 201 {object} dto.GenerateNFeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /nfe [post]
func (c *NFeController) Generate(ctx *gin.Context) {
	var req dto.NFeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := validateFiscalDocuments(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "documento fiscal inválido", err.Error()))
		return
	}

	invoice := req.ToDomain()

	// Sem o bloco de identificação, série, número e ambiente vêm da
	// configuração fiscal; o número consumido é incrementado no banco
	if req.Identification.Model == "" {
		if err := c.applyFiscalConfig(ctx, invoice); err != nil {
			c.logger.Error("erro ao aplicar configuração fiscal", "error", err.Error())
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao obter numeração da NF-e", err.Error()))
			return
		}
	}

	xml, key, err := xmlbuilder.Build(invoice)
	if err != nil {
		status := http.StatusBadRequest
		if !isModelError(err) {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.NewErrorResponse(status, "erro ao gerar NF-e", err.Error()))
		return
	}

	doc, err := nfe.NewDocument(key, invoice, xml)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar documento", err.Error()))
		return
	}

	if err := c.documentRepo.Create(ctx, doc); err != nil {
		c.logger.Error("erro ao salvar documento gerado", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar documento gerado", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.GenerateNFeResponse{
		ID:        doc.ID,
		AccessKey: doc.AccessKey,
		Series:    doc.Series,
		Number:    doc.Number,
		XML:       xml,
	})
}

// @Summary Listar documentos
// @Description Lista as NF-e geradas, da mais recente para a mais antiga
// @Tags NF-e
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.DocumentListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /nfe [get]
func (c *NFeController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	docs, err := c.documentRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar documentos", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar documentos", err.Error()))
		return
	}

	total, err := c.documentRepo.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar documentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDocumentListResponse(docs, dto.NewListMeta(pagination, total)))
}

// @Summary Consultar documento
// @Description Busca os metadados de uma NF-e gerada pelo ID ou pela chave de acesso de 44 dígitos
// @Tags NF-e
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento ou chave de acesso"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /nfe/{id} [get]
func (c *NFeController) GetByID(ctx *gin.Context) {
	doc, ok := c.findDocument(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDocumentResponse(doc))
}

// @Summary Baixar XML
// @Description Retorna o XML completo de uma NF-e gerada
// @Tags NF-e
// @Produce xml
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Success 200 {string} string "XML da NF-e"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /nfe/{id}/xml [get]
func (c *NFeController) GetXML(ctx *gin.Context) {
	doc, ok := c.findDocument(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(doc.XML))
}

// @Summary Remover documento
// @Description Remove uma NF-e gerada
// @Tags NF-e
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do documento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /nfe/{id} [delete]
func (c *NFeController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "formato de ID inválido"))
		return
	}

	if err := c.documentRepo.Delete(ctx, id); err != nil {
		c.logger.Error("erro ao remover documento", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover documento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("documento removido", nil))
}

// applyFiscalConfig preenche série, número e ambiente a partir da
// configuração fiscal ativa. Sem configuração cadastrada, os padrões do
// modelo (série 1, número 1, homologação) permanecem.
func (c *NFeController) applyFiscalConfig(ctx *gin.Context, invoice *nfe.NFe) error {
	config, err := c.fiscalRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			return nil
		}
		return err
	}

	number, err := c.fiscalRepo.NextNFeNumber(ctx)
	if err != nil {
		return err
	}

	invoice.Identification.Series = config.Series
	invoice.Identification.Number = number
	invoice.Identification.Environment = config.Environment
	return nil
}

// findDocument busca o documento do parâmetro de rota, respondendo o erro
// adequado quando não encontrado. O parâmetro aceita o ID do documento ou a
// chave de acesso de 44 dígitos.
func (c *NFeController) findDocument(ctx *gin.Context) (*nfe.Document, bool) {
	id := ctx.Param("id")

	if len(id) == 44 {
		key, err := nfe.ParseAccessKey(id)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "chave de acesso inválida", err.Error()))
			return nil, false
		}

		doc, err := c.documentRepo.FindByAccessKey(ctx, key.String())
		if err != nil {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "documento não encontrado", err.Error()))
			return nil, false
		}
		return doc, true
	}

	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "formato de ID inválido"))
		return nil, false
	}

	doc, err := c.documentRepo.FindByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "documento não encontrado", err.Error()))
		return nil, false
	}

	return doc, true
}

// validateFiscalDocuments confere o dígito verificador do CNPJ do emitente e
// do documento do destinatário antes da geração
func validateFiscalDocuments(req *dto.NFeRequest) error {
	if req.Issuer.CNPJ != "" {
		if err := brdoc.ValidateCNPJ(req.Issuer.CNPJ); err != nil {
			return fmt.Errorf("emitente: %w", err)
		}
	}
	if req.Recipient.CNPJ != "" {
		if err := brdoc.ValidateCNPJ(req.Recipient.CNPJ); err != nil {
			return fmt.Errorf("destinatário: %w", err)
		}
	}
	if req.Recipient.CPF != "" {
		if err := brdoc.ValidateCPF(req.Recipient.CPF); err != nil {
			return fmt.Errorf("destinatário: %w", err)
		}
	}
	return nil
}

// isModelError indica se o erro veio da validação do modelo da NF-e
func isModelError(err error) bool {
	for _, target := range []error{
		nfe.ErrNoItems,
		nfe.ErrMissingItemCode,
		nfe.ErrMissingItemDescription,
		nfe.ErrMissingIssuerCNPJ,
		nfe.ErrMissingRecipientName,
		nfe.ErrRecipientDocumentBoth,
		nfe.ErrRecipientDocumentMissing,
		nfe.ErrMalformedIdentifier,
		nfe.ErrInvalidAccessKey,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
