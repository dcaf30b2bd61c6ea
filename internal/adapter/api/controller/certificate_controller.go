package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/dto"
	"github.com/hugohenrick/gerador-nfe/internal/domain/certificate"
	"github.com/hugohenrick/gerador-nfe/pkg/logger"
	"github.com/hugohenrick/gerador-nfe/pkg/pkcs12"
)

// CertificateController manipula as requisições de certificados digitais
type CertificateController struct {
	certificateRepo certificate.Repository
	logger          logger.Logger
}

// NewCertificateController cria uma nova instância de CertificateController
func NewCertificateController(certificateRepo certificate.Repository, logger logger.Logger) *CertificateController {
	return &CertificateController{
		certificateRepo: certificateRepo,
		logger:          logger,
	}
}

// @Summary Cadastrar certificado
// @Description Recebe um arquivo PKCS12 (A1) com a senha, valida e cadastra o certificado
// @Tags Certificados
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param name formData string true "Nome de identificação do certificado"
// @Param password formData string true "Senha do arquivo PKCS12"
// @Param file formData file true "Arquivo do certificado (.pfx / .p12)"
// @Success 201 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates [post]
func (c *CertificateController) Upload(ctx *gin.Context) {
	name := ctx.PostForm("name")
	password := ctx.PostForm("password")

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo do certificado é obrigatório", err.Error()))
		return
	}

	src, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler arquivo do certificado", err.Error()))
		return
	}
	defer src.Close()

	pfxData, err := io.ReadAll(src)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler arquivo do certificado", err.Error()))
		return
	}

	// A inspeção valida a senha e extrai os dados do certificado
	info, err := pkcs12.Inspect(pfxData, password)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "certificado ou senha inválidos", err.Error()))
		return
	}

	cert, err := certificate.NewCertificate(name, info.Subject, info.Issuer, info.NotBefore, info.NotAfter)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "certificado inválido", err.Error()))
		return
	}

	if err := cert.StoreCertificateData(pfxData, password); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "certificado inválido", err.Error()))
		return
	}

	if err := c.certificateRepo.Create(ctx, cert); err != nil {
		c.logger.Error("erro ao salvar certificado", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar certificado", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCertificateResponse(cert))
}

// @Summary Listar certificados
// @Description Lista os certificados digitais cadastrados
// @Tags Certificados
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.CertificateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	certs, err := c.certificateRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar certificados", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar certificados", err.Error()))
		return
	}

	responses := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		responses = append(responses, dto.NewCertificateResponse(cert))
	}

	ctx.JSON(http.StatusOK, responses)
}

// @Summary Consultar certificado
// @Description Busca os dados de um certificado digital pelo ID
// @Tags Certificados
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do certificado"
// @Success 200 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{id} [get]
func (c *CertificateController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "formato de ID inválido"))
		return
	}

	cert, err := c.certificateRepo.FindByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "certificado não encontrado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateResponse(cert))
}

// @Summary Ativar certificado
// @Description Ativa um certificado para uso na emissão e desativa os demais
// @Tags Certificados
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do certificado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/{id}/activate [post]
func (c *CertificateController) Activate(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "formato de ID inválido"))
		return
	}

	if err := c.certificateRepo.Activate(ctx, id); err != nil {
		c.logger.Error("erro ao ativar certificado", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ativar certificado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("certificado ativado", nil))
}

// @Summary Remover certificado
// @Description Remove um certificado digital cadastrado
// @Tags Certificados
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do certificado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/{id} [delete]
func (c *CertificateController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "formato de ID inválido"))
		return
	}

	if err := c.certificateRepo.Delete(ctx, id); err != nil {
		c.logger.Error("erro ao remover certificado", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover certificado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("certificado removido", nil))
}
