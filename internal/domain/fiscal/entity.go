package fiscal

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

// Configuration contém os parâmetros de numeração e ambiente usados para
// preencher a identificação das NF-e geradas quando o chamador não informa
// série e número
type Configuration struct {
	ID            string          `json:"id"`
	Series        int             `json:"series"`
	NextNumber    int             `json:"next_number"`
	Environment   nfe.Environment `json:"environment"`
	CertificateID string          `json:"certificate_id,omitempty"`

	// Emissão em contingência (tpEmis diferente de normal)
	ContingencyEnabled bool `json:"contingency_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewConfiguration cria uma configuração fiscal com os padrões de homologação
func NewConfiguration() *Configuration {
	now := time.Now()
	return &Configuration{
		ID:          uuid.New().String(),
		Series:      1,
		NextNumber:  1,
		Environment: nfe.EnvironmentHomologation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Configure atualiza os parâmetros de emissão
func (c *Configuration) Configure(series, nextNumber int, environment nfe.Environment) error {
	if series <= 0 {
		return errors.New("série da NFe deve ser maior que zero")
	}
	if nextNumber <= 0 {
		return errors.New("número inicial da NFe deve ser maior que zero")
	}
	if environment != nfe.EnvironmentProduction && environment != nfe.EnvironmentHomologation {
		return errors.New("ambiente de emissão inválido")
	}

	c.Series = series
	c.NextNumber = nextNumber
	c.Environment = environment
	c.UpdatedAt = time.Now()
	return nil
}

// SetCertificate vincula o certificado digital ativo
func (c *Configuration) SetCertificate(certificateID string) {
	c.CertificateID = certificateID
	c.UpdatedAt = time.Now()
}

// EnableContingency habilita o modo de contingência
func (c *Configuration) EnableContingency() {
	c.ContingencyEnabled = true
	c.UpdatedAt = time.Now()
}

// DisableContingency desabilita o modo de contingência
func (c *Configuration) DisableContingency() {
	c.ContingencyEnabled = false
	c.UpdatedAt = time.Now()
}

// NextNFeNumber obtém e incrementa o número da próxima NF-e
func (c *Configuration) NextNFeNumber() int {
	current := c.NextNumber
	c.NextNumber++
	c.UpdatedAt = time.Now()
	return current
}
