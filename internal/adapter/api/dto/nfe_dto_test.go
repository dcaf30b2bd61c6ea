package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/xmlbuilder"
	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

// Requisição mínima: só emitente, destinatário e um item, sem nenhum
// bloco opcional
const minimalRequest = `{
	"issuer": {"cnpj": "12345678000195", "name": "EMPRESA TESTE LTDA"},
	"recipient": {"name": "CLIENTE TESTE", "cpf": "52998224725"},
	"items": [{"code": "001", "description": "CAMISETA", "quantity": "1", "unit_price": "100.00"}],
	"calculate_item_taxes": true
}`

func decodeRequest(t *testing.T, payload string) *NFeRequest {
	t.Helper()
	var req NFeRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("erro ao decodificar requisição: %v", err)
	}
	return &req
}

func TestToDomainMinimalRequestDefaults(t *testing.T) {
	invoice := decodeRequest(t, minimalRequest).ToDomain()

	if invoice.Transport.FreightMode != nfe.FreightNone {
		t.Errorf("modFrete = %q, esperado %q", invoice.Transport.FreightMode, nfe.FreightNone)
	}
	if invoice.Recipient.IEIndicator != nfe.IENonContributor {
		t.Errorf("indIEDest = %q, esperado %q", invoice.Recipient.IEIndicator, nfe.IENonContributor)
	}
	if invoice.Issuer.TaxRegime != nfe.RegimeNormal {
		t.Errorf("CRT = %q, esperado %q", invoice.Issuer.TaxRegime, nfe.RegimeNormal)
	}

	out, _, err := xmlbuilder.Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	for _, want := range []string{
		"<modFrete>9</modFrete>",
		"<indIEDest>9</indIEDest>",
		"<CRT>3</CRT>",
		"<cPais>1058</cPais>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("elemento %s não encontrado no XML", want)
		}
	}
	for _, empty := range []string{
		"<modFrete></modFrete>",
		"<indIEDest></indIEDest>",
		"<CRT></CRT>",
		"<tpNF></tpNF>",
		"<tpAmb></tpAmb>",
	} {
		if strings.Contains(out, empty) {
			t.Errorf("XML gerado contém elemento de código vazio: %s", empty)
		}
	}
}

func TestToDomainDerivesStateCodeFromIssuerUF(t *testing.T) {
	payload := `{
		"issuer": {"cnpj": "12345678000195", "name": "EMPRESA TESTE LTDA", "address": {"state": "MG"}},
		"recipient": {"name": "CLIENTE TESTE", "cpf": "52998224725"},
		"items": [{"code": "001", "description": "CAMISETA", "quantity": "1", "unit_price": "100.00"}],
		"calculate_item_taxes": true
	}`
	invoice := decodeRequest(t, payload).ToDomain()

	if invoice.Identification.StateCode != "31" {
		t.Fatalf("cUF = %s, esperado 31 (derivado da UF do emitente)", invoice.Identification.StateCode)
	}

	_, key, err := xmlbuilder.Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if key.String()[0:2] != "31" {
		t.Errorf("chave inicia com %s, esperado 31", key.String()[0:2])
	}
}

func TestToDomainKeepsExplicitIdentification(t *testing.T) {
	payload := `{
		"identification": {"model": "55", "state_code": "33", "series": 3, "number": 42, "random_code": "00000007"},
		"issuer": {"cnpj": "12345678000195", "name": "EMPRESA TESTE LTDA", "address": {"state": "MG"}},
		"recipient": {"name": "CLIENTE TESTE", "cpf": "52998224725"},
		"items": [{"code": "001", "description": "CAMISETA", "quantity": "1", "unit_price": "100.00"}],
		"calculate_item_taxes": true
	}`
	invoice := decodeRequest(t, payload).ToDomain()

	if invoice.Identification.StateCode != "33" {
		t.Errorf("cUF = %s, valor explícito não preservado", invoice.Identification.StateCode)
	}
	if invoice.Identification.Series != 3 || invoice.Identification.Number != 42 {
		t.Errorf("serie/nNF = %d/%d, esperado 3/42", invoice.Identification.Series, invoice.Identification.Number)
	}
	// Os demais códigos do bloco parcial recebem os padrões
	if invoice.Identification.Type != nfe.InvoiceOutbound {
		t.Errorf("tpNF = %q, esperado %q", invoice.Identification.Type, nfe.InvoiceOutbound)
	}
	if invoice.Identification.Environment != nfe.EnvironmentHomologation {
		t.Errorf("tpAmb = %q, esperado %q", invoice.Identification.Environment, nfe.EnvironmentHomologation)
	}
}
