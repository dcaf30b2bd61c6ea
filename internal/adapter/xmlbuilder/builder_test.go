package xmlbuilder

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

func invoiceFixture() *nfe.NFe {
	invoice := nfe.NewNFe()
	invoice.Identification.IssuedAt = time.Date(2023, 12, 15, 10, 30, 0, 0, time.UTC)
	invoice.Identification.MunicipalityCode = "3550308"
	invoice.Issuer.CNPJ = "12345678000195"
	invoice.Issuer.Name = "EMPRESA TESTE LTDA"
	invoice.Issuer.StateRegistration = "123456789"
	invoice.Recipient.Name = "CLIENTE TESTE"
	invoice.Recipient.CPF = "52998224725"

	item := nfe.NewItem()
	item.Code = "001"
	item.Description = "CAMISETA"
	item.NCM = "61091000"
	item.UnitPrice = decimal.NewFromFloat(100.00)
	item.CalculateTaxes()
	invoice.AddItem(item)
	invoice.CalculateTotals()

	return invoice
}

func TestBuild(t *testing.T) {
	out, key, err := Build(invoiceFixture())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(key) != 44 {
		t.Errorf("chave com %d dígitos, esperado 44", len(key))
	}
	if got := strings.Count(out, "<?xml"); got != 1 {
		t.Errorf("documento com %d declarações XML, esperado 1", got)
	}
	if !strings.Contains(out, `<NFe xmlns="http://www.portalfiscal.inf.br/nfe">`) {
		t.Error("elemento raiz NFe com namespace não encontrado")
	}
	if !strings.Contains(out, `Id="NFe`+key.String()+`"`) {
		t.Error("atributo Id da infNFe não corresponde à chave")
	}
	if !strings.Contains(out, `versao="4.00"`) {
		t.Error("atributo versao=4.00 não encontrado")
	}
	if strings.Contains(out, "<nfeProc") {
		t.Error("nfeProc presente sem protocolo de autorização")
	}
}

func TestBuildRoundTrip(t *testing.T) {
	out, _, err := Build(invoiceFixture())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	var parsed nfeElement
	if err := xml.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("XML gerado não é bem formado: %v", err)
	}
	if parsed.InfNFe.Emit.CNPJ != "12345678000195" {
		t.Errorf("CNPJ do emitente = %s", parsed.InfNFe.Emit.CNPJ)
	}
	if len(parsed.InfNFe.Det) != 1 {
		t.Fatalf("%d itens no XML, esperado 1", len(parsed.InfNFe.Det))
	}
	if parsed.InfNFe.Det[0].Prod.VProd != "100.00" {
		t.Errorf("vProd = %s, esperado 100.00", parsed.InfNFe.Det[0].Prod.VProd)
	}
}

func TestBuildNormalizesIdentifiers(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Issuer.CNPJ = "12.345.678/0001-95"
	invoice.Recipient.CPF = "529.982.247-25"
	invoice.Recipient.Address.ZipCode = "01310-100"
	invoice.Identification.RandomCode = "123"

	out, key, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// O CNPJ emitido deve coincidir com o trecho da chave de acesso
	if got := key.String()[6:20]; got != "12345678000195" {
		t.Fatalf("CNPJ na chave = %s, esperado 12345678000195", got)
	}
	if !strings.Contains(out, "<CNPJ>12345678000195</CNPJ>") {
		t.Error("CNPJ do emitente não foi emitido apenas com dígitos")
	}
	if !strings.Contains(out, "<CPF>52998224725</CPF>") {
		t.Error("CPF do destinatário não foi emitido apenas com dígitos")
	}
	if !strings.Contains(out, "<CEP>01310100</CEP>") {
		t.Error("CEP não foi emitido apenas com dígitos")
	}
	if !strings.Contains(out, "<cNF>00000123</cNF>") {
		t.Error("cNF não foi normalizado para 8 dígitos")
	}
	if key.String()[35:43] != "00000123" {
		t.Errorf("cNF na chave = %s, esperado 00000123", key.String()[35:43])
	}
}

func TestBuildElementOrder(t *testing.T) {
	out, _, err := Build(invoiceFixture())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	order := []string{"<ide>", "<emit>", "<dest>", "<det ", "<total>", "<transp>", "<pag>"}
	last := -1
	for _, tag := range order {
		pos := strings.Index(out, tag)
		if pos < 0 {
			t.Fatalf("elemento %s não encontrado", tag)
		}
		if pos < last {
			t.Errorf("elemento %s fora de ordem", tag)
		}
		last = pos
	}
}

func TestBuildSyntheticPayment(t *testing.T) {
	out, _, err := Build(invoiceFixture())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// Sem registros de pagamento, o bloco recebe a linha "sem pagamento"
	if !strings.Contains(out, "<tPag>90</tPag>") {
		t.Error("linha sintética de pagamento não encontrada")
	}
	if !strings.Contains(out, "<vPag>0.00</vPag>") {
		t.Error("valor zero da linha sintética não encontrado")
	}
}

func TestBuildWithPayments(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Payments = []nfe.Payment{
		{Method: nfe.PaymentCash, Value: decimal.NewFromFloat(60.00)},
		{Method: nfe.PaymentPix, Value: decimal.NewFromFloat(40.00)},
	}

	out, _, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if strings.Contains(out, "<tPag>90</tPag>") {
		t.Error("linha sintética emitida com pagamentos presentes")
	}
	if got := strings.Count(out, "<detPag>"); got != 2 {
		t.Errorf("%d linhas de pagamento, esperado 2", got)
	}
}

func TestBuildBillingConditional(t *testing.T) {
	invoice := invoiceFixture()

	out, _, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if strings.Contains(out, "<cobr>") {
		t.Error("cobr emitido sem número de fatura")
	}

	invoice.Billing = nfe.Billing{
		InvoiceNumber: "123",
		OriginalValue: decimal.NewFromFloat(100.00),
		NetValue:      decimal.NewFromFloat(100.00),
	}
	out, _, err = Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(out, "<nFat>123</nFat>") {
		t.Error("fatura não encontrada no bloco cobr")
	}
}

func TestBuildAdditionalInfoConditional(t *testing.T) {
	invoice := invoiceFixture()

	out, _, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if strings.Contains(out, "<infAdic>") {
		t.Error("infAdic emitido com os dois campos vazios")
	}

	invoice.AdditionalInfo.ComplementInfo = "NOTA EMITIDA EM HOMOLOGACAO"
	out, _, err = Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(out, "<infCpl>NOTA EMITIDA EM HOMOLOGACAO</infCpl>") {
		t.Error("infCpl não encontrado")
	}
}

func TestBuildWithProtocol(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Protocol.Include = true
	invoice.Protocol.ProtocolNumber = "135230000000001"
	invoice.Protocol.ReceivedAt = time.Date(2023, 12, 15, 10, 31, 0, 0, time.UTC)

	out, key, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !strings.Contains(out, `<nfeProc versao="4.00" xmlns="http://www.portalfiscal.inf.br/nfe">`) {
		t.Error("elemento raiz nfeProc não encontrado")
	}
	if !strings.Contains(out, "<chNFe>"+key.String()+"</chNFe>") {
		t.Error("chNFe do protocolo não corresponde à chave da nota")
	}
	if !strings.Contains(out, "<cStat>100</cStat>") {
		t.Error("status do protocolo não encontrado")
	}

	var parsed procNFe
	if err := xml.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("XML gerado não é bem formado: %v", err)
	}
}

func TestBuildRecipientDocuments(t *testing.T) {
	invoice := invoiceFixture()

	out, _, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(out, "<CPF>52998224725</CPF>") {
		t.Error("CPF do destinatário não encontrado")
	}

	invoice.Recipient.CPF = ""
	invoice.Recipient.CNPJ = "11222333000181"
	out, _, err = Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(out, "<dest>\n      <CNPJ>11222333000181</CNPJ>") &&
		!strings.Contains(out, "<CNPJ>11222333000181</CNPJ>") {
		t.Error("CNPJ do destinatário não encontrado")
	}
	if strings.Contains(out, "<CPF>") {
		t.Error("CPF emitido junto com CNPJ no destinatário")
	}
}

func TestBuildRecipientIE(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Recipient.StateRegistration = "987654321"

	// Não contribuinte: a IE não é emitida mesmo preenchida
	out, _, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if strings.Contains(out, "<IE>987654321</IE>") {
		t.Error("IE do destinatário emitida para não contribuinte")
	}

	invoice.Recipient.IEIndicator = nfe.IEContributor
	out, _, err = Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(out, "<IE>987654321</IE>") {
		t.Error("IE do destinatário não emitida para contribuinte")
	}
}

func TestBuildCarrierAndVolumes(t *testing.T) {
	invoice := invoiceFixture()

	out, _, err := Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if strings.Contains(out, "<transporta>") || strings.Contains(out, "<vol>") {
		t.Error("transportadora ou volumes emitidos sem dados")
	}

	invoice.Transport.CarrierCNPJ = "11222333000181"
	invoice.Transport.CarrierName = "TRANSPORTES TESTE"
	invoice.Transport.VolumeCount = 2
	invoice.Transport.GrossWeight = decimal.NewFromFloat(10.5)

	out, _, err = Build(invoice)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !strings.Contains(out, "<transporta>") {
		t.Error("transportadora não emitida")
	}
	if !strings.Contains(out, "<qVol>2</qVol>") {
		t.Error("volumes não emitidos")
	}
	if !strings.Contains(out, "<pesoB>10.500</pesoB>") {
		t.Error("peso bruto com 3 casas não encontrado")
	}
}

func TestBuildValidationFailure(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Items = nil

	out, key, err := Build(invoice)
	if !errors.Is(err, nfe.ErrNoItems) {
		t.Errorf("erro = %v, esperado ErrNoItems", err)
	}
	if out != "" || key != "" {
		t.Error("saída parcial retornada em caso de erro")
	}
}

func TestBuildDateTimeFormat(t *testing.T) {
	out, _, err := Build(invoiceFixture())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !strings.Contains(out, "<dhEmi>2023-12-15T10:30:00-03:00</dhEmi>") {
		t.Error("dhEmi com offset fixo -03:00 não encontrado")
	}
}
