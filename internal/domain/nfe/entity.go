package nfe

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Address representa um endereço genérico (emitente ou destinatário)
type Address struct {
	Street           string `json:"street"`            // Logradouro (xLgr)
	Number           string `json:"number"`            // Número (nro)
	Complement       string `json:"complement"`        // Complemento (xCpl)
	District         string `json:"district"`          // Bairro (xBairro)
	MunicipalityCode string `json:"municipality_code"` // Código IBGE do município (cMun)
	MunicipalityName string `json:"municipality_name"` // Nome do município (xMun)
	State            string `json:"state"`             // Sigla da UF
	ZipCode          string `json:"zip_code"`          // CEP, 8 dígitos
	CountryCode      string `json:"country_code"`      // Código do país (cPais)
	CountryName      string `json:"country_name"`      // Nome do país (xPais)
	Phone            string `json:"phone"`             // Telefone (fone)
}

// NewAddress cria um endereço com o país padrão (Brasil)
func NewAddress() Address {
	return Address{
		CountryCode: "1058",
		CountryName: "BRASIL",
	}
}

// Identification representa o bloco <ide> da NF-e
type Identification struct {
	StateCode        string               `json:"state_code"`        // Código IBGE da UF emissora (cUF)
	RandomCode       string               `json:"random_code"`       // Código numérico aleatório de 8 dígitos (cNF)
	OperationNature  string               `json:"operation_nature"`  // Natureza da operação (natOp)
	Model            string               `json:"model"`             // Modelo do documento, sempre "55" (mod)
	Series           int                  `json:"series"`            // Série (serie)
	Number           int                  `json:"number"`            // Número sequencial (nNF)
	IssuedAt         time.Time            `json:"issued_at"`         // Data e hora de emissão (dhEmi)
	Type             InvoiceType          `json:"type"`              // Entrada ou saída (tpNF)
	Destination      OperationDestination `json:"destination"`       // Destino da operação (idDest)
	MunicipalityCode string               `json:"municipality_code"` // Município do fato gerador (cMunFG)
	PrintFormat      string               `json:"print_format"`      // Formato do DANFE (tpImp)
	EmissionType     string               `json:"emission_type"`     // Tipo de emissão (tpEmis)
	Environment      Environment          `json:"environment"`       // Produção ou homologação (tpAmb)
	Purpose          Purpose              `json:"purpose"`           // Finalidade (finNFe)
	FinalConsumer    bool                 `json:"final_consumer"`    // Consumidor final (indFinal)
	BuyerPresence    BuyerPresence        `json:"buyer_presence"`    // Presença do comprador (indPres)
	EmissionProcess  string               `json:"emission_process"`  // Processo de emissão (procEmi)
	ProcessVersion   string               `json:"process_version"`   // Versão do aplicativo emissor (verProc)
}

// NewIdentification cria uma identificação com os valores padrão do layout
func NewIdentification() Identification {
	return Identification{
		StateCode:       "35",
		RandomCode:      "00000001",
		OperationNature: "VENDA DE MERCADORIA",
		Model:           "55",
		Series:          1,
		Number:          1,
		IssuedAt:        time.Now(),
		Type:            InvoiceOutbound,
		Destination:     DestinationInternal,
		PrintFormat:     "1",
		EmissionType:    "1",
		Environment:     EnvironmentHomologation,
		Purpose:         PurposeNormal,
		FinalConsumer:   true,
		BuyerPresence:   PresenceInPerson,
		EmissionProcess: "0",
		ProcessVersion:  "1.0",
	}
}

// Issuer representa o bloco <emit> da NF-e
type Issuer struct {
	CNPJ              string    `json:"cnpj"`               // CNPJ, 14 dígitos
	Name              string    `json:"name"`               // Razão social (xNome)
	TradeName         string    `json:"trade_name"`         // Nome fantasia (xFant)
	Address           Address   `json:"address"`            // Endereço (enderEmit)
	StateRegistration string    `json:"state_registration"` // Inscrição Estadual (IE)
	TaxRegime         TaxRegime `json:"tax_regime"`         // Regime tributário (CRT)
}

// Recipient representa o bloco <dest> da NF-e.
// CNPJ e CPF são mutuamente exclusivos: exatamente um deve estar preenchido.
type Recipient struct {
	CNPJ              string      `json:"cnpj"`               // CNPJ, 14 dígitos
	CPF               string      `json:"cpf"`                // CPF, 11 dígitos
	Name              string      `json:"name"`               // Razão social / nome (xNome)
	Address           Address     `json:"address"`            // Endereço (enderDest)
	IEIndicator       IEIndicator `json:"ie_indicator"`       // Indicador da IE (indIEDest)
	StateRegistration string      `json:"state_registration"` // Inscrição Estadual (IE)
}

// ItemTaxes representa os impostos calculados de um item (ICMS, PIS e COFINS)
type ItemTaxes struct {
	// ICMS
	Origin        string          `json:"origin"`          // Origem da mercadoria (orig)
	ICMSSituation string          `json:"icms_situation"`  // CST do ICMS
	BasisModality string          `json:"basis_modality"`  // Modalidade da base de cálculo (modBC)
	ICMSBasis     decimal.Decimal `json:"icms_basis"`      // Base de cálculo (vBC)
	ICMSRate      decimal.Decimal `json:"icms_rate"`       // Alíquota (pICMS)
	ICMSValue     decimal.Decimal `json:"icms_value"`      // Valor (vICMS)

	// PIS
	PISSituation string          `json:"pis_situation"` // CST do PIS
	PISBasis     decimal.Decimal `json:"pis_basis"`     // Base de cálculo (vBC)
	PISRate      decimal.Decimal `json:"pis_rate"`      // Alíquota (pPIS)
	PISValue     decimal.Decimal `json:"pis_value"`     // Valor (vPIS)

	// COFINS
	COFINSSituation string          `json:"cofins_situation"` // CST do COFINS
	COFINSBasis     decimal.Decimal `json:"cofins_basis"`     // Base de cálculo (vBC)
	COFINSRate      decimal.Decimal `json:"cofins_rate"`      // Alíquota (pCOFINS)
	COFINSValue     decimal.Decimal `json:"cofins_value"`     // Valor (vCOFINS)
}

// NewItemTaxes cria o bloco de impostos com os códigos e alíquotas padrão
func NewItemTaxes() ItemTaxes {
	return ItemTaxes{
		Origin:          "0",
		ICMSSituation:   "00",
		BasisModality:   "3",
		ICMSRate:        decimal.NewFromFloat(18.00),
		PISSituation:    "01",
		PISRate:         decimal.NewFromFloat(1.65),
		COFINSSituation: "01",
		COFINSRate:      decimal.NewFromFloat(7.60),
	}
}

// Item representa o bloco <det>/<prod> da NF-e
type Item struct {
	ItemNumber      int             `json:"item_number"`      // Número sequencial do item (nItem)
	Code            string          `json:"code"`             // Código interno (cProd)
	EAN             string          `json:"ean"`              // Código de barras ou "SEM GTIN" (cEAN)
	Description     string          `json:"description"`      // Descrição (xProd)
	NCM             string          `json:"ncm"`              // Classificação NCM, 8 dígitos
	CFOP            string          `json:"cfop"`             // Código da operação, 4 dígitos
	Unit            string          `json:"unit"`             // Unidade comercial (uCom)
	Quantity        decimal.Decimal `json:"quantity"`         // Quantidade comercial, 4 casas (qCom)
	UnitPrice       decimal.Decimal `json:"unit_price"`       // Valor unitário, 4 casas (vUnCom)
	Total           decimal.Decimal `json:"total"`            // Valor total do item, 2 casas (vProd)
	TaxableEAN      string          `json:"taxable_ean"`      // Código de barras tributável (cEANTrib)
	TaxableUnit     string          `json:"taxable_unit"`     // Unidade tributável (uTrib)
	TaxableQuantity decimal.Decimal `json:"taxable_quantity"` // Quantidade tributável, 4 casas (qTrib)
	TaxableUnitPrice decimal.Decimal `json:"taxable_unit_price"` // Valor unitário tributável (vUnTrib)
	IncludeInTotal  bool            `json:"include_in_total"` // Compõe o total da nota (indTot)
	Taxes           ItemTaxes       `json:"taxes"`            // Impostos do item
}

// NewItem cria um item com os valores padrão do formulário de emissão
func NewItem() Item {
	return Item{
		EAN:             "SEM GTIN",
		CFOP:            "5102",
		Unit:            "UN",
		Quantity:        decimal.NewFromInt(1),
		TaxableEAN:      "SEM GTIN",
		TaxableUnit:     "UN",
		TaxableQuantity: decimal.NewFromInt(1),
		IncludeInTotal:  true,
		Taxes:           NewItemTaxes(),
	}
}

// CalculateTaxes recalcula o valor total do item e as três linhas de imposto.
// Cada imposto segue a fórmula valor = base * alíquota / 100, com a base
// igual ao valor total do item e arredondamento em 2 casas.
func (i *Item) CalculateTaxes() {
	i.Total = i.Quantity.Mul(i.UnitPrice).Round(2)

	i.Taxes.ICMSBasis = i.Total
	i.Taxes.ICMSValue = i.Total.Mul(i.Taxes.ICMSRate).Div(decimal.NewFromInt(100)).Round(2)
	i.Taxes.PISBasis = i.Total
	i.Taxes.PISValue = i.Total.Mul(i.Taxes.PISRate).Div(decimal.NewFromInt(100)).Round(2)
	i.Taxes.COFINSBasis = i.Total
	i.Taxes.COFINSValue = i.Total.Mul(i.Taxes.COFINSRate).Div(decimal.NewFromInt(100)).Round(2)
}

// Totals representa o bloco <total>/<ICMSTot> da NF-e
type Totals struct {
	ICMSBasis        decimal.Decimal `json:"icms_basis"`         // vBC
	ICMSValue        decimal.Decimal `json:"icms_value"`         // vICMS
	ICMSExempted     decimal.Decimal `json:"icms_exempted"`      // vICMSDeson
	FCPValue         decimal.Decimal `json:"fcp_value"`          // vFCP
	STBasis          decimal.Decimal `json:"st_basis"`           // vBCST
	STValue          decimal.Decimal `json:"st_value"`           // vST
	FCPSTValue       decimal.Decimal `json:"fcp_st_value"`       // vFCPST
	FCPSTRetValue    decimal.Decimal `json:"fcp_st_ret_value"`   // vFCPSTRet
	ProductsValue    decimal.Decimal `json:"products_value"`     // vProd
	FreightValue     decimal.Decimal `json:"freight_value"`      // vFrete
	InsuranceValue   decimal.Decimal `json:"insurance_value"`    // vSeg
	DiscountValue    decimal.Decimal `json:"discount_value"`     // vDesc
	IIValue          decimal.Decimal `json:"ii_value"`           // vII
	IPIValue         decimal.Decimal `json:"ipi_value"`          // vIPI
	IPIReturnedValue decimal.Decimal `json:"ipi_returned_value"` // vIPIDevol
	PISValue         decimal.Decimal `json:"pis_value"`          // vPIS
	COFINSValue      decimal.Decimal `json:"cofins_value"`       // vCOFINS
	OtherValue       decimal.Decimal `json:"other_value"`        // vOutro
	InvoiceValue     decimal.Decimal `json:"invoice_value"`      // vNF
}

// Transport representa o bloco <transp> da NF-e
type Transport struct {
	FreightMode FreightMode `json:"freight_mode"` // Modalidade do frete (modFrete)

	// Transportadora (opcional, emitida apenas quando o CNPJ está presente)
	CarrierCNPJ              string `json:"carrier_cnpj"`
	CarrierName              string `json:"carrier_name"`
	CarrierStateRegistration string `json:"carrier_state_registration"`
	CarrierAddress           string `json:"carrier_address"`
	CarrierMunicipality      string `json:"carrier_municipality"`
	CarrierState             string `json:"carrier_state"`

	// Volumes (opcional, emitido apenas quando a quantidade é maior que zero)
	VolumeCount int             `json:"volume_count"`
	Species     string          `json:"species"`
	Brand       string          `json:"brand"`
	NetWeight   decimal.Decimal `json:"net_weight"`   // pesoL, 3 casas
	GrossWeight decimal.Decimal `json:"gross_weight"` // pesoB, 3 casas
}

// Billing representa o bloco <cobr> da NF-e, emitido apenas quando o
// número da fatura está preenchido
type Billing struct {
	InvoiceNumber string          `json:"invoice_number"` // nFat
	OriginalValue decimal.Decimal `json:"original_value"` // vOrig
	DiscountValue decimal.Decimal `json:"discount_value"` // vDesc
	NetValue      decimal.Decimal `json:"net_value"`      // vLiq
}

// Payment representa uma linha do bloco <pag>/<detPag>
type Payment struct {
	Method PaymentMethod   `json:"method"` // tPag
	Value  decimal.Decimal `json:"value"`  // vPag
	Change decimal.Decimal `json:"change"` // Troco, não serializado no layout simplificado
}

// AdditionalInfo representa o bloco <infAdic>, emitido apenas quando algum
// dos dois campos está preenchido
type AdditionalInfo struct {
	FiscalInfo     string `json:"fiscal_info"`     // infAdFisco
	ComplementInfo string `json:"complement_info"` // infCpl
}

// AuthorizationProtocol representa o bloco <protNFe>, emitido apenas quando
// Include é verdadeiro
type AuthorizationProtocol struct {
	Include        bool        `json:"include"`
	Environment    Environment `json:"environment"`     // tpAmb
	AppVersion     string      `json:"app_version"`     // verAplic
	ReceivedAt     time.Time   `json:"received_at"`     // dhRecbto
	ProtocolNumber string      `json:"protocol_number"` // nProt
	DigestValue    string      `json:"digest_value"`    // digVal
	StatusCode     string      `json:"status_code"`     // cStat
	StatusReason   string      `json:"status_reason"`   // xMotivo
}

// NewAuthorizationProtocol cria um protocolo com o status padrão de autorização
func NewAuthorizationProtocol() AuthorizationProtocol {
	return AuthorizationProtocol{
		Environment:  EnvironmentHomologation,
		ReceivedAt:   time.Now(),
		StatusCode:   "100",
		StatusReason: "Autorizado o uso da NF-e",
	}
}

// NFe é o modelo completo de uma nota fiscal eletrônica. Uma instância é
// montada por requisição de geração, passa uma única vez pelo construtor de
// XML e é descartada; o modelo não guarda estado entre gerações.
type NFe struct {
	Identification Identification        `json:"identification"`
	Issuer         Issuer                `json:"issuer"`
	Recipient      Recipient             `json:"recipient"`
	Items          []Item                `json:"items"`
	Totals         Totals                `json:"totals"`
	Transport      Transport             `json:"transport"`
	Billing        Billing               `json:"billing"`
	Payments       []Payment             `json:"payments"`
	AdditionalInfo AdditionalInfo        `json:"additional_info"`
	Protocol       AuthorizationProtocol `json:"protocol"`
}

// NewNFe cria uma NF-e com os blocos de identificação e protocolo padrão
func NewNFe() *NFe {
	return &NFe{
		Identification: NewIdentification(),
		Issuer:         Issuer{Address: NewAddress(), TaxRegime: RegimeNormal},
		Recipient:      Recipient{Address: NewAddress(), IEIndicator: IENonContributor},
		Transport:      Transport{FreightMode: FreightNone},
		Protocol:       NewAuthorizationProtocol(),
	}
}

// AddItem adiciona um item atribuindo o próximo número sequencial
func (n *NFe) AddItem(item Item) {
	item.ItemNumber = len(n.Items) + 1
	n.Items = append(n.Items, item)
}

// RemoveItem remove o item na posição informada (base zero) e renumera os
// itens restantes para manter a sequência contígua começando em 1
func (n *NFe) RemoveItem(index int) {
	if index < 0 || index >= len(n.Items) {
		return
	}
	n.Items = append(n.Items[:index], n.Items[index+1:]...)
	for i := range n.Items {
		n.Items[i].ItemNumber = i + 1
	}
}

// CalculateTotals recalcula os totais da nota a partir dos itens. Deve ser
// chamado sempre que os itens forem alterados, antes da serialização; o
// construtor de XML confia nos totais como estão.
func (n *NFe) CalculateTotals() {
	if len(n.Items) == 0 {
		return
	}

	icmsBasis := decimal.Zero
	icmsValue := decimal.Zero
	pisValue := decimal.Zero
	cofinsValue := decimal.Zero
	productsValue := decimal.Zero

	for _, item := range n.Items {
		icmsBasis = icmsBasis.Add(item.Taxes.ICMSBasis)
		icmsValue = icmsValue.Add(item.Taxes.ICMSValue)
		pisValue = pisValue.Add(item.Taxes.PISValue)
		cofinsValue = cofinsValue.Add(item.Taxes.COFINSValue)
		if item.IncludeInTotal {
			productsValue = productsValue.Add(item.Total)
		}
	}

	n.Totals.ICMSBasis = icmsBasis
	n.Totals.ICMSValue = icmsValue
	n.Totals.PISValue = pisValue
	n.Totals.COFINSValue = cofinsValue
	n.Totals.ProductsValue = productsValue
	n.Totals.InvoiceValue = productsValue.
		Add(n.Totals.FreightValue).
		Add(n.Totals.InsuranceValue).
		Add(n.Totals.OtherValue).
		Sub(n.Totals.DiscountValue)
}

// FillDefaults preenche os campos de código que chegarem vazios com os
// valores padrão dos construtores. O construtor de XML não aceita código de
// enumeração vazio, então todo modelo montado fora dos construtores deve
// passar por aqui antes da serialização.
func (n *NFe) FillDefaults() {
	n.fillIdentificationDefaults()

	if n.Issuer.TaxRegime == "" {
		n.Issuer.TaxRegime = RegimeNormal
	}
	if n.Recipient.IEIndicator == "" {
		n.Recipient.IEIndicator = IENonContributor
	}
	if n.Transport.FreightMode == "" {
		n.Transport.FreightMode = FreightNone
	}
	fillAddressDefaults(&n.Issuer.Address)
	fillAddressDefaults(&n.Recipient.Address)

	for i := range n.Items {
		fillItemDefaults(&n.Items[i])
	}
	for i := range n.Payments {
		if n.Payments[i].Method == "" {
			n.Payments[i].Method = PaymentOther
		}
	}

	if n.Protocol.Include {
		if n.Protocol.Environment == "" {
			n.Protocol.Environment = n.Identification.Environment
		}
		if n.Protocol.StatusCode == "" {
			n.Protocol.StatusCode = "100"
			n.Protocol.StatusReason = "Autorizado o uso da NF-e"
		}
		if n.Protocol.ReceivedAt.IsZero() {
			n.Protocol.ReceivedAt = time.Now()
		}
	}
}

// fillIdentificationDefaults completa o bloco <ide> com os padrões de
// NewIdentification. O cUF vazio é derivado da UF do endereço do emitente
// quando a sigla é conhecida.
func (n *NFe) fillIdentificationDefaults() {
	ide := &n.Identification
	def := NewIdentification()

	if ide.StateCode == "" {
		if code, ok := StateCodes[strings.ToUpper(n.Issuer.Address.State)]; ok {
			ide.StateCode = code
		} else {
			ide.StateCode = def.StateCode
		}
	}
	if ide.RandomCode == "" {
		ide.RandomCode = def.RandomCode
	}
	if ide.OperationNature == "" {
		ide.OperationNature = def.OperationNature
	}
	if ide.Model == "" {
		ide.Model = def.Model
	}
	if ide.Series == 0 {
		ide.Series = def.Series
	}
	if ide.Number == 0 {
		ide.Number = def.Number
	}
	if ide.IssuedAt.IsZero() {
		ide.IssuedAt = time.Now()
	}
	if ide.Type == "" {
		ide.Type = def.Type
	}
	if ide.Destination == "" {
		ide.Destination = def.Destination
	}
	if ide.PrintFormat == "" {
		ide.PrintFormat = def.PrintFormat
	}
	if ide.EmissionType == "" {
		ide.EmissionType = def.EmissionType
	}
	if ide.Environment == "" {
		ide.Environment = def.Environment
	}
	if ide.Purpose == "" {
		ide.Purpose = def.Purpose
	}
	if ide.BuyerPresence == "" {
		ide.BuyerPresence = def.BuyerPresence
	}
	if ide.EmissionProcess == "" {
		ide.EmissionProcess = def.EmissionProcess
	}
	if ide.ProcessVersion == "" {
		ide.ProcessVersion = def.ProcessVersion
	}
}

func fillAddressDefaults(addr *Address) {
	if addr.CountryCode == "" {
		addr.CountryCode = "1058"
	}
	if addr.CountryName == "" {
		addr.CountryName = "BRASIL"
	}
}

// fillItemDefaults espelha os padrões de NewItem; os campos tributáveis
// vazios copiam os campos comerciais correspondentes
func fillItemDefaults(item *Item) {
	if item.EAN == "" {
		item.EAN = "SEM GTIN"
	}
	if item.TaxableEAN == "" {
		item.TaxableEAN = item.EAN
	}
	if item.CFOP == "" {
		item.CFOP = "5102"
	}
	if item.Unit == "" {
		item.Unit = "UN"
	}
	if item.TaxableUnit == "" {
		item.TaxableUnit = item.Unit
	}
	if item.TaxableQuantity.IsZero() {
		item.TaxableQuantity = item.Quantity
	}
	if item.TaxableUnitPrice.IsZero() {
		item.TaxableUnitPrice = item.UnitPrice
	}

	taxes := &item.Taxes
	if taxes.Origin == "" {
		taxes.Origin = "0"
	}
	if taxes.ICMSSituation == "" {
		taxes.ICMSSituation = "00"
	}
	if taxes.BasisModality == "" {
		taxes.BasisModality = "3"
	}
	if taxes.PISSituation == "" {
		taxes.PISSituation = "01"
	}
	if taxes.COFINSSituation == "" {
		taxes.COFINSSituation = "01"
	}
}

// Validate verifica as invariantes obrigatórias antes da serialização
func (n *NFe) Validate() error {
	if len(n.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range n.Items {
		if item.Code == "" {
			return fmt.Errorf("%w (item %d)", ErrMissingItemCode, item.ItemNumber)
		}
		if item.Description == "" {
			return fmt.Errorf("%w (item %d)", ErrMissingItemDescription, item.ItemNumber)
		}
	}
	if n.Issuer.CNPJ == "" {
		return ErrMissingIssuerCNPJ
	}
	if n.Recipient.Name == "" {
		return ErrMissingRecipientName
	}
	if n.Recipient.CNPJ != "" && n.Recipient.CPF != "" {
		return ErrRecipientDocumentBoth
	}
	if n.Recipient.CNPJ == "" && n.Recipient.CPF == "" {
		return ErrRecipientDocumentMissing
	}
	return nil
}
