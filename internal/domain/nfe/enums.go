package nfe

// Os tipos abaixo são fechados: o valor de cada constante é exatamente o
// código que o layout 4.00 da NF-e espera no XML. Nenhum outro valor deve
// chegar ao construtor de XML.

// InvoiceType define o tipo da operação (tpNF)
type InvoiceType string

const (
	InvoiceInbound  InvoiceType = "0" // Entrada
	InvoiceOutbound InvoiceType = "1" // Saída
)

// OperationDestination define o destino da operação (idDest)
type OperationDestination string

const (
	DestinationInternal   OperationDestination = "1" // Operação interna
	DestinationInterstate OperationDestination = "2" // Operação interestadual
	DestinationAbroad     OperationDestination = "3" // Operação com exterior
)

// Environment define o ambiente de emissão (tpAmb)
type Environment string

const (
	EnvironmentProduction   Environment = "1" // Produção
	EnvironmentHomologation Environment = "2" // Homologação
)

// Purpose define a finalidade de emissão (finNFe)
type Purpose string

const (
	PurposeNormal        Purpose = "1" // NF-e normal
	PurposeComplementary Purpose = "2" // NF-e complementar
	PurposeAdjustment    Purpose = "3" // NF-e de ajuste
	PurposeReturn        Purpose = "4" // Devolução de mercadoria
)

// BuyerPresence define o indicador de presença do comprador (indPres)
type BuyerPresence string

const (
	PresenceNotApplicable    BuyerPresence = "0"
	PresenceInPerson         BuyerPresence = "1"
	PresenceInternet         BuyerPresence = "2"
	PresenceTelemarketing    BuyerPresence = "3"
	PresenceHomeDelivery     BuyerPresence = "4"
	PresenceInPersonExternal BuyerPresence = "5"
	PresenceOther            BuyerPresence = "9"
)

// TaxRegime define o Código de Regime Tributário do emitente (CRT)
type TaxRegime string

const (
	RegimeSimples       TaxRegime = "1" // Simples Nacional
	RegimeSimplesExcess TaxRegime = "2" // Simples Nacional - excesso de sublimite
	RegimeNormal        TaxRegime = "3" // Regime Normal
)

// IEIndicator define o indicador da IE do destinatário (indIEDest)
type IEIndicator string

const (
	IEContributor    IEIndicator = "1" // Contribuinte ICMS
	IEExempt         IEIndicator = "2" // Contribuinte isento
	IENonContributor IEIndicator = "9" // Não contribuinte
)

// FreightMode define a modalidade do frete (modFrete)
type FreightMode string

const (
	FreightByIssuer             FreightMode = "0"
	FreightByRecipient          FreightMode = "1"
	FreightByThirdParty         FreightMode = "2"
	FreightOwnByIssuer          FreightMode = "3"
	FreightOwnByRecipient       FreightMode = "4"
	FreightNone                 FreightMode = "9"
)

// PaymentMethod define a forma de pagamento (tPag)
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "01" // Dinheiro
	PaymentCheck         PaymentMethod = "02" // Cheque
	PaymentCreditCard    PaymentMethod = "03" // Cartão de crédito
	PaymentDebitCard     PaymentMethod = "04" // Cartão de débito
	PaymentStoreCredit   PaymentMethod = "05" // Crédito de loja
	PaymentFoodVoucher   PaymentMethod = "10" // Vale alimentação
	PaymentMealVoucher   PaymentMethod = "11" // Vale refeição
	PaymentGiftVoucher   PaymentMethod = "12" // Vale presente
	PaymentFuelVoucher   PaymentMethod = "13" // Vale combustível
	PaymentTradeNote     PaymentMethod = "14" // Duplicata mercantil
	PaymentBankSlip      PaymentMethod = "15" // Boleto bancário
	PaymentDeposit       PaymentMethod = "16" // Depósito bancário
	PaymentPix           PaymentMethod = "17" // PIX
	PaymentBankTransfer  PaymentMethod = "18" // Transferência bancária
	PaymentCashback      PaymentMethod = "19" // Cashback
	PaymentNone          PaymentMethod = "90" // Sem pagamento
	PaymentOther         PaymentMethod = "99" // Outros
)

// StateCodes mapeia a sigla da UF para o código IBGE usado em cUF
var StateCodes = map[string]string{
	"AC": "12", "AL": "27", "AP": "16", "AM": "13", "BA": "29",
	"CE": "23", "DF": "53", "ES": "32", "GO": "52", "MA": "21",
	"MT": "51", "MS": "50", "MG": "31", "PA": "15", "PB": "25",
	"PR": "41", "PE": "26", "PI": "22", "RJ": "33", "RN": "24",
	"RS": "43", "RO": "11", "RR": "14", "SC": "42", "SP": "35",
	"SE": "28", "TO": "17",
}
