package nfe

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func itemFixture(code string, price float64) Item {
	item := NewItem()
	item.Code = code
	item.Description = "PRODUTO " + code
	item.NCM = "61091000"
	item.UnitPrice = decimal.NewFromFloat(price)
	item.CalculateTaxes()
	return item
}

func invoiceFixture() *NFe {
	invoice := NewNFe()
	invoice.Issuer.CNPJ = "12345678000195"
	invoice.Issuer.Name = "EMPRESA TESTE LTDA"
	invoice.Recipient.Name = "CLIENTE TESTE"
	invoice.Recipient.CPF = "52998224725"
	return invoice
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if got.StringFixed(2) != want {
		t.Errorf("%s = %s, esperado %s", name, got.StringFixed(2), want)
	}
}

func TestItemCalculateTaxes(t *testing.T) {
	item := NewItem()
	item.Quantity = decimal.NewFromInt(3)
	item.UnitPrice = decimal.NewFromFloat(10.50)
	item.CalculateTaxes()

	assertDecimal(t, "total", item.Total, "31.50")
	assertDecimal(t, "base ICMS", item.Taxes.ICMSBasis, "31.50")
	assertDecimal(t, "ICMS", item.Taxes.ICMSValue, "5.67")
	assertDecimal(t, "PIS", item.Taxes.PISValue, "0.52")
	assertDecimal(t, "COFINS", item.Taxes.COFINSValue, "2.39")
}

func TestCalculateTotals(t *testing.T) {
	invoice := invoiceFixture()
	invoice.AddItem(itemFixture("001", 1000.00))
	invoice.AddItem(itemFixture("002", 500.00))
	invoice.CalculateTotals()

	assertDecimal(t, "base ICMS", invoice.Totals.ICMSBasis, "1500.00")
	assertDecimal(t, "ICMS", invoice.Totals.ICMSValue, "270.00")
	assertDecimal(t, "PIS", invoice.Totals.PISValue, "24.75")
	assertDecimal(t, "COFINS", invoice.Totals.COFINSValue, "114.00")
	assertDecimal(t, "produtos", invoice.Totals.ProductsValue, "1500.00")
	assertDecimal(t, "nota", invoice.Totals.InvoiceValue, "1500.00")
}

func TestCalculateTotalsWithFreightAndDiscount(t *testing.T) {
	invoice := invoiceFixture()
	invoice.AddItem(itemFixture("001", 1000.00))
	invoice.Totals.FreightValue = decimal.NewFromFloat(50.00)
	invoice.Totals.DiscountValue = decimal.NewFromFloat(30.00)
	invoice.CalculateTotals()

	assertDecimal(t, "produtos", invoice.Totals.ProductsValue, "1000.00")
	assertDecimal(t, "nota", invoice.Totals.InvoiceValue, "1020.00")
}

func TestCalculateTotalsExcludesItemsOutsideTotal(t *testing.T) {
	invoice := invoiceFixture()
	invoice.AddItem(itemFixture("001", 1000.00))

	bonus := itemFixture("002", 200.00)
	bonus.IncludeInTotal = false
	invoice.AddItem(bonus)

	invoice.CalculateTotals()

	// O imposto do item bonificado ainda soma, mas o produto não
	assertDecimal(t, "produtos", invoice.Totals.ProductsValue, "1000.00")
	assertDecimal(t, "ICMS", invoice.Totals.ICMSValue, "216.00")
}

func TestCalculateTotalsWithoutItems(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Totals.InvoiceValue = decimal.NewFromFloat(99.00)
	invoice.CalculateTotals()

	// Sem itens os totais não são alterados
	assertDecimal(t, "nota", invoice.Totals.InvoiceValue, "99.00")
}

func TestAddItemNumbering(t *testing.T) {
	invoice := invoiceFixture()
	invoice.AddItem(itemFixture("001", 10))
	invoice.AddItem(itemFixture("002", 20))
	invoice.AddItem(itemFixture("003", 30))

	for i, item := range invoice.Items {
		if item.ItemNumber != i+1 {
			t.Errorf("item %d com nItem %d", i, item.ItemNumber)
		}
	}
}

func TestRemoveItemRenumbers(t *testing.T) {
	invoice := invoiceFixture()
	invoice.AddItem(itemFixture("001", 10))
	invoice.AddItem(itemFixture("002", 20))
	invoice.AddItem(itemFixture("003", 30))

	invoice.RemoveItem(1)

	if len(invoice.Items) != 2 {
		t.Fatalf("restaram %d itens, esperado 2", len(invoice.Items))
	}
	if invoice.Items[0].Code != "001" || invoice.Items[1].Code != "003" {
		t.Errorf("itens restantes: %s e %s", invoice.Items[0].Code, invoice.Items[1].Code)
	}
	if invoice.Items[0].ItemNumber != 1 || invoice.Items[1].ItemNumber != 2 {
		t.Errorf("renumeração incorreta: %d e %d", invoice.Items[0].ItemNumber, invoice.Items[1].ItemNumber)
	}

	// Índice fora do intervalo é ignorado
	invoice.RemoveItem(5)
	invoice.RemoveItem(-1)
	if len(invoice.Items) != 2 {
		t.Errorf("restaram %d itens, esperado 2", len(invoice.Items))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NFe)
		want   error
	}{
		{"sem itens", func(n *NFe) { n.Items = nil }, ErrNoItems},
		{"item sem código", func(n *NFe) { n.Items[0].Code = "" }, ErrMissingItemCode},
		{"item sem descrição", func(n *NFe) { n.Items[0].Description = "" }, ErrMissingItemDescription},
		{"emitente sem CNPJ", func(n *NFe) { n.Issuer.CNPJ = "" }, ErrMissingIssuerCNPJ},
		{"destinatário sem nome", func(n *NFe) { n.Recipient.Name = "" }, ErrMissingRecipientName},
		{"destinatário com CNPJ e CPF", func(n *NFe) { n.Recipient.CNPJ = "11222333000181" }, ErrRecipientDocumentBoth},
		{"destinatário sem documento", func(n *NFe) { n.Recipient.CPF = "" }, ErrRecipientDocumentMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := invoiceFixture()
			invoice.AddItem(itemFixture("001", 100))
			tt.mutate(invoice)

			if err := invoice.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("erro = %v, esperado %v", err, tt.want)
			}
		})
	}
}

func TestValidateOK(t *testing.T) {
	invoice := invoiceFixture()
	invoice.AddItem(itemFixture("001", 100))

	if err := invoice.Validate(); err != nil {
		t.Errorf("erro inesperado: %v", err)
	}
}

func TestFillDefaults(t *testing.T) {
	invoice := &NFe{}
	invoice.Issuer.Address.State = "mg"
	invoice.FillDefaults()

	if invoice.Identification.StateCode != "31" {
		t.Errorf("cUF = %s, esperado 31 (derivado da UF do emitente)", invoice.Identification.StateCode)
	}
	if invoice.Identification.Model != "55" {
		t.Errorf("mod = %s, esperado 55", invoice.Identification.Model)
	}
	if invoice.Identification.RandomCode != "00000001" {
		t.Errorf("cNF = %s, esperado 00000001", invoice.Identification.RandomCode)
	}
	if invoice.Identification.IssuedAt.IsZero() {
		t.Error("dhEmi não preenchido")
	}
	if invoice.Issuer.TaxRegime != RegimeNormal {
		t.Errorf("CRT = %q, esperado %q", invoice.Issuer.TaxRegime, RegimeNormal)
	}
	if invoice.Recipient.IEIndicator != IENonContributor {
		t.Errorf("indIEDest = %q, esperado %q", invoice.Recipient.IEIndicator, IENonContributor)
	}
	if invoice.Transport.FreightMode != FreightNone {
		t.Errorf("modFrete = %q, esperado %q", invoice.Transport.FreightMode, FreightNone)
	}
	if invoice.Issuer.Address.CountryCode != "1058" || invoice.Recipient.Address.CountryName != "BRASIL" {
		t.Error("país padrão não preenchido nos endereços")
	}
}

func TestFillDefaultsStateCodeFallback(t *testing.T) {
	invoice := &NFe{}
	invoice.Issuer.Address.State = "XX"
	invoice.FillDefaults()

	if invoice.Identification.StateCode != "35" {
		t.Errorf("cUF = %s, esperado 35 para UF desconhecida", invoice.Identification.StateCode)
	}
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	invoice := invoiceFixture()
	invoice.Identification.StateCode = "33"
	invoice.Issuer.Address.State = "SP"
	invoice.Issuer.TaxRegime = RegimeSimples
	invoice.Recipient.IEIndicator = IEExempt
	invoice.Transport.FreightMode = FreightByIssuer
	invoice.FillDefaults()

	if invoice.Identification.StateCode != "33" {
		t.Errorf("cUF = %s, valor explícito não preservado", invoice.Identification.StateCode)
	}
	if invoice.Issuer.TaxRegime != RegimeSimples {
		t.Errorf("CRT = %q, valor explícito não preservado", invoice.Issuer.TaxRegime)
	}
	if invoice.Recipient.IEIndicator != IEExempt {
		t.Errorf("indIEDest = %q, valor explícito não preservado", invoice.Recipient.IEIndicator)
	}
	if invoice.Transport.FreightMode != FreightByIssuer {
		t.Errorf("modFrete = %q, valor explícito não preservado", invoice.Transport.FreightMode)
	}
}

func TestFillDefaultsItemsAndPayments(t *testing.T) {
	invoice := &NFe{}
	invoice.AddItem(Item{
		Code:        "001",
		Description: "CAMISETA",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromFloat(50.00),
	})
	invoice.Payments = []Payment{{Value: decimal.NewFromFloat(100.00)}}
	invoice.FillDefaults()

	item := invoice.Items[0]
	if item.EAN != "SEM GTIN" || item.TaxableEAN != "SEM GTIN" {
		t.Errorf("cEAN = %q / cEANTrib = %q, esperado SEM GTIN", item.EAN, item.TaxableEAN)
	}
	if item.Unit != "UN" || item.TaxableUnit != "UN" {
		t.Errorf("uCom = %q / uTrib = %q, esperado UN", item.Unit, item.TaxableUnit)
	}
	if item.CFOP != "5102" {
		t.Errorf("CFOP = %s, esperado 5102", item.CFOP)
	}
	if !item.TaxableQuantity.Equal(item.Quantity) {
		t.Errorf("qTrib = %s, esperado %s", item.TaxableQuantity, item.Quantity)
	}
	if !item.TaxableUnitPrice.Equal(item.UnitPrice) {
		t.Errorf("vUnTrib = %s, esperado %s", item.TaxableUnitPrice, item.UnitPrice)
	}
	if item.Taxes.ICMSSituation != "00" || item.Taxes.PISSituation != "01" || item.Taxes.COFINSSituation != "01" {
		t.Errorf("CSTs = %s/%s/%s", item.Taxes.ICMSSituation, item.Taxes.PISSituation, item.Taxes.COFINSSituation)
	}
	if invoice.Payments[0].Method != PaymentOther {
		t.Errorf("tPag = %q, esperado %q", invoice.Payments[0].Method, PaymentOther)
	}
}
