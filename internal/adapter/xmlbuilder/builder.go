package xmlbuilder

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
	"github.com/hugohenrick/gerador-nfe/pkg/brdoc"
)

// Build valida o modelo, gera a chave de acesso e produz o documento XML
// completo da NF-e. A montagem é tudo-ou-nada: nenhum XML parcial é
// retornado em caso de erro.
func Build(invoice *nfe.NFe) (string, nfe.AccessKey, error) {
	if err := invoice.Validate(); err != nil {
		return "", "", err
	}

	key, err := nfe.GenerateAccessKey(invoice.Identification, invoice.Issuer.CNPJ)
	if err != nil {
		return "", "", err
	}

	inf := infNFeNode{
		Version: LayoutVersion,
		ID:      "NFe" + key.String(),
		Ide:     buildIde(invoice.Identification, key),
		Emit:    buildEmit(invoice.Issuer),
		Dest:    buildDest(invoice.Recipient),
		Det:     buildDet(invoice.Items),
		Total:   buildTotal(invoice.Totals),
		Transp:  buildTransp(invoice.Transport),
		Pag:     buildPag(invoice.Payments),
	}

	if invoice.Billing.InvoiceNumber != "" {
		inf.Cobr = buildCobr(invoice.Billing)
	}
	if invoice.AdditionalInfo.FiscalInfo != "" || invoice.AdditionalInfo.ComplementInfo != "" {
		inf.InfAdic = &infAdicNode{
			InfAdFisco: invoice.AdditionalInfo.FiscalInfo,
			InfCpl:     invoice.AdditionalInfo.ComplementInfo,
		}
	}

	nfeElem := nfeElement{Xmlns: Namespace, InfNFe: inf}

	var root interface{}
	if invoice.Protocol.Include {
		root = procNFe{
			Version: LayoutVersion,
			Xmlns:   Namespace,
			NFe:     nfeElem,
			Prot:    buildProt(invoice.Protocol, key),
		}
	} else {
		root = nfeElem
	}

	out, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("falha ao serializar NF-e: %w", err)
	}

	// xml.Header é a única declaração do documento; MarshalIndent nunca
	// emite uma própria
	return xml.Header + string(out), key, nil
}

func buildIde(ide nfe.Identification, key nfe.AccessKey) ideNode {
	return ideNode{
		CUF:      ide.StateCode,
		CNF:      zeroPad(brdoc.OnlyDigits(ide.RandomCode), 8),
		NatOp:    ide.OperationNature,
		Mod:      ide.Model,
		Serie:    strconv.Itoa(ide.Series),
		NNF:      strconv.Itoa(ide.Number),
		DhEmi:    formatDateTime(ide.IssuedAt),
		TpNF:     string(ide.Type),
		IDDest:   string(ide.Destination),
		CMunFG:   ide.MunicipalityCode,
		TpImp:    ide.PrintFormat,
		TpEmis:   ide.EmissionType,
		CDV:      key.CheckDigit(),
		TpAmb:    string(ide.Environment),
		FinNFe:   string(ide.Purpose),
		IndFinal: formatBool(ide.FinalConsumer),
		IndPres:  string(ide.BuyerPresence),
		ProcEmi:  ide.EmissionProcess,
		VerProc:  ide.ProcessVersion,
	}
}

func buildEnder(addr nfe.Address) enderNode {
	return enderNode{
		XLgr:    addr.Street,
		Nro:     addr.Number,
		XCpl:    addr.Complement,
		XBairro: addr.District,
		CMun:    addr.MunicipalityCode,
		XMun:    addr.MunicipalityName,
		UF:      addr.State,
		CEP:     brdoc.OnlyDigits(addr.ZipCode),
		CPais:   addr.CountryCode,
		XPais:   addr.CountryName,
		Fone:    addr.Phone,
	}
}

// Os identificadores numéricos (CNPJ, CPF, CEP, cNF) são emitidos apenas com
// os dígitos, como a chave de acesso os consome; um CNPJ formatado na entrada
// produziria um <emit> em desacordo com a própria chave.
func buildEmit(issuer nfe.Issuer) emitNode {
	return emitNode{
		CNPJ:      brdoc.OnlyDigits(issuer.CNPJ),
		XNome:     issuer.Name,
		XFant:     issuer.TradeName,
		EnderEmit: buildEnder(issuer.Address),
		IE:        issuer.StateRegistration,
		CRT:       string(issuer.TaxRegime),
	}
}

func buildDest(recipient nfe.Recipient) destNode {
	dest := destNode{
		XNome:     recipient.Name,
		EnderDest: buildEnder(recipient.Address),
		IndIEDest: string(recipient.IEIndicator),
	}

	// CNPJ e CPF são mutuamente exclusivos; Validate garante que apenas um
	// está preenchido
	if recipient.CNPJ != "" {
		dest.CNPJ = brdoc.OnlyDigits(recipient.CNPJ)
	} else {
		dest.CPF = brdoc.OnlyDigits(recipient.CPF)
	}

	// A IE só é emitida para destinatário contribuinte
	if recipient.StateRegistration != "" && recipient.IEIndicator == nfe.IEContributor {
		dest.IE = recipient.StateRegistration
	}

	return dest
}

func buildDet(items []nfe.Item) []detNode {
	det := make([]detNode, 0, len(items))
	for _, item := range items {
		det = append(det, detNode{
			NItem: strconv.Itoa(item.ItemNumber),
			Prod: prodNode{
				CProd:    item.Code,
				CEAN:     item.EAN,
				XProd:    item.Description,
				NCM:      item.NCM,
				CFOP:     item.CFOP,
				UCom:     item.Unit,
				QCom:     formatDecimal(item.Quantity, 4),
				VUnCom:   formatDecimal(item.UnitPrice, 4),
				VProd:    formatDecimal(item.Total, 2),
				CEANTrib: item.TaxableEAN,
				UTrib:    item.TaxableUnit,
				QTrib:    formatDecimal(item.TaxableQuantity, 4),
				VUnTrib:  formatDecimal(item.TaxableUnitPrice, 4),
				IndTot:   formatBool(item.IncludeInTotal),
			},
			Imposto: impostoNode{
				ICMS: icmsNode{ICMS00: icms00Node{
					Orig:  item.Taxes.Origin,
					CST:   item.Taxes.ICMSSituation,
					ModBC: item.Taxes.BasisModality,
					VBC:   formatDecimal(item.Taxes.ICMSBasis, 2),
					PICMS: formatDecimal(item.Taxes.ICMSRate, 2),
					VICMS: formatDecimal(item.Taxes.ICMSValue, 2),
				}},
				PIS: pisNode{PISAliq: pisAliqNode{
					CST:  item.Taxes.PISSituation,
					VBC:  formatDecimal(item.Taxes.PISBasis, 2),
					PPIS: formatDecimal(item.Taxes.PISRate, 2),
					VPIS: formatDecimal(item.Taxes.PISValue, 2),
				}},
				COFINS: cofinsNode{COFINSAliq: cofinsAliqNode{
					CST:     item.Taxes.COFINSSituation,
					VBC:     formatDecimal(item.Taxes.COFINSBasis, 2),
					PCOFINS: formatDecimal(item.Taxes.COFINSRate, 2),
					VCOFINS: formatDecimal(item.Taxes.COFINSValue, 2),
				}},
			},
		})
	}
	return det
}

func buildTotal(totals nfe.Totals) totalNode {
	return totalNode{ICMSTot: icmsTotNode{
		VBC:        formatDecimal(totals.ICMSBasis, 2),
		VICMS:      formatDecimal(totals.ICMSValue, 2),
		VICMSDeson: formatDecimal(totals.ICMSExempted, 2),
		VFCP:       formatDecimal(totals.FCPValue, 2),
		VBCST:      formatDecimal(totals.STBasis, 2),
		VST:        formatDecimal(totals.STValue, 2),
		VFCPST:     formatDecimal(totals.FCPSTValue, 2),
		VFCPSTRet:  formatDecimal(totals.FCPSTRetValue, 2),
		VProd:      formatDecimal(totals.ProductsValue, 2),
		VFrete:     formatDecimal(totals.FreightValue, 2),
		VSeg:       formatDecimal(totals.InsuranceValue, 2),
		VDesc:      formatDecimal(totals.DiscountValue, 2),
		VII:        formatDecimal(totals.IIValue, 2),
		VIPI:       formatDecimal(totals.IPIValue, 2),
		VIPIDevol:  formatDecimal(totals.IPIReturnedValue, 2),
		VPIS:       formatDecimal(totals.PISValue, 2),
		VCOFINS:    formatDecimal(totals.COFINSValue, 2),
		VOutro:     formatDecimal(totals.OtherValue, 2),
		VNF:        formatDecimal(totals.InvoiceValue, 2),
	}}
}

func buildTransp(transport nfe.Transport) transpNode {
	node := transpNode{ModFrete: string(transport.FreightMode)}

	if transport.CarrierCNPJ != "" {
		node.Transporta = &transportaNode{
			CNPJ:   brdoc.OnlyDigits(transport.CarrierCNPJ),
			XNome:  transport.CarrierName,
			IE:     transport.CarrierStateRegistration,
			XEnder: transport.CarrierAddress,
			XMun:   transport.CarrierMunicipality,
			UF:     transport.CarrierState,
		}
	}

	if transport.VolumeCount > 0 {
		node.Vol = &volNode{
			QVol:  strconv.Itoa(transport.VolumeCount),
			Esp:   transport.Species,
			Marca: transport.Brand,
			PesoL: formatDecimal(transport.NetWeight, 3),
			PesoB: formatDecimal(transport.GrossWeight, 3),
		}
	}

	return node
}

func buildCobr(billing nfe.Billing) *cobrNode {
	return &cobrNode{Fat: fatNode{
		NFat:  billing.InvoiceNumber,
		VOrig: formatDecimal(billing.OriginalValue, 2),
		VDesc: formatDecimal(billing.DiscountValue, 2),
		VLiq:  formatDecimal(billing.NetValue, 2),
	}}
}

func buildPag(payments []nfe.Payment) pagNode {
	// Sem registros de pagamento, o layout ainda exige o bloco: entra uma
	// linha sintética "sem pagamento" com valor zero
	if len(payments) == 0 {
		return pagNode{DetPag: []detPagNode{{
			TPag: string(nfe.PaymentNone),
			VPag: "0.00",
		}}}
	}

	det := make([]detPagNode, 0, len(payments))
	for _, payment := range payments {
		det = append(det, detPagNode{
			TPag: string(payment.Method),
			VPag: formatDecimal(payment.Value, 2),
		})
	}
	return pagNode{DetPag: det}
}

func buildProt(protocol nfe.AuthorizationProtocol, key nfe.AccessKey) protNFeNode {
	return protNFeNode{
		Version: LayoutVersion,
		InfProt: infProtNode{
			TpAmb:    string(protocol.Environment),
			VerAplic: protocol.AppVersion,
			ChNFe:    key.String(),
			DhRecbto: formatDateTime(protocol.ReceivedAt),
			NProt:    protocol.ProtocolNumber,
			DigVal:   protocol.DigestValue,
			CStat:    protocol.StatusCode,
			XMotivo:  protocol.StatusReason,
		},
	}
}
