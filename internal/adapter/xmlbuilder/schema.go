// Package xmlbuilder constrói o documento XML de uma NF-e no layout 4.00 a
// partir do modelo de domínio. A ordem dos campos das structs abaixo segue
// exatamente a ordem de elementos exigida pelo schema da SEFAZ; alterá-la
// quebra a validação do documento gerado.
package xmlbuilder

import "encoding/xml"

const (
	// Namespace do portal fiscal, declarado no elemento raiz
	Namespace = "http://www.portalfiscal.inf.br/nfe"
	// LayoutVersion é a única versão de layout suportada
	LayoutVersion = "4.00"
)

// procNFe é o elemento raiz quando a nota carrega o protocolo de autorização
type procNFe struct {
	XMLName xml.Name    `xml:"nfeProc"`
	Version string      `xml:"versao,attr"`
	Xmlns   string      `xml:"xmlns,attr"`
	NFe     nfeElement  `xml:"NFe"`
	Prot    protNFeNode `xml:"protNFe"`
}

// nfeElement é o elemento <NFe>; vira o raiz quando não há protocolo
type nfeElement struct {
	XMLName xml.Name   `xml:"NFe"`
	Xmlns   string     `xml:"xmlns,attr"`
	InfNFe  infNFeNode `xml:"infNFe"`
}

type infNFeNode struct {
	Version string       `xml:"versao,attr"`
	ID      string       `xml:"Id,attr"`
	Ide     ideNode      `xml:"ide"`
	Emit    emitNode     `xml:"emit"`
	Dest    destNode     `xml:"dest"`
	Det     []detNode    `xml:"det"`
	Total   totalNode    `xml:"total"`
	Transp  transpNode   `xml:"transp"`
	Cobr    *cobrNode    `xml:"cobr,omitempty"`
	Pag     pagNode      `xml:"pag"`
	InfAdic *infAdicNode `xml:"infAdic,omitempty"`
}

type ideNode struct {
	CUF      string `xml:"cUF"`
	CNF      string `xml:"cNF"`
	NatOp    string `xml:"natOp"`
	Mod      string `xml:"mod"`
	Serie    string `xml:"serie"`
	NNF      string `xml:"nNF"`
	DhEmi    string `xml:"dhEmi"`
	TpNF     string `xml:"tpNF"`
	IDDest   string `xml:"idDest"`
	CMunFG   string `xml:"cMunFG"`
	TpImp    string `xml:"tpImp"`
	TpEmis   string `xml:"tpEmis"`
	CDV      string `xml:"cDV"`
	TpAmb    string `xml:"tpAmb"`
	FinNFe   string `xml:"finNFe"`
	IndFinal string `xml:"indFinal"`
	IndPres  string `xml:"indPres"`
	ProcEmi  string `xml:"procEmi"`
	VerProc  string `xml:"verProc"`
}

type enderNode struct {
	XLgr    string `xml:"xLgr"`
	Nro     string `xml:"nro"`
	XCpl    string `xml:"xCpl,omitempty"`
	XBairro string `xml:"xBairro"`
	CMun    string `xml:"cMun"`
	XMun    string `xml:"xMun"`
	UF      string `xml:"UF"`
	CEP     string `xml:"CEP"`
	CPais   string `xml:"cPais"`
	XPais   string `xml:"xPais"`
	Fone    string `xml:"fone,omitempty"`
}

type emitNode struct {
	CNPJ      string    `xml:"CNPJ"`
	XNome     string    `xml:"xNome"`
	XFant     string    `xml:"xFant,omitempty"`
	EnderEmit enderNode `xml:"enderEmit"`
	IE        string    `xml:"IE"`
	CRT       string    `xml:"CRT"`
}

type destNode struct {
	CNPJ      string    `xml:"CNPJ,omitempty"`
	CPF       string    `xml:"CPF,omitempty"`
	XNome     string    `xml:"xNome"`
	EnderDest enderNode `xml:"enderDest"`
	IndIEDest string    `xml:"indIEDest"`
	IE        string    `xml:"IE,omitempty"`
}

type detNode struct {
	NItem   string      `xml:"nItem,attr"`
	Prod    prodNode    `xml:"prod"`
	Imposto impostoNode `xml:"imposto"`
}

type prodNode struct {
	CProd    string `xml:"cProd"`
	CEAN     string `xml:"cEAN"`
	XProd    string `xml:"xProd"`
	NCM      string `xml:"NCM"`
	CFOP     string `xml:"CFOP"`
	UCom     string `xml:"uCom"`
	QCom     string `xml:"qCom"`
	VUnCom   string `xml:"vUnCom"`
	VProd    string `xml:"vProd"`
	CEANTrib string `xml:"cEANTrib"`
	UTrib    string `xml:"uTrib"`
	QTrib    string `xml:"qTrib"`
	VUnTrib  string `xml:"vUnTrib"`
	IndTot   string `xml:"indTot"`
}

type impostoNode struct {
	ICMS   icmsNode   `xml:"ICMS"`
	PIS    pisNode    `xml:"PIS"`
	COFINS cofinsNode `xml:"COFINS"`
}

type icmsNode struct {
	ICMS00 icms00Node `xml:"ICMS00"`
}

type icms00Node struct {
	Orig  string `xml:"orig"`
	CST   string `xml:"CST"`
	ModBC string `xml:"modBC"`
	VBC   string `xml:"vBC"`
	PICMS string `xml:"pICMS"`
	VICMS string `xml:"vICMS"`
}

type pisNode struct {
	PISAliq pisAliqNode `xml:"PISAliq"`
}

type pisAliqNode struct {
	CST  string `xml:"CST"`
	VBC  string `xml:"vBC"`
	PPIS string `xml:"pPIS"`
	VPIS string `xml:"vPIS"`
}

type cofinsNode struct {
	COFINSAliq cofinsAliqNode `xml:"COFINSAliq"`
}

type cofinsAliqNode struct {
	CST     string `xml:"CST"`
	VBC     string `xml:"vBC"`
	PCOFINS string `xml:"pCOFINS"`
	VCOFINS string `xml:"vCOFINS"`
}

type totalNode struct {
	ICMSTot icmsTotNode `xml:"ICMSTot"`
}

type icmsTotNode struct {
	VBC        string `xml:"vBC"`
	VICMS      string `xml:"vICMS"`
	VICMSDeson string `xml:"vICMSDeson"`
	VFCP       string `xml:"vFCP"`
	VBCST      string `xml:"vBCST"`
	VST        string `xml:"vST"`
	VFCPST     string `xml:"vFCPST"`
	VFCPSTRet  string `xml:"vFCPSTRet"`
	VProd      string `xml:"vProd"`
	VFrete     string `xml:"vFrete"`
	VSeg       string `xml:"vSeg"`
	VDesc      string `xml:"vDesc"`
	VII        string `xml:"vII"`
	VIPI       string `xml:"vIPI"`
	VIPIDevol  string `xml:"vIPIDevol"`
	VPIS       string `xml:"vPIS"`
	VCOFINS    string `xml:"vCOFINS"`
	VOutro     string `xml:"vOutro"`
	VNF        string `xml:"vNF"`
}

type transpNode struct {
	ModFrete   string          `xml:"modFrete"`
	Transporta *transportaNode `xml:"transporta,omitempty"`
	Vol        *volNode        `xml:"vol,omitempty"`
}

type transportaNode struct {
	CNPJ   string `xml:"CNPJ"`
	XNome  string `xml:"xNome"`
	IE     string `xml:"IE,omitempty"`
	XEnder string `xml:"xEnder"`
	XMun   string `xml:"xMun"`
	UF     string `xml:"UF"`
}

type volNode struct {
	QVol  string `xml:"qVol"`
	Esp   string `xml:"esp,omitempty"`
	Marca string `xml:"marca,omitempty"`
	PesoL string `xml:"pesoL"`
	PesoB string `xml:"pesoB"`
}

type cobrNode struct {
	Fat fatNode `xml:"fat"`
}

type fatNode struct {
	NFat  string `xml:"nFat"`
	VOrig string `xml:"vOrig"`
	VDesc string `xml:"vDesc"`
	VLiq  string `xml:"vLiq"`
}

type pagNode struct {
	DetPag []detPagNode `xml:"detPag"`
}

type detPagNode struct {
	TPag string `xml:"tPag"`
	VPag string `xml:"vPag"`
}

type infAdicNode struct {
	InfAdFisco string `xml:"infAdFisco,omitempty"`
	InfCpl     string `xml:"infCpl,omitempty"`
}

type protNFeNode struct {
	Version string      `xml:"versao,attr"`
	InfProt infProtNode `xml:"infProt"`
}

type infProtNode struct {
	TpAmb    string `xml:"tpAmb"`
	VerAplic string `xml:"verAplic"`
	ChNFe    string `xml:"chNFe"`
	DhRecbto string `xml:"dhRecbto"`
	NProt    string `xml:"nProt"`
	DigVal   string `xml:"digVal"`
	CStat    string `xml:"cStat"`
	XMotivo  string `xml:"xMotivo"`
}
