package entities

// DocumentKind identifies one of the four official forms generated from a draft.
type DocumentKind string

const (
	DocumentKindOrder          DocumentKind = "focon01"
	DocumentKindTechnicalAnnex DocumentKind = "focon03"
	DocumentKindMarketResearch DocumentKind = "focon05"
	DocumentKindJustification  DocumentKind = "focon06"
)

// DocumentKinds lists the kinds in form number order.
var DocumentKinds = []DocumentKind{
	DocumentKindOrder,
	DocumentKindTechnicalAnnex,
	DocumentKindMarketResearch,
	DocumentKindJustification,
}

type documentKindInfo struct {
	code       string
	title      string
	filePrefix string
}

var documentKindInfos = map[DocumentKind]documentKindInfo{
	DocumentKindOrder:          {code: "FO-CON-01", title: "Requisición / Pedido", filePrefix: "FOCON01_Pedido"},
	DocumentKindTechnicalAnnex: {code: "FO-CON-03", title: "Anexo Técnico", filePrefix: "FOCON03_AnexoTecnico"},
	DocumentKindMarketResearch: {code: "FO-CON-05", title: "Investigación de Mercado", filePrefix: "FOCON05_Investigacion"},
	DocumentKindJustification:  {code: "FO-CON-06", title: "Justificación", filePrefix: "FOCON06_Justificacion"},
}

func (k DocumentKind) Valid() bool {
	_, ok := documentKindInfos[k]
	return ok
}

func (k DocumentKind) Code() string  { return documentKindInfos[k].code }
func (k DocumentKind) Title() string { return documentKindInfos[k].title }

// FileName is the output file name for a draft folio, without extension.
func (k DocumentKind) FileName(folio string) string {
	return documentKindInfos[k].filePrefix + "_" + folio
}

// GeneratedDocument is the rendered file returned by the rendering service.
type GeneratedDocument struct {
	Kind        DocumentKind `json:"kind"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	ContentType string       `json:"content_type"`
	Content     []byte       `json:"-"`
}
