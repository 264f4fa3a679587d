package documents

// OrderPayload feeds the FO-CON-01 request/order template.
type OrderPayload struct {
	Folio             string      `json:"folio"`
	Date              string      `json:"fecha"`
	Area              string      `json:"area"`
	Requester         string      `json:"solicitante"`
	ContractingType   string      `json:"tipo_contratacion"`
	Program           string      `json:"programa"`
	AuthorizationMemo string      `json:"oficio_autorizacion"`
	Lines             []OrderLine `json:"partidas"`
	Subtotal          string      `json:"subtotal"`
	Tax               string      `json:"iva"`
	Total             string      `json:"total"`
}

type OrderLine struct {
	SpecificBudgetLine string `json:"partida_especifica"`
	CUCOP              string `json:"cucop"`
	Description        string `json:"descripcion"`
	Unit               string `json:"unidad"`
	Quantity           string `json:"cantidad"`
	Price              string `json:"precio"`
	Amount             string `json:"importe"`
}

// TechnicalAnnexPayload feeds the FO-CON-03 technical annex template.
type TechnicalAnnexPayload struct {
	Folio string      `json:"folio"`
	Area  string      `json:"area"`
	Lines []AnnexLine `json:"partidas"`
}

type AnnexLine struct {
	Index       int    `json:"idx"`
	Description string `json:"descripcion"`
	Quantity    string `json:"cantidad"`
	Unit        string `json:"unidad"`
}

// MarketResearchPayload feeds the FO-CON-05 market research template.
type MarketResearchPayload struct {
	Folio              string           `json:"folio"`
	Date               string           `json:"fecha"`
	WinningProvider    string           `json:"proveedor_ganador"`
	SelectionRationale string           `json:"justificacion_seleccion"`
	Compranet          []CompranetEntry `json:"fuentes_compranet"`
	Internet           []InternetEntry  `json:"fuentes_internet"`
	Archive            []ArchiveEntry   `json:"fuentes_archivos"`
	Chambers           []ChamberEntry   `json:"fuentes_camaras"`
}

type CompranetEntry struct {
	Index    int    `json:"idx"`
	Provider string `json:"proveedor"`
	Price    string `json:"precio"`
	Contract string `json:"contrato"`
}

type InternetEntry struct {
	Index     int    `json:"idx"`
	Search    string `json:"busqueda"`
	Page      string `json:"pagina"`
	Providers string `json:"proveedores"`
}

type ArchiveEntry struct {
	Index    int    `json:"idx"`
	Provider string `json:"proveedor"`
	Contract string `json:"contrato"`
}

type ChamberEntry struct {
	Index       int    `json:"idx"`
	Institution string `json:"institucion"`
	Memo        string `json:"oficio"`
}

// JustificationPayload feeds the FO-CON-06 justification template.
type JustificationPayload struct {
	Folio         string `json:"folio"`
	Area          string `json:"area"`
	Date          string `json:"fecha"`
	Justification string `json:"justificacion_texto"`
}
