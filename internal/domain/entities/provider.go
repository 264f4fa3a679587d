package entities

import "errors"

var ErrProviderStatusRegression = errors.New("provider status cannot move backwards")

// ProviderOrigin identifies the research step where a provider was found.
type ProviderOrigin string

const (
	ProviderOriginCompranet ProviderOrigin = "compranet"
	ProviderOriginArchive   ProviderOrigin = "archivo_interno"
	ProviderOriginChamber   ProviderOrigin = "camara_universidad"
	ProviderOriginInternet  ProviderOrigin = "internet"
)

var providerOriginLabels = map[ProviderOrigin]string{
	ProviderOriginCompranet: "Compranet",
	ProviderOriginArchive:   "Archivo Interno",
	ProviderOriginChamber:   "Cámara/Universidad",
	ProviderOriginInternet:  "Internet",
}

func (o ProviderOrigin) Valid() bool {
	_, ok := providerOriginLabels[o]
	return ok
}

func (o ProviderOrigin) Label() string {
	if l, ok := providerOriginLabels[o]; ok {
		return l
	}
	return string(o)
}

// ProviderStatus is derived from the invitation flags, never stored.
type ProviderStatus string

const (
	ProviderStatusPendienteInvitar   ProviderStatus = "pendiente_invitar"
	ProviderStatusEsperandoRespuesta ProviderStatus = "esperando_respuesta"
	ProviderStatusCotizacionRecibida ProviderStatus = "cotizacion_recibida"
)

var providerStatusRank = map[ProviderStatus]int{
	ProviderStatusPendienteInvitar:   0,
	ProviderStatusEsperandoRespuesta: 1,
	ProviderStatusCotizacionRecibida: 2,
}

var providerStatusLabels = map[ProviderStatus]string{
	ProviderStatusPendienteInvitar:   "Pendiente de invitar",
	ProviderStatusEsperandoRespuesta: "Esperando respuesta",
	ProviderStatusCotizacionRecibida: "Cotización recibida",
}

func (s ProviderStatus) Label() string {
	if l, ok := providerStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// InvitedProvider is a provider the requesting area asked (or plans to ask) for a quote.
type InvitedProvider struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	TaxID            *string        `json:"tax_id,omitempty"`
	Origin           ProviderOrigin `json:"origin"`
	InvitationSent   bool           `json:"invitation_sent"`
	ResponseUploaded bool           `json:"response_uploaded"`
	Selected         bool           `json:"selected"`
}

// Status resolves the invitation flags. An uploaded response without a sent
// invitation still reads as pending: the invitation flag wins.
func (p InvitedProvider) Status() ProviderStatus {
	switch {
	case !p.InvitationSent:
		return ProviderStatusPendienteInvitar
	case p.ResponseUploaded:
		return ProviderStatusCotizacionRecibida
	default:
		return ProviderStatusEsperandoRespuesta
	}
}

// CheckTransition rejects any move to a lower ranked status.
func CheckTransition(from, to ProviderStatus) error {
	if providerStatusRank[to] < providerStatusRank[from] {
		return ErrProviderStatusRegression
	}
	return nil
}
