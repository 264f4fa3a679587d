package response

import (
	"requisiciones_api/internal/usecase"
)

type SubmissionResponse struct {
	RequisitionID string        `json:"requisition_id"`
	Folio         string        `json:"folio"`
	Draft         DraftResponse `json:"draft"`
}

func FromSubmission(r usecase.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		RequisitionID: r.Requisition.ID,
		Folio:         r.Draft.Folio,
		Draft:         FromDraft(r.Draft),
	}
}

type DocumentKindResponse struct {
	Kind  string `json:"kind"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

func FromDocumentKinds(kinds []usecase.DocumentKindInfo) []DocumentKindResponse {
	out := make([]DocumentKindResponse, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, DocumentKindResponse{Kind: string(k.Kind), Code: k.Code, Title: k.Title})
	}
	return out
}
