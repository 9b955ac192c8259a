package dto

import (
	"time"

	"hostal/internal/domains/taxdoc/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
)

type IssueDocumentRequest struct {
	BusinessID    string  `json:"business_id"    validate:"required,uuid"`
	DocumentType  string  `json:"document_type"  validate:"required,oneof=boleta factura"`
	ReservationID string  `json:"reservation_id" validate:"omitempty,uuid"`
	NetAmount     float64 `json:"net_amount"     validate:"omitempty,min=0"`
	TotalAmount   float64 `json:"total_amount"   validate:"required,min=1"`
}

type DocumentResponse struct {
	ID            string  `json:"id"`
	BusinessID    string  `json:"business_id"`
	DocumentType  string  `json:"document_type"`
	Folio         int64   `json:"folio"`
	ReservationID string  `json:"reservation_id,omitempty"`
	NetAmount     float64 `json:"net_amount"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	IssuedAt      string  `json:"issued_at"`
	Status        string  `json:"status"`
	XMLPath       string  `json:"xml_path,omitempty"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(mod model.Document) {
	r.ID = mod.ID
	r.BusinessID = mod.BusinessID
	r.DocumentType = mod.DocumentType
	r.Folio = mod.Folio

	if mod.ReservationID != nil {
		r.ReservationID = *mod.ReservationID
	}

	r.NetAmount = mod.NetAmount
	r.TaxAmount = mod.TaxAmount
	r.TotalAmount = mod.TotalAmount
	r.IssuedAt = mod.IssuedAt.Format(time.RFC3339)
	r.Status = mod.Status
	r.XMLPath = mod.XMLPath
	r.Metadata.FromModel(mod.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Documents = make([]DocumentResponse, len(models))
	for i, mod := range models {
		r.Documents[i].FromModel(mod)
	}
}
