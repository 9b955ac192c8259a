package model

import (
	"encoding/xml"
	"time"

	"hostal/shared/model"
)

const (
	TableName  = "tax_documents"
	EntityName = "tax_document"

	FieldID            = "id"
	FieldBusinessID    = "business_id"
	FieldDocumentType  = "document_type"
	FieldFolio         = "folio"
	FieldReservationID = "reservation_id"
	FieldNetAmount     = "net_amount"
	FieldTaxAmount     = "tax_amount"
	FieldTotalAmount   = "total_amount"
	FieldIssuedAt      = "issued_at"
	FieldStatus        = "status"
	FieldXMLPath       = "xml_path"

	CounterTableName = "folio_counters"
)

const (
	DocumentTypeBoleta  = "boleta"
	DocumentTypeFactura = "factura"

	StatusIssued   = "issued"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Document struct {
	ID            string    `db:"id"`
	BusinessID    string    `db:"business_id"`
	DocumentType  string    `db:"document_type"`
	Folio         int64     `db:"folio"`
	ReservationID *string   `db:"reservation_id"`
	NetAmount     float64   `db:"net_amount"`
	TaxAmount     float64   `db:"tax_amount"`
	TotalAmount   float64   `db:"total_amount"`
	IssuedAt      time.Time `db:"issued_at"`
	Status        string    `db:"status"`
	XMLPath       string    `db:"xml_path"`
	model.Metadata
}

// Envelope is the XML document archived for every issued DTE.
type Envelope struct {
	XMLName      xml.Name `xml:"DTE"`
	Version      string   `xml:"version,attr"`
	DocumentType string   `xml:"Documento>Encabezado>IdDoc>TipoDTE"`
	Folio        int64    `xml:"Documento>Encabezado>IdDoc>Folio"`
	IssuedAt     string   `xml:"Documento>Encabezado>IdDoc>FchEmis"`
	IssuerRut    string   `xml:"Documento>Encabezado>Emisor>RUTEmisor"`
	IssuerName   string   `xml:"Documento>Encabezado>Emisor>RznSoc"`
	NetAmount    float64  `xml:"Documento>Encabezado>Totales>MntNeto"`
	TaxAmount    float64  `xml:"Documento>Encabezado>Totales>IVA"`
	TotalAmount  float64  `xml:"Documento>Encabezado>Totales>MntTotal"`
}
