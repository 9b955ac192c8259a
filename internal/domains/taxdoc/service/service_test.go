package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	kafkaMocks "hostal/infras/kafka/mocks"
	"hostal/infras/otel/mocks"
	s3Mocks "hostal/infras/s3/mocks"
	businessMocks "hostal/internal/domains/business/mocks"
	businessModel "hostal/internal/domains/business/model"
	taxdocMocks "hostal/internal/domains/taxdoc/mocks"
	"hostal/internal/domains/taxdoc/model"
	"hostal/internal/domains/taxdoc/model/dto"
	"hostal/internal/domains/taxdoc/service"
	"hostal/shared/constant"
)

type taxdocFixture struct {
	svc              service.TaxDocument
	mockRepo         *taxdocMocks.MockTaxDocument
	mockBusinessRepo *businessMocks.MockBusiness
	mockStorage      *s3Mocks.MockS3
	mockPublisher    *kafkaMocks.MockPublisher
}

func newTaxdocFixture(t *testing.T) taxdocFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := taxdocFixture{
		mockRepo:         taxdocMocks.NewMockTaxDocument(ctrl),
		mockBusinessRepo: businessMocks.NewMockBusiness(ctrl),
		mockStorage:      s3Mocks.NewMockS3(ctrl),
		mockPublisher:    kafkaMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.mockRepo, f.mockBusinessRepo, f.mockStorage, f.mockPublisher, &config.Config{}, mocks.NewOtel())

	return f
}

func taxdocCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func issuingBusiness() businessModel.Business {
	return businessModel.Business{
		ID:    "business-id-123",
		Name:  "Hostal Lima SpA",
		Rut:   "76.123.456-7",
		Email: "contacto@hostal-lima.cl",
	}
}

func TestTaxDocumentService_Issue(t *testing.T) {
	req := dto.IssueDocumentRequest{
		BusinessID:   "business-id-123",
		DocumentType: model.DocumentTypeBoleta,
		TotalAmount:  119000,
	}

	t.Run("success claims a folio and archives the envelope", func(t *testing.T) {
		f := newTaxdocFixture(t)

		f.mockBusinessRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(issuingBusiness(), nil)
		f.mockRepo.EXPECT().ClaimFolio(gomock.Any(), "business-id-123", model.DocumentTypeBoleta).Return(int64(42), nil)
		f.mockStorage.EXPECT().
			UploadBytes(gomock.Any(), "dte/business-id-123", "boleta-42.xml", "application/xml", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, data []byte) (string, error) {
				body := string(data)
				assert.True(t, strings.HasPrefix(body, "<?xml"))
				assert.Contains(t, body, "76.123.456-7")

				return "https://storage.example.com/dte/business-id-123/boleta-42.xml", nil
			})
		f.mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, document model.Document) error {
				assert.Equal(t, int64(42), document.Folio)
				assert.Equal(t, model.StatusIssued, document.Status)
				assert.Equal(t, float64(100000), document.NetAmount)
				assert.Equal(t, float64(19000), document.TaxAmount)

				return nil
			})
		f.mockPublisher.EXPECT().
			Publish(gomock.Any(), constant.KafkaTopicTaxDocument, gomock.Any()).
			Return(nil)

		res, err := f.svc.Issue(taxdocCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.Folio)
		assert.Equal(t, model.DocumentTypeBoleta, res.DocumentType)
		assert.NotEmpty(t, res.XMLPath)
	})

	t.Run("business not found", func(t *testing.T) {
		f := newTaxdocFixture(t)

		f.mockBusinessRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(businessModel.Business{}, nil)

		_, err := f.svc.Issue(taxdocCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "business not found")
	})

	t.Run("duplicate document for the reservation", func(t *testing.T) {
		f := newTaxdocFixture(t)

		withReservation := req
		withReservation.ReservationID = "44444444-4444-4444-4444-444444444444"

		f.mockBusinessRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(issuingBusiness(), nil)
		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Issue(taxdocCtx(), withReservation)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reservation already has a document of this type")
	})

	t.Run("folio claim error", func(t *testing.T) {
		f := newTaxdocFixture(t)

		f.mockBusinessRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(issuingBusiness(), nil)
		f.mockRepo.EXPECT().ClaimFolio(gomock.Any(), "business-id-123", model.DocumentTypeBoleta).Return(int64(0), errors.New("db error"))

		_, err := f.svc.Issue(taxdocCtx(), req)

		assert.Error(t, err)
	})

	t.Run("archive failure aborts before the document is recorded", func(t *testing.T) {
		f := newTaxdocFixture(t)

		f.mockBusinessRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(issuingBusiness(), nil)
		f.mockRepo.EXPECT().ClaimFolio(gomock.Any(), "business-id-123", model.DocumentTypeBoleta).Return(int64(43), nil)
		f.mockStorage.EXPECT().
			UploadBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("storage unavailable"))

		_, err := f.svc.Issue(taxdocCtx(), req)

		assert.Error(t, err)
	})
}

func TestTaxDocumentService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newTaxdocFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Document{}, nil)

		_, err := f.svc.Get(taxdocCtx(), "missing-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "tax document not found")
	})
}
