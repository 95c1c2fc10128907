package service

import (
	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/store"
)

type ClientServices struct {
	RecordService RecordService
}

// NewClientServices builds the services used by the console client. Every
// write of the returned RecordService is validated.
func NewClientServices(storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	recordSvc := NewRecordValidationService().Wrap(
		NewRecordService(storages.RecordRepository, logger),
	)

	return &ClientServices{
		RecordService: recordSvc,
	}
}
