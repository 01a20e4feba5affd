// Package export writes invoice records to CSV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"dguaman/sri-facturas/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteRecordsToCSV writes invoice records to a CSV file, creating the
// target directory when needed.
func WriteRecordsToCSV(records []models.InvoiceRecord, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Writing invoice records to CSV file")

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// ReadRecordsFromCSV reads invoice records back from a CSV file previously
// produced by WriteRecordsToCSV.
func ReadRecordsFromCSV(csvFile string) ([]models.InvoiceRecord, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var records []models.InvoiceRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return records, nil
}
