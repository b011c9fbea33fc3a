// Package transactionparser reads transaction history exports into the shared
// transaction model. The expected input is a CSV with date, category and
// amount columns; header spelling and casing are normalized before mapping.
package transactionparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"vivek/budget-buddy/internal/dateutils"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// csvRow maps one normalized CSV record. Extra columns in the export are ignored.
type csvRow struct {
	Date     string `csv:"date"`
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
}

// Parser reads transaction CSV files.
type Parser struct {
	delimiter rune
	logger    logging.Logger
}

// New creates a Parser using the comma delimiter.
func New(logger logging.Logger) *Parser {
	return NewWithDelimiter(',', logger)
}

// NewWithDelimiter creates a Parser for exports using a non-default delimiter.
func NewWithDelimiter(delimiter rune, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{delimiter: delimiter, logger: logger}
}

// ParseFile reads transactions from the CSV file at path.
func (p *Parser) ParseFile(path string) ([]models.Transaction, error) {
	log := p.logger.WithField(logging.FieldFile, path)
	log.Info("Reading transaction CSV file")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening transactions file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	transactions, err := p.Parse(file)
	if err != nil {
		return nil, err
	}

	log.WithField(logging.FieldCount, len(transactions)).Info("Successfully read transactions")
	return transactions, nil
}

// Parse reads transactions from r. Rows whose date or amount cannot be parsed
// are skipped with a warning; a malformed row never fails the whole import.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return []models.Transaction{}, nil
	}

	normalizeHeader(records[0])

	var rows []csvRow
	if err := gocsv.UnmarshalCSV(&recordReader{records: records}, &rows); err != nil {
		return nil, fmt.Errorf("error mapping CSV columns: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		date, err := dateutils.ParseDate(row.Date)
		if err != nil {
			p.logger.WithError(err).WithField("row", i+1).Warn("Skipping transaction with unparsable date")
			continue
		}

		amount, err := parseAmount(row.Amount)
		if err != nil {
			p.logger.WithError(err).WithField("row", i+1).Warn("Skipping transaction with unparsable amount")
			continue
		}

		transactions = append(transactions, models.Transaction{
			Date:     date,
			Category: strings.TrimSpace(row.Category),
			Amount:   amount,
		})
	}

	return transactions, nil
}

// normalizeHeader cleans column names in place the way messy spreadsheet
// exports require: trim, lower-case, spaces to underscores.
func normalizeHeader(header []string) {
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		header[i] = strings.ReplaceAll(col, " ", "_")
	}
}

// parseAmount converts an amount cell to a decimal, tolerating a leading
// currency symbol and surrounding whitespace.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}

// recordReader feeds pre-read records to gocsv.
type recordReader struct {
	records [][]string
	next    int
}

func (r *recordReader) Read() ([]string, error) {
	if r.next >= len(r.records) {
		return nil, io.EOF
	}
	record := r.records[r.next]
	r.next++
	return record, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	remaining := r.records[r.next:]
	r.next = len(r.records)
	return remaining, nil
}
