package transactionparser

import (
	"strings"
	"testing"

	"vivek/budget-buddy/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	input := `date,category,amount
2024-03-01,market,50.25
2024-03-02,taxi,12
`
	transactions, err := New(&logging.MockLogger{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, "2024-03-01", transactions[0].Date.Format("2006-01-02"))
	assert.Equal(t, "market", transactions[0].Category)
	assert.Equal(t, "50.25", transactions[0].Amount.String())
	assert.Equal(t, "taxi", transactions[1].Category)
	assert.Equal(t, "12", transactions[1].Amount.String())
}

func TestParseNormalizesHeaderAndAmounts(t *testing.T) {
	// Messy export: cased and padded headers, an extra column, dollar signs.
	input := ` Date , CATEGORY ,note, Amount
2024-03-01,market,lunch,$50.25
01/02/2024,coffe,,$ 3.50
`
	transactions, err := New(&logging.MockLogger{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, "50.25", transactions[0].Amount.String())
	assert.Equal(t, "2024-01-02", transactions[1].Date.Format("2006-01-02"))
	assert.Equal(t, "3.5", transactions[1].Amount.String())
}

func TestParseSkipsMalformedRows(t *testing.T) {
	input := `date,category,amount
2024-03-01,market,50
not-a-date,market,10
2024-03-02,taxi,not-a-number
2024-03-03,events,
2024-03-04,sport,25
`
	logger := &logging.MockLogger{}
	transactions, err := NewWithDelimiter(',', logger).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, "market", transactions[0].Category)
	assert.Equal(t, "sport", transactions[1].Category)
	assert.True(t, logger.HasEntry("WARN", "Skipping transaction with unparsable date"))
	assert.True(t, logger.HasEntry("WARN", "Skipping transaction with unparsable amount"))
}

func TestParseSemicolonDelimiter(t *testing.T) {
	input := "date;category;amount\n2024-03-01;market;50\n"

	transactions, err := NewWithDelimiter(';', &logging.MockLogger{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, transactions, 1)
	assert.Equal(t, "market", transactions[0].Category)
}

func TestParseEmptyInput(t *testing.T) {
	transactions, err := New(&logging.MockLogger{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestParseFileMissing(t *testing.T) {
	_, err := New(&logging.MockLogger{}).ParseFile("does-not-exist.csv")
	assert.Error(t, err)
}
