package reader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, addr, &row))
	}

	path := filepath.Join(t.TempDir(), "operations.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadOperations(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Дата операции", "Дата платежа", "Номер карты", "Сумма операции", "Сумма платежа", "Категория", "Описание", "Кэшбэк"},
		{"31.12.2021 16:44:00", "31.12.2021", "*7197", "-160.89", "-160.89", "Супермаркеты", "Колхоз", ""},
		{"21.12.2021 12:00:00", "21.12.2021", "", "-1198,23", "-1198,23", "Переводы", "Перевод Кредитная карта", "11"},
	})

	r := NewXLSXReader()
	transactions, err := r.Read(path)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "31.12.2021 16:44:00", first.OperationDate)
	assert.Equal(t, "*7197", first.Card)
	require.NotNil(t, first.OperationAmount)
	assert.Equal(t, "-160.89", first.OperationAmount.String())
	assert.Nil(t, first.Cashback)

	second := transactions[1]
	assert.False(t, second.HasCard())
	require.NotNil(t, second.PaymentAmount)
	assert.Equal(t, "-1198.23", second.PaymentAmount.String())
	require.NotNil(t, second.Cashback)
	assert.Equal(t, "11", second.Cashback.String())
}

func TestReadMissingColumnsYieldAbsentFields(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Дата операции", "Сумма операции"},
		{"01.01.2022 09:00:00", "-50"},
	})

	transactions, err := NewXLSXReader().Read(path)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Empty(t, transactions[0].Card)
	assert.Nil(t, transactions[0].PaymentAmount)
	assert.Nil(t, transactions[0].Cashback)
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewXLSXReader().Read(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}
