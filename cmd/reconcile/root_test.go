package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryYAML = `
salespeople:
  - id: SP1
    name: Anil Kumar
    brand: VIDEUM
  - id: SP2
    name: Beena
`

const salesCSV = `Date,Invoice No.,Customer,Net Invoice,Amount Realised,Invoice Value,Model,Net Amount
Salesperson: Anil Kumar
01-10-2025,GI/1,Random,5200,5200,5200,VIDEUM X200,5000
,,,,,,SPARES-X,200
03-10-2025,GI/16909*,Random,700,700,700,ACME,700
Salesperson: Beena
04-10-2025,GI/3,Random,300,300,300,ACME TV,300
Salesperson: Carlos
05-10-2025,GI/4,Random,900,900,900,VIDEUM,900
`

const returnsCSV = `Sl No,Ref. Doc. Info.
1,GI/16909*  02-11-2025
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (*output, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}

	var result output
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(stdout.Bytes(), &result))
	return &result, nil
}

func TestReconcileCommand(t *testing.T) {
	dir := t.TempDir()
	directory := writeFile(t, dir, "vendedores.yaml", directoryYAML)
	sales := writeFile(t, dir, "vendas.csv", salesCSV)
	returns := writeFile(t, dir, "devolucoes.csv", returnsCSV)

	t.Run("Concilia e imprime o acumulado por vendedor", func(t *testing.T) {
		result, err := runCmd(t,
			"--sales", sales,
			"--returns", returns,
			"--directory", directory,
			"--month", "10",
			"--year", "2025",
		)
		require.NoError(t, err)

		assert.Equal(t, "10-2025", result.Summary.Period)
		assert.Equal(t, 1, result.Summary.ReturnsExcluded)
		assert.Equal(t, []string{"CARLOS"}, result.Summary.SkippedSalespeople)
		assert.True(t, decimal.NewFromInt(5000).Equal(result.Summary.Own))
		assert.True(t, decimal.NewFromInt(300).Equal(result.Summary.Other))

		require.Len(t, result.Achievements, 2)
		assert.Equal(t, "SP1", result.Achievements[0].SalespersonID)
		assert.True(t, decimal.NewFromInt(5000).Equal(result.Achievements[0].OwnAchievement))
		assert.Equal(t, "SP2", result.Achievements[1].SalespersonID)
		assert.True(t, decimal.NewFromInt(300).Equal(result.Achievements[1].OtherAchievement))
	})

	t.Run("Mesmo arquivo duas vezes dobra o acumulado", func(t *testing.T) {
		result, err := runCmd(t,
			"--sales", sales,
			"--sales", sales,
			"--directory", directory,
			"--month", "10",
			"--year", "2025",
		)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(10000).Equal(result.Achievements[0].OwnAchievement))
		assert.True(t, decimal.NewFromInt(1400).Equal(result.Achievements[0].OtherAchievement))
	})

	t.Run("Período inválido", func(t *testing.T) {
		_, err := runCmd(t, "--sales", sales, "--directory", directory, "--month", "13", "--year", "2025")
		assert.Error(t, err)
	})

	t.Run("Flags obrigatórias", func(t *testing.T) {
		_, err := runCmd(t, "--sales", sales)
		assert.Error(t, err)
	})

	t.Run("Cadastro inexistente", func(t *testing.T) {
		_, err := runCmd(t, "--sales", sales, "--directory", filepath.Join(dir, "nada.yaml"), "--month", "10", "--year", "2025")
		assert.Error(t, err)
	})
}
