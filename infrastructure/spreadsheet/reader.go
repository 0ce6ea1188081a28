package spreadsheet

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("formato de planilha não suportado")

// Reader lê a primeira aba de uma planilha como linhas de texto
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ReadFirstSheet decide o formato pela extensão do nome do arquivo.
// Arquivos .xlsx são lidos com valores brutos das células, então números não carregam formatação de moeda.
func (r *Reader) ReadFirstSheet(name string, src io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(name, src)
	case ".csv":
		return readCSV(name, src)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "arquivo %s", name)
	}
}

func readWorkbook(name string, src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", name)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.Errorf("planilha %s não possui abas", name)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %s da planilha %s", sheet, name)
	}

	return rows, nil
}

func readCSV(name string, src io.Reader) ([][]string, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler csv %s", name)
	}

	return rows, nil
}
