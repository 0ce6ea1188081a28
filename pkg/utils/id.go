package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Tamanhos dos identificadores. As colunas de id aceitam até 21 caracteres.
const (
	SalespersonIDSize = 6
	BatchIDSize       = 12
)

// GenerateID gera o id curto usado para vendedores
func GenerateID() (string, error) {
	return GenerateIDWithSize(SalespersonIDSize)
}

// GenerateBatchID gera o id de um lote de upload. Lotes se acumulam mês a mês,
// por isso usam um id mais longo.
func GenerateBatchID() (string, error) {
	return GenerateIDWithSize(BatchIDSize)
}

func GenerateIDWithSize(size int) (string, error) {
	return gonanoid.Generate(idAlphabet, size)
}
