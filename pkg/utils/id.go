package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	datasetIDPrefix = "ds_"
	datasetIDSize   = 10
	idCharacters    = "abcdefghijkmnpqrstuvwxyz23456789"
)

// GenerateDatasetID cria o identificador curto exibido no dashboard e nos nomes de arquivo exportados
func GenerateDatasetID() (string, error) {
	id, err := gonanoid.Generate(idCharacters, datasetIDSize)
	if err != nil {
		return "", err
	}

	return datasetIDPrefix + id, nil
}
