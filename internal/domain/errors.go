package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrEmptyDataset   = errors.New("dataset vacío")
	ErrIntegrityCheck = errors.New("la validación de integridad encontró errores")
)
