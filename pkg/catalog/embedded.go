package catalog

import (
	catalogdata "github.com/antoniocali/wollama/catalog"
)

// LoadEmbedded loads the default catalog compiled into the binary.
func LoadEmbedded() ([]ModelRecord, error) {
	return LoadFS(catalogdata.ModelFS, "models/*.json")
}
