package catalogdata

import "embed"

// ModelFS contains the embedded default model catalog JSON files from
// catalog/models/.
//
//go:embed models/*.json
var ModelFS embed.FS
