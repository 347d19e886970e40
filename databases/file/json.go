package file

import (
	"encoding/json"
	"io"

	"github.com/thisuxhq/pockettypes"
)

func writeJSON(w io.Writer, collections []*pockettypes.Collection) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(collections)
}
