package export

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/ucsearch/ucs"
)

// JSON writes res as indented JSON. Field names are stable: start, goal,
// unit, state, steps, path, cost.
func JSON(w io.Writer, res *ucs.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(res)
}
