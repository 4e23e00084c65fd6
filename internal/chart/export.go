package chart

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the chart as indented JSON to the given writer.
func (c *Chart) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
