package panel

import (
	"bytes"
	"io"
)

// CRLFWriter translates "\n" to "\r\n". Raw mode turns off the terminal's
// own translation, so output written while the panel is open needs it.
type CRLFWriter struct {
	w io.Writer
}

func NewCRLFWriter(w io.Writer) *CRLFWriter {
	return &CRLFWriter{w: w}
}

func (c *CRLFWriter) Write(p []byte) (int, error) {
	out := bytes.ReplaceAll(p, []byte("\r\n"), []byte("\n"))
	out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
