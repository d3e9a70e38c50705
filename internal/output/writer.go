// Package output renders boards and writes game records.
package output

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RecordWriter writes games as indented JSON documents.
type RecordWriter struct {
	w io.Writer
}

// NewRecordWriter creates a new JSON record writer.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: w}
}

// WriteGame writes a single game followed by a newline.
func (rw *RecordWriter) WriteGame(game *JSONGame) error {
	data, err := sonic.ConfigStd.MarshalIndent(game, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode game record")
	}
	data = append(data, '\n')
	if _, err := rw.w.Write(data); err != nil {
		return errors.Wrap(err, "write game record")
	}
	return nil
}

// ReadGame decodes a game record previously written by WriteGame.
func ReadGame(r io.Reader) (*JSONGame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read game record")
	}
	var game JSONGame
	if err := sonic.Unmarshal(data, &game); err != nil {
		return nil, errors.Wrap(err, "decode game record")
	}
	return &game, nil
}
