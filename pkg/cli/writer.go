package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
)

// Stats counts records read and written by a command.
type Stats struct {
	Input  int
	Output int
}

// Writer writes a table of string records, header first.
type Writer interface {
	Write(w io.Writer, headers []string, records iter.Seq[[]string]) error
	Ext() string
}

// newWriter returns the writer for an output format, nil for "none".
func newWriter(format string, stats *Stats) (Writer, error) {
	switch format {
	case "csv":
		return &CsvWriter{Stats: stats}, nil
	case "tsv":
		return &CsvWriter{isTSV: true, Stats: stats}, nil
	case "json":
		return &JsonWriter{Stats: stats}, nil
	case "none", "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// writeFile writes records to directory/name.<ext> and returns the path.
func writeFile(writer Writer, directory, name string, headers []string, records iter.Seq[[]string]) (string, error) {
	filePath := filepath.Join(directory, name+"."+writer.Ext())
	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	slog.Debug("writing results", "file", filePath)
	if err := writer.Write(file, headers, records); err != nil {
		return "", fmt.Errorf("%s: %w", filePath, err)
	}
	return filePath, file.Close()
}

// JsonWriter writes an array of objects keyed by header.
type JsonWriter struct {
	Stats *Stats
}

func (w *JsonWriter) Ext() string {
	return "json"
}

func (w *JsonWriter) Write(out io.Writer, headers []string, records iter.Seq[[]string]) error {
	encoder := json.NewEncoder(out)

	if _, err := io.WriteString(out, "["); err != nil {
		return err
	}
	i := 0
	for record := range records {
		if i > 0 {
			if _, err := io.WriteString(out, ","); err != nil {
				return err
			}
		}
		object := make(map[string]json.RawMessage, len(headers))
		for col, header := range headers {
			if col < len(record) {
				object[header] = rawValue(record[col])
			}
		}
		if err := encoder.Encode(object); err != nil {
			return err
		}
		i++
		if w.Stats != nil {
			w.Stats.Output++
		}
	}
	_, err := io.WriteString(out, "]\n")
	return err
}

// rawValue keeps numbers as JSON numbers and quotes everything else.
func rawValue(s string) json.RawMessage {
	if json.Valid([]byte(s)) {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			if _, isNumber := v.(float64); isNumber {
				return json.RawMessage(s)
			}
		}
	}
	quoted, _ := json.Marshal(s)
	return quoted
}

// CsvWriter writes comma (or tab) separated records with a header line.
type CsvWriter struct {
	isTSV bool
	Stats *Stats
}

func (w *CsvWriter) Ext() string {
	if w.isTSV {
		return "tsv"
	}
	return "csv"
}

func (w *CsvWriter) Write(out io.Writer, headers []string, records iter.Seq[[]string]) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write(headers); err != nil {
		return err
	}
	for record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
		if w.Stats != nil {
			w.Stats.Output++
		}
	}
	writer.Flush()
	return writer.Error()
}
