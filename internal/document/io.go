package document

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/online-edu/platform/internal/model"
)

// FormatForPath выбирает формат по расширению файла: ".xml" — XML,
// всё остальное — JSON.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return model.SnapshotFormatXML
	}
	return model.SnapshotFormatJSON
}

// Marshal сериализует документ в выбранный формат.
func Marshal(doc *Document, format string) ([]byte, error) {
	switch format {
	case model.SnapshotFormatXML:
		data, err := xml.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal xml: %w", err)
		}
		return append([]byte(xml.Header), data...), nil
	case model.SnapshotFormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}

// Unmarshal разбирает документ из выбранного формата.
func Unmarshal(data []byte, format string) (*Document, error) {
	var doc Document
	switch format {
	case model.SnapshotFormatXML:
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal xml: %w", err)
		}
	case model.SnapshotFormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
	return &doc, nil
}

// WriteFile сериализует документ и атомарно пишет его в файл целиком.
// Файловый дескриптор закрывается до возврата на любом пути.
func WriteFile(path string, doc *Document) error {
	data, err := Marshal(doc, FormatForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile читает файл целиком и разбирает документ.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data, FormatForPath(path))
}
