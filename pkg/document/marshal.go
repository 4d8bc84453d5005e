package document

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfigFileName = "startup-cfg.xml"
	StateFileName  = "microwave-model-status.xml"
)

// Marshal encodes doc as an indented XML document with header.
func Marshal(doc interface{}) ([]byte, error) {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling document: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

// WriteFile marshals doc into path, creating missing parent directories.
func WriteFile(path string, doc interface{}) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("error creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:mnd,gosec
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// RenderedFileNames returns the debug output file names of a node.
func RenderedFileNames(nodeName string) (config, state string) {
	return "output-config-" + nodeName + ".xml", "output-status-" + nodeName + ".xml"
}
