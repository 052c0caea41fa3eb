package design

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRequests reads design requests from a JSON or YAML file holding
// either one request or a list of them. Fields left out of a request keep
// the values of DefaultRequest.
func LoadRequests(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(path, data)
	}

	var raw []json.RawMessage
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		raw = []json.RawMessage{trimmed}
	}

	requests := make([]Request, 0, len(raw))
	for i, msg := range raw {
		r := DefaultRequest()
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, fmt.Errorf("parse %s: request %d: %w", path, i+1, err)
		}
		requests = append(requests, r)
	}
	return requests, nil
}

func decodeYAML(path string, data []byte) ([]Request, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse %s: empty document", path)
	}

	nodes := []*yaml.Node{doc.Content[0]}
	if doc.Content[0].Kind == yaml.SequenceNode {
		nodes = doc.Content[0].Content
	}

	requests := make([]Request, 0, len(nodes))
	for i, n := range nodes {
		r := DefaultRequest()
		if err := n.Decode(&r); err != nil {
			return nil, fmt.Errorf("parse %s: request %d: %w", path, i+1, err)
		}
		requests = append(requests, r)
	}
	return requests, nil
}
