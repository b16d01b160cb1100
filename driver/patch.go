package driver

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Node is one block instance in a patch.
type Node struct {
	ID    string `json:"id"`
	Block string `json:"block"`
}

// Edge connects an output port of one node to an input port of
// another.
type Edge struct {
	From     string `json:"from"`
	FromPort string `json:"fromPort"`
	To       string `json:"to"`
	ToPort   string `json:"toPort"`
}

// Patch is an already-built graph topology. The editor and persistence
// layer that produce it are out of scope; this JSON form exists for
// the CLI and tests.
type Patch struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// LoadPatch reads a patch description from disk.
func LoadPatch(path string) (*Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read patch %s", path)
	}

	var patch Patch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, errors.Wrapf(err, "could not decode patch %s", path)
	}

	return &patch, nil
}
