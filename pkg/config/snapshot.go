package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
)

// SaveSnapshot writes the discovered topology to path, as json for a .json
// extension and yaml otherwise
func SaveSnapshot(path string, snapshot *types.ClusterComponents) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create snapshot directory")
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(snapshot, "", "  ")
	} else {
		data, err = yaml.Marshal(snapshot)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal snapshot")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write snapshot file")
	}
	return nil
}

// LoadSnapshot reads a topology written by SaveSnapshot
func LoadSnapshot(path string) (*types.ClusterComponents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot file")
	}

	snapshot := &types.ClusterComponents{}
	if isJSON(path) {
		err = json.Unmarshal(data, snapshot)
	} else {
		err = yaml.Unmarshal(data, snapshot)
	}
	if err != nil {
		return nil, cerrors.Error{ErrorCode: cerrors.ErrorTypeGeneric, Target: path, Reason: fmt.Sprintf("failed to parse snapshot file, %v", err)}
	}
	return snapshot, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
