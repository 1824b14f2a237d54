package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// LoadYAML loads a rig from a YAML reader, applies defaults and validates it.
func LoadYAML(r io.Reader) (*Rig, error) {
	var rig Rig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rig); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return finish(&rig)
}

// LoadJSON loads a rig from a JSON reader.
func LoadJSON(r io.Reader) (*Rig, error) {
	var rig Rig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rig); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return finish(&rig)
}

// LoadFile picks the decoder from the file extension; anything but .json is YAML.
func LoadFile(path string) (*Rig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

func finish(rig *Rig) (*Rig, error) {
	rig.ApplyDefaults()
	if err := rig.Validate(); err != nil {
		return nil, err
	}
	return rig, nil
}

// Fingerprint hashes the canonical YAML encoding of the rig. Servo IDs are
// left out since ApplyDefaults may generate them.
func (r *Rig) Fingerprint() (uint64, error) {
	canonical := *r
	canonical.Servos = make([]Servo, len(r.Servos))
	for i, s := range r.Servos {
		s.ID = ""
		canonical.Servos[i] = s
	}

	data, err := yaml.Marshal(&canonical)
	if err != nil {
		return 0, fmt.Errorf("encode rig: %w", err)
	}
	return xxhash.Sum64(data), nil
}
