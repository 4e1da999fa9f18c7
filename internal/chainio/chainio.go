// Package chainio persists named transform chains as JSON or YAML files.
// A chain is an ordered list of rotation+translation steps (a calibration
// fixture, a kinematic path) resolved into a single pose by composition.
package chainio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/comalice/quatx"
	"github.com/comalice/quatx/pose"
)

// Step is one rigid transform in a chain. Rotation is (w, x, y, z); it is
// normalized during Resolve and must not have zero norm.
type Step struct {
	Name        string     `json:"name" yaml:"name"`
	Rotation    [4]float64 `json:"rotation" yaml:"rotation"`
	Translation [3]float64 `json:"translation" yaml:"translation"`
}

// Chain is a named ordered sequence of steps, applied first-to-last.
type Chain struct {
	ID    string `json:"chainID" yaml:"chainID"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Validate rejects chains without an ID and steps whose rotation has zero
// norm, which cannot be resolved into a pose.
func (c Chain) Validate() error {
	if c.ID == "" {
		return errors.New("chain has no ID")
	}
	for i, s := range c.Steps {
		r := quatx.New(s.Rotation[0], s.Rotation[1], s.Rotation[2], s.Rotation[3])
		if r.Norm() == 0 {
			return errors.Wrapf(quatx.ErrZeroNorm, "step %d (%q) rotation", i, s.Name)
		}
	}
	return nil
}

// Resolve composes all steps into a single pose. Step order is application
// order: the first step is applied first.
func (c Chain) Resolve() (pose.Pose, error) {
	out := pose.Identity()
	for i, s := range c.Steps {
		r := quatx.New(s.Rotation[0], s.Rotation[1], s.Rotation[2], s.Rotation[3])
		t := pose.Vec3{X: s.Translation[0], Y: s.Translation[1], Z: s.Translation[2]}
		p, err := pose.FromRotationTranslation(r, t)
		if err != nil {
			return pose.Pose{}, errors.Wrapf(err, "step %d (%q)", i, s.Name)
		}
		out = p.Compose(out)
	}
	return out, nil
}

// Store saves and loads chains by ID.
type Store interface {
	Save(ctx context.Context, chain Chain) error
	Load(ctx context.Context, chainID string) (Chain, error)
}

// JSONStore is a file-based store using JSON serialization.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a JSONStore, ensuring the directory exists.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONStore{dir: dir}, nil
}

func (s *JSONStore) Save(ctx context.Context, chain Chain) error {
	if err := chain.Validate(); err != nil {
		return errors.Wrap(err, "chain validation before save")
	}
	data, err := json.MarshalIndent(chain, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(s.dir, chain.ID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (s *JSONStore) Load(ctx context.Context, chainID string) (Chain, error) {
	fn := filepath.Join(s.dir, chainID+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Chain{}, fmt.Errorf("chain %q: %w", chainID, os.ErrNotExist)
		}
		return Chain{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var chain Chain
	if err := json.Unmarshal(data, &chain); err != nil {
		return Chain{}, fmt.Errorf("json unmarshal: %w", err)
	}
	chain.ID = chainID // Ensure ID
	if err := chain.Validate(); err != nil {
		return Chain{}, errors.Wrap(err, "chain validation after load")
	}
	return chain, nil
}

// YAMLStore is a file-based store using YAML serialization.
type YAMLStore struct {
	dir string
}

// NewYAMLStore creates a YAMLStore, ensuring the directory exists.
func NewYAMLStore(dir string) (*YAMLStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLStore{dir: dir}, nil
}

func (s *YAMLStore) Save(ctx context.Context, chain Chain) error {
	if err := chain.Validate(); err != nil {
		return errors.Wrap(err, "chain validation before save")
	}
	data, err := yaml.Marshal(chain)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(s.dir, chain.ID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (s *YAMLStore) Load(ctx context.Context, chainID string) (Chain, error) {
	fn := filepath.Join(s.dir, chainID+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Chain{}, fmt.Errorf("chain %q: %w", chainID, os.ErrNotExist)
		}
		return Chain{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var chain Chain
	if err := yaml.Unmarshal(data, &chain); err != nil {
		return Chain{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	chain.ID = chainID // Ensure ID
	if err := chain.Validate(); err != nil {
		return Chain{}, errors.Wrap(err, "chain validation after load")
	}
	return chain, nil
}

// LoadFile reads a single chain from an explicit path, dispatching on the
// file extension (.json, .yaml, .yml).
func LoadFile(path string) (Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Chain{}, fmt.Errorf("read %s: %w", path, err)
	}

	var chain Chain
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, &chain)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &chain)
	default:
		return Chain{}, fmt.Errorf("unsupported chain format %q", filepath.Ext(path))
	}
	if err != nil {
		return Chain{}, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if err := chain.Validate(); err != nil {
		return Chain{}, errors.Wrap(err, "chain validation after load")
	}
	return chain, nil
}
