// Package marketdata reads market bundles produced by an external fetcher.
package marketdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Alias1177/CoinPredictor/internal/model"
)

// ErrNoBundles is returned when a directory holds no *.json bundles.
var ErrNoBundles = errors.New("no market bundles found")

// LoadFile decodes a single bundle.
func LoadFile(path string) (model.MarketInput, error) {
	var in model.MarketInput

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read bundle %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("decode bundle %s: %w", path, err)
	}

	if in.Coin.ID == "" {
		in.Coin.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return in, nil
}

// LoadPath loads a single bundle file, or every *.json file of a directory
// in name order.
func LoadPath(path string) ([]model.MarketInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		in, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		return []model.MarketInput{in}, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoBundles)
	}
	sort.Strings(files)

	inputs := make([]model.MarketInput, 0, len(files))
	for _, f := range files {
		in, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}

	return inputs, nil
}

// LoadPaths concatenates LoadPath over several paths.
func LoadPaths(paths []string) ([]model.MarketInput, error) {
	var inputs []model.MarketInput
	for _, p := range paths {
		batch, err := LoadPath(p)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, batch...)
	}
	if len(inputs) == 0 {
		return nil, ErrNoBundles
	}
	return inputs, nil
}
