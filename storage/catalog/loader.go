// Package catalogstore loads the static course catalog. The catalog ships
// as a JSON export; deployments may precompile it to gob with the admin CLI
// for faster startup. The shape is consumed as-is, no wire validation.
package catalogstore

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/hcmut-hub/tkb/core/catalog"
)

// Load reads a catalog file, dispatching on extension: ".gob" for a
// precompiled catalog, anything else is parsed as JSON.
func Load(path string) (catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %s", path)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	var cat catalog.Catalog
	if strings.EqualFold(filepath.Ext(path), ".gob") {
		if err := gob.NewDecoder(f).Decode(&cat); err != nil {
			return nil, errors.Wrapf(err, "decoding gob catalog %s", path)
		}
		return cat, nil
	}
	if err := json.NewDecoder(f).Decode(&cat); err != nil {
		return nil, errors.Wrapf(err, "decoding json catalog %s", path)
	}
	return cat, nil
}

// WriteGob precompiles a catalog to gob at `path`.
func WriteGob(path string, cat catalog.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := gob.NewEncoder(f).Encode(cat); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encoding gob catalog %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
