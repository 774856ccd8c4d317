package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
)

//go:embed menu.json
var embeddedMenu []byte

type menuFile struct {
	Options []domain.MenuOption `json:"options"`
	Extras  []domain.MenuOption `json:"extras"`
}

// Source loads the menu from the operator file, or the embedded one when path is empty.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Load() (*domain.Catalog, error) {
	data := embeddedMenu
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogMissing, err)
		}
		data = b
	}

	return Parse(data)
}

func Parse(data []byte) (*domain.Catalog, error) {
	var menu menuFile

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&menu); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogInvalid, err)
	}
	if len(menu.Options) == 0 {
		return nil, fmt.Errorf("%w: no options", domain.ErrCatalogMissing)
	}

	return domain.NewCatalog(menu.Options, menu.Extras)
}
