package domain

import (
	"fmt"
)

type Group string

const (
	GroupBase  Group = "base"
	GroupExtra Group = "extra"
)

type MenuOption struct {
	ID            string `json:"id"`
	DisplayName   string `json:"displayName"`
	Icon          string `json:"icon"`
	Description   string `json:"description,omitempty"`
	TodaySpecific string `json:"todaySpecific,omitempty"`
}

// Catalog is the menu of the day. It is built once and never changed.
type Catalog struct {
	Options []MenuOption `json:"options"`
	Extras  []MenuOption `json:"extras"`

	options map[string]int
	extras  map[string]int
}

func NewCatalog(options []MenuOption, extras []MenuOption) (*Catalog, error) {
	c := Catalog{
		Options: make([]MenuOption, 0, len(options)),
		Extras:  make([]MenuOption, 0, len(extras)),
		options: make(map[string]int, len(options)),
		extras:  make(map[string]int, len(extras)),
	}

	for _, o := range options {
		if err := validateOption(o); err != nil {
			return nil, err
		}
		if _, ok := c.options[o.ID]; ok {
			return nil, fmt.Errorf("%w: duplicated option %q", ErrCatalogInvalid, o.ID)
		}
		c.options[o.ID] = len(c.Options)
		c.Options = append(c.Options, o)
	}

	for _, e := range extras {
		if err := validateOption(e); err != nil {
			return nil, err
		}
		if _, ok := c.extras[e.ID]; ok {
			return nil, fmt.Errorf("%w: duplicated extra %q", ErrCatalogInvalid, e.ID)
		}
		e.TodaySpecific = ""
		c.extras[e.ID] = len(c.Extras)
		c.Extras = append(c.Extras, e)
	}

	return &c, nil
}

func validateOption(o MenuOption) error {
	switch {
	case o.ID == "":
		return fmt.Errorf("%w: entry without id", ErrCatalogInvalid)
	case o.DisplayName == "":
		return fmt.Errorf("%w: %q has no display name", ErrCatalogInvalid, o.ID)
	case o.Icon == "":
		return fmt.Errorf("%w: %q has no icon", ErrCatalogInvalid, o.ID)
	}
	return nil
}

func (c *Catalog) Option(id string) (MenuOption, bool) {
	i, ok := c.options[id]
	if !ok {
		return MenuOption{}, false
	}
	return c.Options[i], true
}

func (c *Catalog) Extra(id string) (MenuOption, bool) {
	i, ok := c.extras[id]
	if !ok {
		return MenuOption{}, false
	}
	return c.Extras[i], true
}

func (c *Catalog) HasOption(id string) bool {
	_, ok := c.options[id]
	return ok
}

func (c *Catalog) HasExtra(id string) bool {
	_, ok := c.extras[id]
	return ok
}
