package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"pos/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// User is a plaintext staff login as written in the seed file.
type User struct {
	ID       int64          `yaml:"id"`
	Username string         `yaml:"username"`
	Password string         `yaml:"password"`
	Name     string         `yaml:"name"`
	Email    string         `yaml:"email"`
	Role     model.RoleName `yaml:"role"`
}

// Data is the factory dataset.
type Data struct {
	Users []User            `yaml:"users"`
	Menu  []model.MenuItem  `yaml:"menu"`
	Stock []model.StockItem `yaml:"stock"`
}

// Load reads the seed file at path, or the embedded defaults when path is empty.
func Load(path string) (*Data, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes seed YAML, rejecting unknown fields.
func Parse(raw []byte) (*Data, error) {
	var data Data
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	if err := validate(&data); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return &data, nil
}

func validate(d *Data) error {
	if len(d.Users) == 0 {
		return fmt.Errorf("at least one user is required")
	}
	usernames := map[string]bool{}
	for _, u := range d.Users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("user %d: username and password are required", u.ID)
		}
		if usernames[u.Username] {
			return fmt.Errorf("duplicate username %q", u.Username)
		}
		usernames[u.Username] = true
		if _, ok := model.LookupRole(u.Role); !ok {
			return fmt.Errorf("user %s: unknown role %q", u.Username, u.Role)
		}
	}

	ids := map[int64]bool{}
	for _, m := range d.Menu {
		if ids[m.ID] {
			return fmt.Errorf("duplicate menu id %d", m.ID)
		}
		ids[m.ID] = true
		if m.Price < 0 || m.Stock < 0 {
			return fmt.Errorf("menu item %d: price and stock must not be negative", m.ID)
		}
	}

	clear(ids)
	for _, s := range d.Stock {
		if ids[s.ID] {
			return fmt.Errorf("duplicate stock id %d", s.ID)
		}
		ids[s.ID] = true
		if s.Quantity < 0 || s.MinStock < 0 {
			return fmt.Errorf("stock item %d: quantities must not be negative", s.ID)
		}
	}
	return nil
}
