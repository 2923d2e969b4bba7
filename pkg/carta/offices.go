package carta

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed offices.toml
var officesTOML []byte

// CustomOffice is the registry entry with blank fields, used when the
// letter carries a manually entered address.
const CustomOffice = "PERSONALIZADA"

// Office is one office of the firm as it appears in the letter heading.
type Office struct {
	Address    string `toml:"direccion"`
	PostalCode string `toml:"cp"`
	City       string `toml:"ciudad"`
}

// Bindings returns the office fields as the variable bindings the template
// expects.
func (o Office) Bindings() Variables {
	return Variables{
		"Direccion_Oficina": o.Address,
		"CP":                o.PostalCode,
		"Ciudad_Oficina":    o.City,
	}
}

type officeRegistry struct {
	Offices map[string]Office `toml:"oficinas"`
}

var (
	officesOnce sync.Once
	offices     map[string]Office
	officesErr  error
)

func loadOffices() {
	officesOnce.Do(func() {
		var registry officeRegistry
		if err := toml.Unmarshal(officesTOML, &registry); err != nil {
			officesErr = fmt.Errorf("failed to parse office registry: %w", err)
			return
		}
		offices = registry.Offices
	})
}

// OfficeNames returns the names of all registered offices, sorted.
func OfficeNames() ([]string, error) {
	loadOffices()
	if officesErr != nil {
		return nil, officesErr
	}

	names := make([]string, 0, len(offices))
	for name := range offices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// OfficeData returns the office registered under the given name, falling
// back to the custom entry for unknown names.
func OfficeData(name string) (Office, error) {
	loadOffices()
	if officesErr != nil {
		return Office{}, officesErr
	}

	if office, ok := offices[name]; ok {
		return office, nil
	}
	return offices[CustomOffice], nil
}
