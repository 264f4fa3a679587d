package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase/interfaces"

	"gopkg.in/yaml.v2"
)

//go:embed delivery_sites.yaml
var defaultCatalog []byte

type catalogFile struct {
	DeliverySites []entities.DeliveryLocation `yaml:"delivery_sites"`
}

// YAMLCatalog serves the predefined delivery sites. It is loaded once at
// startup and read-only afterwards.
type YAMLCatalog struct {
	sites []entities.DeliveryLocation
}

var _ interfaces.IDeliverySiteCatalog = (*YAMLCatalog)(nil)

// Load parses the catalog at path, or the built-in one when path is empty.
func Load(path string) (*YAMLCatalog, error) {
	data := defaultCatalog
	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
	}
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logger.Infof(context.Background(), "[catalog][infra] loaded delivery_sites=%d custom=%t", len(c.sites), path != "")
	return c, nil
}

func Parse(data []byte) (*YAMLCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, s := range f.DeliverySites {
		if strings.TrimSpace(s.Site) == "" {
			return nil, fmt.Errorf("parse catalog: delivery site %d has no sede", i+1)
		}
	}
	return &YAMLCatalog{sites: f.DeliverySites}, nil
}

// DeliverySites returns a copy so callers cannot change the catalog.
func (c *YAMLCatalog) DeliverySites(_ context.Context) ([]entities.DeliveryLocation, error) {
	out := make([]entities.DeliveryLocation, len(c.sites))
	copy(out, c.sites)
	return out, nil
}
