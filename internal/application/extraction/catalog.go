package extraction

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed examples.yaml
var catalogYAML []byte

// Categorías de despesa aceptadas. Cualquier otro token devuelto por el modelo se descarta.
var validCategories = []string{
	"INSUMOS_AGRICOLAS",
	"MANUTENCAO_OPERACAO",
	"RECURSOS_HUMANOS",
	"SERVICOS_OPERACIONAIS",
	"INFRAESTRUTURA_UTILIDADES",
	"ADMINISTRATIVAS",
	"SEGUROS_PROTECAO",
	"IMPOSTOS_TAXAS",
	"INVESTIMENTOS",
}

// ValidCategories devuelve una copia de la lista blanca de categorías.
func ValidCategories() []string {
	out := make([]string, len(validCategories))
	copy(out, validCategories)
	return out
}

// Example nota de ejemplo con su salida JSON esperada (few-shot).
type Example struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Output string `yaml:"output"`
}

// Category categoría de la taxonomía con la descripción que ve el modelo.
type Category struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

// Catalog ejemplos y taxonomía cargados desde examples.yaml.
type Catalog struct {
	Examples   []Example  `yaml:"examples"`
	Categories []Category `yaml:"categories"`
}

// LoadCatalog decodifica el catálogo embebido y verifica que la taxonomía coincida con la lista blanca.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("extraction: decodificar catálogo: %w", err)
	}
	if len(c.Examples) == 0 {
		return nil, fmt.Errorf("extraction: catálogo sin ejemplos")
	}
	if len(c.Categories) != len(validCategories) {
		return nil, fmt.Errorf("extraction: catálogo con %d categorías, se esperaban %d", len(c.Categories), len(validCategories))
	}
	for i, cat := range c.Categories {
		if cat.Code != validCategories[i] {
			return nil, fmt.Errorf("extraction: categoría %q fuera de la lista blanca (posición %d)", cat.Code, i)
		}
	}
	return &c, nil
}
