package favorites

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Export writes the saved favorites to w as a YAML document.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	doc := struct {
		Favorites any `yaml:"favorites"`
	}{Favorites: s.Load(ctx)}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("favorites: export: %w", err)
	}
	return enc.Close()
}
