package hints

import (
	"dispatch-board-service/internal/ports"
	"errors"
	"math/rand"
	"slices"
	"strings"
)

// Canned route optimization suggestions. The suggestion is mocked: it is not
// derived from the route, vehicle or cargo of the assignment.
var DefaultCatalog = []string{
	"現在のルートより5分短縮可能なバイパス経路があります。",
	"午前中は渋滞が予想されるため、午後に出発を推奨します。",
	"別ルートを使うと信号待ちを減らせます。",
	"高速道路利用で燃費と時間効率が改善します。",
}

func validateCatalog(catalog []string) error {
	if len(catalog) == 0 {
		return errors.New("hint catalog must not be empty")
	}
	for _, h := range catalog {
		if strings.TrimSpace(h) == "" {
			return errors.New("hint catalog contains an empty entry")
		}
	}
	return nil
}

// Return a source drawing uniformly at random, with replacement, from catalog.
func NewRandomSource(catalog []string) (ports.HintSource, error) {
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}
	catalog = slices.Clone(catalog)

	return func() string {
		return catalog[rand.Intn(len(catalog))]
	}, nil
}
