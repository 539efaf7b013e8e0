package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-storefront/internal/domains/catalog/domain"
)

func TestNewRepositoryWith_RejectsDuplicates(t *testing.T) {
	_, err := NewRepositoryWith([]domain.Product{
		{ID: 1, Name: "A", Price: decimal.NewFromInt(1)},
		{ID: 1, Name: "B", Price: decimal.NewFromInt(2)},
	})
	require.Error(t, err)
}

func TestNewRepositoryWith_RejectsInvalid(t *testing.T) {
	_, err := NewRepositoryWith([]domain.Product{{ID: 1, Name: "", Price: decimal.NewFromInt(1)}})
	require.ErrorIs(t, err, domain.ErrEmptyName)
}
