package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-storefront/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads catalog products from PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog. Caller manages DB lifecycle
// and schema (see platform/migrations).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord maps a catalog product to the products table.
type productRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	Image     string          `gorm:"column:image"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.toDomain())
	}
	return result, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return domain.Product{}, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, ports.ErrNotFound
		}
		return domain.Product{}, err
	}
	return record.toDomain(), nil
}

// Seed upserts the given products. Used by the catalog-seed command; the
// storefront itself only reads.
func (r *Repository) Seed(ctx context.Context, products []domain.Product) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}
	records := make([]productRecord, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		records = append(records, toRecord(p))
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "image", "updated_at"}),
		}).
		Create(&records).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toRecord(p domain.Product) productRecord {
	return productRecord{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
		Image: r.Image,
	}
}
