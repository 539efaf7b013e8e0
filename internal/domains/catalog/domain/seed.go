package domain

import "github.com/shopspring/decimal"

// DefaultProducts returns the storefront's built-in catalog in display order.
func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "Classic White Tee", Price: decimal.RequireFromString("25.00"), Image: "https://placehold.co/300x200/333/FFF?text=White+Tee"},
		{ID: 2, Name: "Denim Jacket", Price: decimal.RequireFromString("89.99"), Image: "https://placehold.co/300x200/444/FFF?text=Denim+Jacket"},
		{ID: 3, Name: "Summer Dress", Price: decimal.RequireFromString("45.00"), Image: "https://placehold.co/300x200/e84393/FFF?text=Summer+Dress"},
		{ID: 4, Name: "Cargo Shorts", Price: decimal.RequireFromString("35.50"), Image: "https://placehold.co/300x200/0984e3/FFF?text=Cargo+Shorts"},
		{ID: 5, Name: "Casual Hoodie", Price: decimal.RequireFromString("55.00"), Image: "https://placehold.co/300x200/636e72/FFF?text=Hoodie"},
		{ID: 6, Name: "Sneakers", Price: decimal.RequireFromString("75.00"), Image: "https://placehold.co/300x200/d63031/FFF?text=Sneakers"},
	}
}
