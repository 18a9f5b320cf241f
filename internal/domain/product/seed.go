package product

import "github.com/shopspring/decimal"

// Seed returns the built-in sample catalog used to populate an empty store
// on first access.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Auriculares Premium",
			Description: "Sonido de alta fidelidad con cancelación de ruido activa.",
			Price:       decimal.RequireFromString("150.00"),
			Category:    CategoryTechnology,
			Image:       "https://picsum.photos/400/400?random=1",
			Views:       120,
		},
		{
			ID:          "2",
			Name:        "Zapatillas Running",
			Description: "Diseño ergonómico para máximo rendimiento en pista.",
			Price:       decimal.RequireFromString("89.99"),
			Category:    CategorySports,
			Image:       "https://picsum.photos/400/400?random=2",
			Views:       85,
		},
		{
			ID:          "3",
			Name:        "Reloj Inteligente",
			Description: "Monitorea tu salud y notificaciones al instante.",
			Price:       decimal.RequireFromString("210.50"),
			Category:    CategoryTechnology,
			Image:       "https://picsum.photos/400/400?random=3",
			Views:       200,
		},
	}
}
