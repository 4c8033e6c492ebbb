package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultProducts is the demo catalog, seeded on first boot.
var DefaultProducts = []Product{
	{Name: "iPhone 15 Pro", Description: "Latest iPhone", Price: 999.00, Category: "iPhone",
		Image: "https://images.unsplash.com/photo-1509395176047-4a66953fd231?auto=format&fit=crop&w=600&q=80"},
	{Name: "iPad Pro", Description: "Powerful iPad", Price: 799.00, Category: "iPad",
		Image: "https://images.unsplash.com/photo-1515378791036-0648a3ef77b2?auto=format&fit=crop&w=600&q=80"},
	{Name: "MacBook Air", Description: "Lightweight laptop", Price: 1199.00, Category: "Mac",
		Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=600&q=80"},
	{Name: "Apple Watch", Description: "Smart watch", Price: 399.00, Category: "Watch",
		Image: "https://images.unsplash.com/photo-1516574187841-cb9cc2ca948b?auto=format&fit=crop&w=600&q=80"},
	{Name: "AirPods Pro", Description: "Wireless earbuds", Price: 249.00, Category: "AirPods",
		Image: "https://images.unsplash.com/photo-1511367461989-f85a21fda167?auto=format&fit=crop&w=600&q=80"},
	{Name: "iPhone 15", Description: "Affordable iPhone", Price: 799.00, Category: "iPhone",
		Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&w=600&q=80"},
	{Name: "iPad Air", Description: "Lightweight iPad", Price: 599.00, Category: "iPad",
		Image: "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?auto=format&fit=crop&w=600&q=80"},
	{Name: "MacBook Pro", Description: "High performance laptop", Price: 1999.00, Category: "Mac",
		Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=600&q=80"},
	{Name: "Apple Watch SE", Description: "Affordable smart watch", Price: 279.00, Category: "Watch",
		Image: "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?auto=format&fit=crop&w=600&q=80"},
	{Name: "AirPods Max", Description: "Premium over-ear headphones", Price: 549.00, Category: "AirPods",
		Image: "https://images.unsplash.com/photo-1517841905240-472988babdf9?auto=format&fit=crop&w=600&q=80"},
}

// Seed inserts the default catalog unless products already exist, so a
// restart never duplicates or resets live data.
func Seed(ctx context.Context, repo Repository, logger *slog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if n > 0 {
		logger.Info("catalog already seeded", "products", n)
		return nil
	}

	if err := repo.Insert(ctx, DefaultProducts); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info("products seeded", "count", len(DefaultProducts))
	return nil
}
