// Command catalog-import loads a products JSON dump into the catalog
// database, upserting through the repository so existing records with the
// same id are replaced. Dumps may be gzip-compressed (.gz).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"

	"github.com/mvaldez/catalogo/internal/domain/product"
	"github.com/mvaldez/catalogo/internal/repository"
	"github.com/mvaldez/catalogo/internal/storage/bolt"
)

type productJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Views       int             `json:"views"`
}

func main() {
	var (
		dataPath     string
		productsFile string
	)

	flag.StringVar(&dataPath, "data-path", "catalogo.db", "path to the catalog database file")
	flag.StringVar(&productsFile, "products-file", "products.json", "path to products JSON file (.json or .json.gz)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, dataPath, productsFile); err != nil {
		slog.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("import completed successfully")
}

func run(ctx context.Context, dataPath, productsFile string) error {
	products, err := readProducts(productsFile)
	if err != nil {
		return err
	}
	slog.Info("read products file", slog.Int("count", len(products)))

	store, err := bolt.Open(dataPath)
	if err != nil {
		return errors.Wrap(err, "open catalog store")
	}
	defer store.Close()

	repo := repository.NewProductRepository(store)
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "product %q", p.ID)
		}
		if err := repo.Upsert(ctx, p); err != nil {
			return errors.Wrapf(err, "upsert %q", p.ID)
		}
	}

	return nil
}

func readProducts(path string) ([]product.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open products file")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip reader")
		}
		defer zr.Close()
		r = zr
	}

	var raw []productJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	products := make([]product.Product, 0, len(raw))
	for _, p := range raw {
		category, err := product.ParseCategory(p.Category)
		if err != nil {
			return nil, errors.Wrapf(err, "product %q", p.ID)
		}

		id := p.ID
		if id == "" {
			id = product.NewID()
		}
		image := p.Image
		if image == "" {
			image = product.DefaultImage
		}

		products = append(products, product.Product{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    category,
			Image:       image,
			Views:       p.Views,
		})
	}
	return products, nil
}
