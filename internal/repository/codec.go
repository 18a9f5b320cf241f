package repository

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/mvaldez/catalogo/internal/domain/product"
)

// Persisted blob shape: an array of objects with fields
// {id, name, description, price, category, image, views}. There is no
// schema version field; structural changes to Product break old blobs.

func encodeProducts(products []product.Product) []byte {
	var e jx.Encoder
	e.ArrStart()
	for _, p := range products {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(p.ID)
		e.FieldStart("name")
		e.Str(p.Name)
		e.FieldStart("description")
		e.Str(p.Description)
		e.FieldStart("price")
		e.RawStr(p.Price.String())
		e.FieldStart("category")
		e.Str(p.Category.String())
		e.FieldStart("image")
		e.Str(p.Image)
		e.FieldStart("views")
		e.Int(p.Views)
		e.ObjEnd()
	}
	e.ArrEnd()
	return e.Bytes()
}

func decodeProducts(data []byte) ([]product.Product, error) {
	d := jx.DecodeBytes(data)

	var products []product.Product
	err := d.Arr(func(d *jx.Decoder) error {
		p, err := decodeProduct(d)
		if err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func decodeProduct(d *jx.Decoder) (product.Product, error) {
	var p product.Product
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			v, err := d.Str()
			if err != nil {
				return err
			}
			p.ID = v
			return nil
		case "name":
			v, err := d.Str()
			if err != nil {
				return err
			}
			p.Name = v
			return nil
		case "description":
			v, err := d.Str()
			if err != nil {
				return err
			}
			p.Description = v
			return nil
		case "price":
			n, err := d.Num()
			if err != nil {
				return err
			}
			price, err := decimal.NewFromString(strings.Trim(string(n), `"`))
			if err != nil {
				return errors.Wrap(err, "price")
			}
			p.Price = price
			return nil
		case "category":
			v, err := d.Str()
			if err != nil {
				return err
			}
			c, err := product.ParseCategory(v)
			if err != nil {
				return err
			}
			p.Category = c
			return nil
		case "image":
			v, err := d.Str()
			if err != nil {
				return err
			}
			p.Image = v
			return nil
		case "views":
			v, err := d.Int()
			if err != nil {
				return err
			}
			p.Views = v
			return nil
		default:
			return d.Skip()
		}
	})
	return p, err
}
