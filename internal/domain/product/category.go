package product

import "github.com/go-faster/errors"

// Category is the closed product classification. There are no dynamic
// categories; anything outside this set fails to parse.
type Category int

const (
	CategoryTechnology Category = iota
	CategoryFashion
	CategoryHome
	CategorySports
	CategoryOther
)

// ErrUnknownCategory is returned when parsing a string that is not a member
// of the enumeration.
var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = [...]string{
	CategoryTechnology: "Technology",
	CategoryFashion:    "Fashion",
	CategoryHome:       "Home",
	CategorySports:     "Sports",
	CategoryOther:      "Other",
}

// Categories returns all members in declaration order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryFashion,
		CategoryHome,
		CategorySports,
		CategoryOther,
	}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Other"
	}
	return categoryNames[c]
}

// ParseCategory maps the persisted enum string back to a Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return CategoryOther, errors.Wrap(ErrUnknownCategory, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
