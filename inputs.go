package tindahan

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// validate holds the shared struct validator for the boundary inputs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs the struct validator and maps its failures into the engine's
// ValidationError taxonomy.
func check(v any) error {
	if err := validate.Struct(v); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			f := errs[0]
			return Validationf("invalid %s: failed %q check", f.Field(), f.Tag())
		}
		return Validationf("invalid input: %v", err)
	}
	return nil
}

// AddItemInput is the raw add-item form as a front end submits it.
type AddItemInput struct {
	Name   string  `validate:"required"`
	Price  float64 `validate:"gte=0"`
	Qty    int     `validate:"gt=0"`
	Date   string  `validate:"required"`
	Source string
}

// Apply validates the form and upserts the item into the book.
func (in AddItemInput) Apply(b *Book) (*Item, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return nil, Validationf("price must be a finite number")
	}
	on, err := ParseDate(in.Date)
	if err != nil {
		return nil, Validationf("invalid date: %v", err)
	}
	source := in.Source
	if source == "" {
		source = SourceAddForm
	}
	return b.UpsertItem(in.Name, M(in.Price, b.Currency), in.Qty, on, source)
}

// RecordSaleInput is the raw sale form as a front end submits it.
type RecordSaleInput struct {
	Date    string  `validate:"required"`
	Buyer   string  `validate:"required"`
	Address string  `validate:"required"`
	Contact string  `validate:"required"`
	Item    string  `validate:"required"`
	Price   float64 `validate:"gte=0"`
	Qty     int     `validate:"gt=0"`
	// ManualProfitPerUnit overrides the automatic profit when set. It is a
	// per-unit amount, multiplied by Qty.
	ManualProfitPerUnit *float64
}

// Apply validates the form and records the sale into the book.
func (in RecordSaleInput) Apply(b *Book) (*Sale, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return nil, Validationf("price must be a finite number")
	}
	on, err := ParseDate(in.Date)
	if err != nil {
		return nil, Validationf("invalid date: %v", err)
	}
	var manual *Money
	if in.ManualProfitPerUnit != nil {
		m := M(*in.ManualProfitPerUnit, b.Currency)
		manual = &m
	}
	return b.RecordSale(on, in.Buyer, in.Address, in.Contact, in.Item, M(in.Price, b.Currency), in.Qty, manual)
}
