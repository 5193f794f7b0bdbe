package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product type discriminator. Vaccines carry an age range; bundles and
// packages carry a list of included vaccine ids and the whole-program
// payment flag. Validation switches exhaustively on the type so a document
// can never mix variant fields.
const (
	ProductTypeVaccine = "vaccine"
	ProductTypeBundle  = "bundle"
	ProductTypePackage = "package"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type         string             `bson:"type" json:"type"`
	Name         string             `bson:"name" json:"name"`
	CommonName   string             `bson:"commonName,omitempty" json:"commonName,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	OldPrice     float64            `bson:"oldPrice,omitempty" json:"oldPrice,omitempty"`
	Manufacturer string             `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"` // bare filename in the images bucket

	// Vaccine only.
	MinAgeMonths *int `bson:"minAgeMonths,omitempty" json:"minAgeMonths,omitempty"`
	MaxAgeMonths *int `bson:"maxAgeMonths,omitempty" json:"maxAgeMonths,omitempty"`

	// Bundle and package only.
	IncludedProductIDs []primitive.ObjectID `bson:"includedProductIds,omitempty" json:"includedProductIds,omitempty"`
	CanPayWholeProgram bool                 `bson:"canPayWholeProgram,omitempty" json:"canPayWholeProgram,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

var (
	ErrProductName    = errors.New("product name is required")
	ErrProductPrice   = errors.New("product price must not be negative")
	ErrVaccineAge     = errors.New("vaccine age range is required and minAgeMonths must not exceed maxAgeMonths")
	ErrVaccineFields  = errors.New("vaccine must not carry included products or the whole-program flag")
	ErrCompositeEmpty = errors.New("bundle/package must include at least one product")
	ErrCompositeAge   = errors.New("bundle/package must not carry an age range")
)

// Validate enforces the variant invariants for the product's type.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrProductName
	}
	if p.Price < 0 || p.OldPrice < 0 {
		return ErrProductPrice
	}

	switch p.Type {
	case ProductTypeVaccine:
		if p.MinAgeMonths == nil || p.MaxAgeMonths == nil || *p.MinAgeMonths > *p.MaxAgeMonths {
			return ErrVaccineAge
		}
		if len(p.IncludedProductIDs) > 0 || p.CanPayWholeProgram {
			return ErrVaccineFields
		}
	case ProductTypeBundle, ProductTypePackage:
		if len(p.IncludedProductIDs) == 0 {
			return ErrCompositeEmpty
		}
		if p.MinAgeMonths != nil || p.MaxAgeMonths != nil {
			return ErrCompositeAge
		}
	default:
		return fmt.Errorf("unknown product type %q", p.Type)
	}
	return nil
}

// IsComposite reports whether the product is a bundle or a package.
func (p *Product) IsComposite() bool {
	return p.Type == ProductTypeBundle || p.Type == ProductTypePackage
}
