package models

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intp(v int) *int { return &v }

func TestProductValidate(t *testing.T) {
	included := []primitive.ObjectID{primitive.NewObjectID()}

	tests := []struct {
		name    string
		product Product
		wantErr error
	}{
		{
			name:    "valid vaccine",
			product: Product{Type: ProductTypeVaccine, Name: "MMR", Price: 45, MinAgeMonths: intp(12), MaxAgeMonths: intp(72)},
		},
		{
			name:    "valid bundle",
			product: Product{Type: ProductTypeBundle, Name: "Infant bundle", Price: 300, IncludedProductIDs: included, CanPayWholeProgram: true},
		},
		{
			name:    "valid package",
			product: Product{Type: ProductTypePackage, Name: "School package", Price: 120, IncludedProductIDs: included},
		},
		{
			name:    "missing name",
			product: Product{Type: ProductTypeVaccine, Price: 45, MinAgeMonths: intp(0), MaxAgeMonths: intp(6)},
			wantErr: ErrProductName,
		},
		{
			name:    "negative price",
			product: Product{Type: ProductTypeVaccine, Name: "MMR", Price: -1, MinAgeMonths: intp(0), MaxAgeMonths: intp(6)},
			wantErr: ErrProductPrice,
		},
		{
			name:    "vaccine without age range",
			product: Product{Type: ProductTypeVaccine, Name: "MMR", Price: 45},
			wantErr: ErrVaccineAge,
		},
		{
			name:    "vaccine with inverted age range",
			product: Product{Type: ProductTypeVaccine, Name: "MMR", Price: 45, MinAgeMonths: intp(24), MaxAgeMonths: intp(12)},
			wantErr: ErrVaccineAge,
		},
		{
			name:    "vaccine carrying bundle fields",
			product: Product{Type: ProductTypeVaccine, Name: "MMR", Price: 45, MinAgeMonths: intp(0), MaxAgeMonths: intp(6), IncludedProductIDs: included},
			wantErr: ErrVaccineFields,
		},
		{
			name:    "bundle without included products",
			product: Product{Type: ProductTypeBundle, Name: "Empty", Price: 10},
			wantErr: ErrCompositeEmpty,
		},
		{
			name:    "package carrying age range",
			product: Product{Type: ProductTypePackage, Name: "Mixed", Price: 10, IncludedProductIDs: included, MinAgeMonths: intp(0)},
			wantErr: ErrCompositeAge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProductValidateUnknownType(t *testing.T) {
	p := Product{Type: "subscription", Name: "X", Price: 1}
	if err := p.Validate(); err == nil {
		t.Fatal("Validate() accepted an unknown product type")
	}
}

func TestIsComposite(t *testing.T) {
	if (&Product{Type: ProductTypeVaccine}).IsComposite() {
		t.Error("vaccine reported as composite")
	}
	if !(&Product{Type: ProductTypeBundle}).IsComposite() {
		t.Error("bundle not reported as composite")
	}
	if !(&Product{Type: ProductTypePackage}).IsComposite() {
		t.Error("package not reported as composite")
	}
}
