package domain

import (
	"context"
	"strings"
	"time"
)

// Visitor is a person registered into one or more activity turns.
// swagger:model Visitor
type Visitor struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DNI           string    `json:"dni"`
	Age           int       `json:"age"`
	ClothingSize  *string   `json:"clothing_size"`
	TermsAccepted bool      `json:"terms_accepted"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewVisitor returns a new Visitor. ID is set by the caller before it is stored.
func NewVisitor(name, dni string, age int, clothingSize *string, termsAccepted bool, createdAt time.Time) *Visitor {
	return &Visitor{
		Name:          name,
		DNI:           dni,
		Age:           age,
		ClothingSize:  clothingSize,
		TermsAccepted: termsAccepted,
		CreatedAt:     createdAt,
	}
}

// Validate returns every violated rule in check order; empty means valid.
func (v *Visitor) Validate() []string {
	var errs []string
	if strings.TrimSpace(v.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(v.DNI) == "" {
		errs = append(errs, "DNI is required")
	}
	if v.Age <= 0 {
		errs = append(errs, "age must be a positive number")
	}
	return errs
}

// ValidateDNI checks the national id format. It is applied on admission, on top
// of Visitor.Validate.
func ValidateDNI(dni string) []string {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return nil
	}
	for _, r := range dni {
		if r < '0' || r > '9' {
			return []string{"DNI must contain only numbers"}
		}
	}
	return nil
}

// VisitorRepository defines storage operations for visitors.
type VisitorRepository interface {
	Create(ctx context.Context, visitor *Visitor) error
	List(ctx context.Context) ([]*Visitor, error)
}
