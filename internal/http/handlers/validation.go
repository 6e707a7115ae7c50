package handlers

import "strings"

const minPasswordLength = 6

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "product_name", Description: "product_name is required"})
	}
	if p.Quantity == nil {
		errs = append(errs, ProductValidationError{Field: "quantity", Description: "quantity is required"})
	} else if *p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if p.Price == nil {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price is required"})
	} else if *p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price must be greater than zero"})
	}
	return errs
}

func validateCredentials(c CredentialsRequest) string {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return "username and password are required"
	}
	if len(c.Password) < minPasswordLength {
		return "password must be at least 6 characters"
	}
	return ""
}
