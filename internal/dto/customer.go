// Package dto contains the transfer objects exposed across the service
// boundary and the explicit mapping between them and the domain models.
// Mapping is pure field-to-field copying; merge semantics for updates are
// spelled out per type so they stay testable.
package dto

import "crmapi/internal/model"

// Customer is the transfer shape of a customer.
type Customer struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
}

// CustomerCreate carries the fields accepted when creating a customer.
type CustomerCreate struct {
	Name string `json:"name" validate:"required,max=250,namechars"`
}

// CustomerUpdate carries the fields accepted when updating a customer.
type CustomerUpdate struct {
	Name string `json:"name" validate:"required,max=250,namechars"`
}

// CustomerFromModel maps a domain customer to its transfer shape.
func CustomerFromModel(m *model.Customer) Customer {
	return Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
	}
}

// CustomersFromModel maps a slice of domain customers.
func CustomersFromModel(ms []model.Customer) []Customer {
	out := make([]Customer, 0, len(ms))
	for i := range ms {
		out = append(out, CustomerFromModel(&ms[i]))
	}
	return out
}

// ToModel maps the create input to a new domain customer. The identity is
// left zero; the repository assigns it on insert.
func (d CustomerCreate) ToModel() model.Customer {
	return model.Customer{Name: d.Name}
}

// MergeInto copies the updatable fields onto an existing domain customer.
// The identity is never touched.
func (d CustomerUpdate) MergeInto(m *model.Customer) {
	m.Name = d.Name
}
