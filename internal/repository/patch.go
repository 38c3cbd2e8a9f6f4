package repository

import "github.com/mmeshcher/workshop-system/internal/model"

// CustomerPatch describes a partial customer update. Nil fields are left
// unchanged in the stored record.
type CustomerPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

func (p CustomerPatch) apply(c *model.Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
}

// ProductPatch describes a partial product update.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *float64
	InStock       *bool
	Category      *string
	ImagePath     *string
	FrontPhotoURL *string
	BackPhotoURL  *string
}

func (p ProductPatch) apply(product *model.Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.InStock != nil {
		product.InStock = *p.InStock
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.ImagePath != nil {
		product.ImagePath = *p.ImagePath
	}
	if p.FrontPhotoURL != nil {
		product.FrontPhotoURL = *p.FrontPhotoURL
	}
	if p.BackPhotoURL != nil {
		product.BackPhotoURL = *p.BackPhotoURL
	}
}

// OrderPatch describes a partial order update.
type OrderPatch struct {
	CustomerID           *string
	ProductID            *string
	ProductName          *string
	Description          *string
	Status               *model.OrderStatus
	DateCompleted        *string
	ImagePath            *string
	ExpectedDeliveryDate *string
	Notes                *string
}

func (p OrderPatch) apply(o *model.Order) {
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.ProductID != nil {
		o.ProductID = *p.ProductID
	}
	if p.ProductName != nil {
		o.ProductName = *p.ProductName
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.DateCompleted != nil {
		o.DateCompleted = *p.DateCompleted
	}
	if p.ImagePath != nil {
		o.ImagePath = *p.ImagePath
	}
	if p.ExpectedDeliveryDate != nil {
		o.ExpectedDeliveryDate = *p.ExpectedDeliveryDate
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
}
