package service

import (
	"context"
	"sort"

	"github.com/mmeshcher/workshop-system/internal/model"
)

// Summary aggregates order counts for the dashboard view.
type Summary struct {
	TotalOrders     int           `json:"totalOrders"`
	PendingOrders   int           `json:"pendingOrders"`
	InProgress      int           `json:"inProgress"`
	CompletedOrders int           `json:"completedOrders"`
	TotalCustomers  int           `json:"totalCustomers"`
	TotalProducts   int           `json:"totalProducts"`
	RecentOrders    []model.Order `json:"recentOrders"`
}

const recentOrdersLimit = 5

// Summarize builds the dashboard summary: per-status counts and the most
// recently created orders.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	orders, err := s.repo.SelectOrders(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.repo.SelectCustomers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.SelectProducts(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
		TotalProducts:  len(products),
	}
	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusPending:
			summary.PendingOrders++
		case model.OrderStatusInProgress:
			summary.InProgress++
		case model.OrderStatusCompleted:
			summary.CompletedOrders++
		}
	}

	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateCreated > sorted[j].DateCreated
	})
	if len(sorted) > recentOrdersLimit {
		sorted = sorted[:recentOrdersLimit]
	}
	summary.RecentOrders = sorted

	return summary, nil
}

// ReportFilter narrows the report to a date range, status or customer.
// Zero values leave the corresponding dimension unfiltered. Dates compare
// against the order's creation date as RFC 3339 strings.
type ReportFilter struct {
	FromDate   string
	ToDate     string
	Status     model.OrderStatus
	CustomerID string
}

// Report holds the filtered order list and its per-status counts, newest
// first, for the printable report view.
type Report struct {
	Orders          []model.Order `json:"orders"`
	TotalOrders     int           `json:"totalOrders"`
	PendingOrders   int           `json:"pendingOrders"`
	InProgress      int           `json:"inProgress"`
	CompletedOrders int           `json:"completedOrders"`
}

// BuildReport applies the filter to the orders collection.
func (s *Service) BuildReport(ctx context.Context, filter ReportFilter) (*Report, error) {
	orders, err := s.repo.SelectOrders(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Orders: make([]model.Order, 0, len(orders))}
	for _, o := range orders {
		if filter.FromDate != "" && o.DateCreated < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && o.DateCreated > filter.ToDate {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		report.Orders = append(report.Orders, o)
	}

	sort.SliceStable(report.Orders, func(i, j int) bool {
		return report.Orders[i].DateCreated > report.Orders[j].DateCreated
	})

	report.TotalOrders = len(report.Orders)
	for _, o := range report.Orders {
		switch o.Status {
		case model.OrderStatusPending:
			report.PendingOrders++
		case model.OrderStatusInProgress:
			report.InProgress++
		case model.OrderStatusCompleted:
			report.CompletedOrders++
		}
	}

	return report, nil
}

// DatabaseStatus describes the storage backend for the diagnostic view.
type DatabaseStatus struct {
	Connected bool `json:"connected"`
	Customers int  `json:"customers"`
	Products  int  `json:"products"`
	Orders    int  `json:"orders"`
}

// Status probes the storage backend and reports collection sizes.
func (s *Service) Status(ctx context.Context) *DatabaseStatus {
	status := &DatabaseStatus{
		Connected: s.repo.TestConnection(ctx),
	}
	if customers, err := s.repo.SelectCustomers(ctx); err == nil {
		status.Customers = len(customers)
	}
	if products, err := s.repo.SelectProducts(ctx); err == nil {
		status.Products = len(products)
	}
	if orders, err := s.repo.SelectOrders(ctx); err == nil {
		status.Orders = len(orders)
	}
	return status
}
