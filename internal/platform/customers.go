package platform

import (
	"context"

	"github.com/bhr/crm-console/internal/model"
)

// Customers exposes the customer resource of the platform API. Every call
// reaches the remote service; nothing is cached.
type Customers struct {
	api *Client
}

func NewCustomers(api *Client) *Customers {
	return &Customers{api: api}
}

func (s *Customers) Get(ctx context.Context, customerID string) Result[model.Customer] {
	res, err := s.api.Get(ctx, joinPath(customersBase, customerID))
	return Classify[model.Customer](res, err)
}

func (s *Customers) List(ctx context.Context) Result[[]model.Customer] {
	res, err := s.api.Get(ctx, customersBase)
	return Classify[[]model.Customer](res, err)
}

func (s *Customers) Register(ctx context.Context, req model.CustomerRegistrationRequest) Result[model.Customer] {
	res, err := s.api.Post(ctx, customersBase, req)
	return Classify[model.Customer](res, err)
}

func (s *Customers) Update(ctx context.Context, req model.CustomerUpdateRequest) Result[model.Customer] {
	res, err := s.api.Put(ctx, joinPath(customersBase, req.CustomerID), req)
	return Classify[model.Customer](res, err)
}

func (s *Customers) Delete(ctx context.Context, customerID string) Result[struct{}] {
	res, err := s.api.Delete(ctx, joinPath(customersBase, customerID))
	return Classify[struct{}](res, err)
}
