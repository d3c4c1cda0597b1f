package platform

import (
	"context"

	"github.com/bhr/crm-console/internal/model"
)

// CustomerDetails exposes the per-customer notes of the platform API.
// Listing and saving are scoped by customer; single notes are addressed
// under /customers/details/{id}.
type CustomerDetails struct {
	api *Client
}

func NewCustomerDetails(api *Client) *CustomerDetails {
	return &CustomerDetails{api: api}
}

func (s *CustomerDetails) Get(ctx context.Context, detailsID string) Result[model.CustomerDetails] {
	res, err := s.api.Get(ctx, joinPath(customersBase, "details", detailsID))
	return Classify[model.CustomerDetails](res, err)
}

func (s *CustomerDetails) ListByCustomer(ctx context.Context, customerID string) Result[[]model.CustomerDetails] {
	res, err := s.api.Get(ctx, joinPath(customersBase, customerID, "details"))
	return Classify[[]model.CustomerDetails](res, err)
}

func (s *CustomerDetails) Save(ctx context.Context, customerID string, req model.CustomerDetailsRequest) Result[model.CustomerDetails] {
	res, err := s.api.Post(ctx, joinPath(customersBase, customerID, "details"), req)
	return Classify[model.CustomerDetails](res, err)
}

func (s *CustomerDetails) Update(ctx context.Context, detailsID string, req model.CustomerDetailsRequest) Result[model.CustomerDetails] {
	res, err := s.api.Put(ctx, joinPath(customersBase, "details", detailsID), req)
	return Classify[model.CustomerDetails](res, err)
}

func (s *CustomerDetails) Delete(ctx context.Context, detailsID string) Result[struct{}] {
	res, err := s.api.Delete(ctx, joinPath(customersBase, "details", detailsID))
	return Classify[struct{}](res, err)
}
