package web

import (
	"net/http"
	"net/url"

	echo "github.com/labstack/echo/v4"

	"github.com/bhr/crm-console/internal/form"
	"github.com/bhr/crm-console/internal/model"
	"github.com/bhr/crm-console/internal/platform"
)

type customerListData struct {
	page
	Customers []model.Customer
}

type customerFormData struct {
	page
	Request model.CustomerRegistrationRequest
}

type customerEditData struct {
	page
	Customer *model.Customer
	Notes    []model.CustomerDetails
}

func (h *handlers) customerListPage(c echo.Context) error {
	return h.renderCustomerList(c, http.StatusOK, "")
}

func (h *handlers) renderCustomerList(c echo.Context, status int, errMsg string) error {
	data := customerListData{page: h.page("customer", "Ügyfelek")}
	data.Error = errMsg

	r := h.customers.List(c.Request().Context())
	if r.Ok() {
		data.Customers = r.Data
	} else {
		if r.Outcome == platform.ServerError {
			h.logServerError(c, "list customers", r.Err)
			status = http.StatusInternalServerError
		}
		if data.Error == "" {
			data.Error = r.UserMessage()
		}
	}
	return c.Render(status, "customers.html", data)
}

func (h *handlers) customerRegistrationPage(c echo.Context) error {
	return c.Render(http.StatusOK, "customer_registration.html",
		customerFormData{page: h.page("customer", "Ügyfél hozzáadása")})
}

func (h *handlers) registerCustomer(c echo.Context) error {
	data := customerFormData{page: h.page("customer", "Ügyfél hozzáadása")}

	params, _ := c.FormParams()
	var req model.CustomerRegistrationRequest
	if err := form.Decode(params, &req); err != nil {
		data.Error = "Érvénytelen űrlap: " + err.Error()
		return c.Render(http.StatusUnprocessableEntity, "customer_registration.html", data)
	}
	data.Request = req

	// name-or-nickname check happens before any network call
	if !req.HasRequiredName() {
		data.Error = msgNameRequired
		return c.Render(http.StatusUnprocessableEntity, "customer_registration.html", data)
	}

	r := h.customers.Register(c.Request().Context(), req)
	if r.Ok() {
		return c.Redirect(http.StatusFound, "/customer")
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "register customer", r.Err)
	}
	data.Error = r.UserMessage()
	return c.Render(statusFor(r), "customer_registration.html", data)
}

func (h *handlers) customerEditPage(c echo.Context) error {
	return h.renderCustomerEdit(c, c.Param("id"), http.StatusOK, "")
}

// renderCustomerEdit loads the customer and, only after that succeeded,
// the customer's notes.
func (h *handlers) renderCustomerEdit(c echo.Context, customerID string, status int, errMsg string) error {
	ctx := c.Request().Context()
	data := customerEditData{page: h.page("customer", "Ügyfél szerkesztése")}
	data.Error = errMsg

	cr := h.customers.Get(ctx, customerID)
	if !cr.Ok() {
		if cr.Outcome == platform.ServerError {
			h.logServerError(c, "get customer", cr.Err)
			status = http.StatusInternalServerError
		}
		if data.Error == "" {
			data.Error = cr.UserMessage()
		}
		return c.Render(status, "customer_edit.html", data)
	}
	data.Customer = &cr.Data

	dr := h.details.ListByCustomer(ctx, customerID)
	if dr.Ok() {
		data.Notes = dr.Data
	} else {
		if dr.Outcome == platform.ServerError {
			h.logServerError(c, "list customer details", dr.Err)
		}
		if data.Error == "" {
			data.Error = dr.UserMessage()
		}
	}
	return c.Render(status, "customer_edit.html", data)
}

func (h *handlers) updateCustomer(c echo.Context) error {
	customerID := c.Param("id")

	params, _ := c.FormParams()
	var req model.CustomerUpdateRequest
	if err := form.Decode(params, &req); err != nil {
		return h.renderCustomerEdit(c, customerID, http.StatusUnprocessableEntity, "Érvénytelen űrlap: "+err.Error())
	}
	req.CustomerID = customerID

	if !req.HasRequiredName() {
		return h.renderCustomerEdit(c, customerID, http.StatusUnprocessableEntity, msgNameRequired)
	}

	r := h.customers.Update(c.Request().Context(), req)
	switch r.Outcome {
	case platform.Success:
		return c.Redirect(http.StatusFound, "/customer")
	case platform.DomainError:
		return h.renderCustomerEdit(c, customerID, http.StatusUnprocessableEntity, r.UserMessage())
	default:
		h.logServerError(c, "update customer", r.Err)
		return h.renderCustomerEdit(c, customerID, http.StatusInternalServerError,
			"Az ügyfél frissítése sikertelen szerver hiba miatt.")
	}
}

func (h *handlers) deleteCustomer(c echo.Context) error {
	r := h.customers.Delete(c.Request().Context(), c.Param("id"))
	if r.Ok() {
		return c.Redirect(http.StatusFound, "/customer")
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "delete customer", r.Err)
	}
	return h.renderCustomerList(c, statusFor(r), r.UserMessage())
}

func customerHref(customerID string) string {
	if customerID == "" {
		return "/customer"
	}
	return "/customer/" + url.PathEscape(customerID)
}
