package web

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v4"

	"github.com/bhr/crm-console/internal/model"
	"github.com/bhr/crm-console/internal/platform"
)

func (h *handlers) saveNote(c echo.Context) error {
	customerID := c.Param("id")
	req := model.CustomerDetailsRequest{Note: strings.TrimSpace(c.FormValue("note"))}

	r := h.details.Save(c.Request().Context(), customerID, req)
	if r.Ok() {
		return c.Redirect(http.StatusFound, customerHref(customerID))
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "save customer details", r.Err)
	}
	return h.renderCustomerEdit(c, customerID, statusFor(r), r.UserMessage())
}

func (h *handlers) updateNote(c echo.Context) error {
	detailsID := c.Param("detailsId")
	customerID := c.FormValue("customerId")
	req := model.CustomerDetailsRequest{Note: strings.TrimSpace(c.FormValue("note"))}

	r := h.details.Update(c.Request().Context(), detailsID, req)
	if r.Ok() {
		return c.Redirect(http.StatusFound, customerHref(customerID))
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "update customer details", r.Err)
	}
	if customerID == "" {
		return h.renderCustomerList(c, statusFor(r), r.UserMessage())
	}
	return h.renderCustomerEdit(c, customerID, statusFor(r), r.UserMessage())
}

func (h *handlers) deleteNote(c echo.Context) error {
	detailsID := c.Param("detailsId")
	customerID := c.FormValue("customerId")

	r := h.details.Delete(c.Request().Context(), detailsID)
	if r.Ok() {
		return c.Redirect(http.StatusFound, customerHref(customerID))
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "delete customer details", r.Err)
	}
	if customerID == "" {
		return h.renderCustomerList(c, statusFor(r), r.UserMessage())
	}
	return h.renderCustomerEdit(c, customerID, statusFor(r), r.UserMessage())
}
