package controllers

import (
	"net/http"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/responses"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/checkout"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/logger"
)

// Checkout builds the prefilled WhatsApp order link for the signed-in cart.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CheckoutCart(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GuestCheckout builds the WhatsApp order link for an anonymous cart.
func GuestCheckout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.CheckoutGuestCart(r.Context(), r.Header.Get(guestCartTokenHeader))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
