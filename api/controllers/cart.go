package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/middleware"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/responses"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/validators"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cart"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/logger"
)

const guestCartTokenHeader = "X-Guest-Cart-Token"

func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid user context")
	}
	return id, nil
}

func writeGuestCart(w http.ResponseWriter, result *cart.GuestCartDTO) {
	w.Header().Set(guestCartTokenHeader, result.Token)
	responses.WriteSuccess(w, result)
}

// GetCart returns the signed-in user's cart.
func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.GetCart(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// SetCartItem pins a line to an absolute quantity. Zero removes the line.
func SetCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body cart.SetItemInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SetItem(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// RemoveCartItem drops one product from the cart.
func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := parseUUIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.RemoveItem(r.Context(), userID, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ClearCart empties the cart in one shot.
func ClearCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.ClearCart(r.Context(), userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

// MergeGuestCart folds a guest cart into the signed-in account. The token is
// single use; it is invalidated once merged.
func MergeGuestCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token := r.Header.Get(guestCartTokenHeader)
		if err := svc.MergeGuestCart(r.Context(), token, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.GetCart(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetGuestCart returns the anonymous cart. A missing token mints a fresh one,
// echoed back in the X-Guest-Cart-Token header.
func GetGuestCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.GetGuestCart(r.Context(), r.Header.Get(guestCartTokenHeader))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeGuestCart(w, result)
	}
}

// SetGuestCartItem pins a guest cart line to an absolute quantity.
func SetGuestCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body cart.SetItemInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SetGuestItem(r.Context(), r.Header.Get(guestCartTokenHeader), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeGuestCart(w, result)
	}
}

// RemoveGuestCartItem drops one product from the guest cart.
func RemoveGuestCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseUUIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.RemoveGuestItem(r.Context(), r.Header.Get(guestCartTokenHeader), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeGuestCart(w, result)
	}
}
