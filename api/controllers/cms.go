package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/responses"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/validators"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/cms"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/logger"
)

type pageContentRequest struct {
	Content map[string]any `json:"content" validate:"required"`
}

// GetPage serves a CMS copy document by key for the storefront.
func GetPage(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		content, err := svc.GetPage(r.Context(), key)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"key": key, "content": content})
	}
}

// AdminListPageKeys lists the CMS document keys the panel can edit.
func AdminListPageKeys(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys, err := svc.ListPageKeys(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"keys": keys})
	}
}

// AdminUpdatePage replaces a full CMS document.
func AdminUpdatePage(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var body pageContentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := svc.UpdatePage(r.Context(), key, body.Content)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"key": key, "content": content})
	}
}

// AdminSetPageField patches a single dot-path field inside a CMS document.
func AdminSetPageField(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var body cms.SetPageFieldInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := svc.SetPageField(r.Context(), key, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"key": key, "content": content})
	}
}

// GetLegalPage serves one legal page by slug.
func GetLegalPage(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.GetLegalPage(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// ListLegalPages lists all legal pages for the footer.
func ListLegalPages(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := svc.ListLegalPages(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, pages)
	}
}

// AdminCreateLegalPage creates a legal page.
func AdminCreateLegalPage(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body cms.CreateLegalPageInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.CreateLegalPage(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, page)
	}
}

// AdminUpdateLegalPage applies a partial legal page update.
func AdminUpdateLegalPage(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body cms.UpdateLegalPageInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.UpdateLegalPage(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// AdminDeleteLegalPage removes a legal page.
func AdminDeleteLegalPage(svc cms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteLegalPage(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
