package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/responses"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/api/validators"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/catalog"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/enums"
	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/logger"
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/pagination"
)

const (
	defaultProductPageSize = 24
	maxProductPageSize     = 60
	maxSearchLimit         = 25
)

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid "+name)
	}
	return id, nil
}

func parseBoolQuery(r *http.Request, key string) bool {
	v := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	return v == "1" || v == "true"
}

func parseListProductsInput(r *http.Request, includeInactive bool) (catalog.ListProductsInput, error) {
	q := r.URL.Query()

	limit, err := validators.ParseQueryInt(r, "limit", defaultProductPageSize, 1, maxProductPageSize)
	if err != nil {
		return catalog.ListProductsInput{}, err
	}
	page, err := validators.ParseQueryInt(r, "page", 1, 1, 10000)
	if err != nil {
		return catalog.ListProductsInput{}, err
	}

	input := catalog.ListProductsInput{
		Filters: catalog.ProductListFilters{
			CategorySlug:   validators.SanitizeString(q.Get("category"), 120),
			DiscountedOnly: parseBoolQuery(r, "discounted"),
			NewArrivals:    parseBoolQuery(r, "new"),
			HotSelling:     parseBoolQuery(r, "hot"),
			FeaturedOnly:   parseBoolQuery(r, "featured"),
			Query:          validators.SanitizeString(q.Get("q"), 200),
		},
		Pagination: pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(q.Get("cursor")),
		},
		Page:            page,
		IncludeInactive: includeInactive,
	}

	if raw := q.Get("price_min_cents"); raw != "" {
		v, err := validators.ParseQueryInt(r, "price_min_cents", 0, 0, 1<<31-1)
		if err != nil {
			return catalog.ListProductsInput{}, err
		}
		input.Filters.PriceMinCents = &v
	}
	if raw := q.Get("price_max_cents"); raw != "" {
		v, err := validators.ParseQueryInt(r, "price_max_cents", 0, 0, 1<<31-1)
		if err != nil {
			return catalog.ListProductsInput{}, err
		}
		input.Filters.PriceMaxCents = &v
	}

	if raw := strings.TrimSpace(q.Get("sort")); raw != "" {
		sort, err := enums.ParseSortOption(raw)
		if err != nil {
			return catalog.ListProductsInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid sort option")
		}
		input.Sort = sort
	}

	return input, nil
}

// ListProducts serves the storefront browse endpoint with filters, sort, and
// cursor pagination.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseListProductsInput(r, false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListProducts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetProductBySlug serves the product detail page.
func GetProductBySlug(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		product, err := svc.GetProductBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// SearchProducts serves typeahead search. The seq query param is echoed back
// so clients can discard stale responses.
func SearchProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxSearchLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		seq, err := validators.ParseQueryInt(r, "seq", 0, 0, 1<<31-1)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Search(r.Context(), catalog.SearchInput{
			Query: validators.SanitizeString(r.URL.Query().Get("q"), 200),
			Seq:   seq,
			Limit: limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// FilterMeta serves the price slider bounds for the storefront filter rail.
func FilterMeta(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.FilterMeta())
	}
}

// ListCategories serves all categories for navigation.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

// HomeCategories serves the curated home page category strip.
func HomeCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.HomeCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

// AdminListProducts lists products for the admin table, inactive included.
func AdminListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseListProductsInput(r, true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListProducts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminGetProduct loads a single product by id for the edit form.
func AdminGetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.GetProductByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminCreateProduct creates a product from the admin form.
func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body catalog.CreateProductInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial product update.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body catalog.UpdateProductInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminCreateCategory creates a category.
func AdminCreateCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body catalog.CreateCategoryInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.CreateCategory(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

// AdminUpdateCategory applies a partial category update.
func AdminUpdateCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body catalog.UpdateCategoryInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.UpdateCategory(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

// AdminDeleteCategory removes a category. Categories with products attached
// are rejected downstream.
func AdminDeleteCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteCategory(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
