// Package web renders the storefront pages: the catalog home page, the
// per-product detail page with the quantity-tiered price panel, and the
// admin board for editing product text and price fields.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"cats-shop/internal/i18n"
	"cats-shop/internal/model"
	"cats-shop/internal/pricing"
	"cats-shop/internal/quantity"
	"cats-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Pages serves the server-rendered storefront.
type Pages struct {
	products service.ProductService
	orders   service.OrderService
	dicts    *i18n.Bundle
	tmpl     *template.Template
	logger   zerolog.Logger
}

// NewPages parses the embedded templates and creates the page handlers.
func NewPages(
	products service.ProductService,
	orders service.OrderService,
	dicts *i18n.Bundle,
	logger zerolog.Logger,
) (*Pages, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Pages{
		products: products,
		orders:   orders,
		dicts:    dicts,
		tmpl:     tmpl,
		logger:   logger.With().Str("handler", "web").Logger(),
	}, nil
}

// promoView is the three-column promotional pricing block on the home page,
// built from the first product's tier table.
type promoView struct {
	Single     int
	From8      int
	From80     int
	Discount8  int
	Discount80 int
}

type homeView struct {
	Locale   model.Locale
	Dict     *i18n.Dictionary
	Products []model.Product
	Promo    *promoView
}

type productView struct {
	Locale   model.Locale
	Dict     *i18n.Dictionary
	Product  *model.Product
	Quantity int
	PrevQty  int
	NextQty  int
	Quote    pricing.Quote
	Notice   string
	NotFound bool
}

type adminView struct {
	Locale   model.Locale
	Dict     *i18n.Dictionary
	Products []model.Product
	Selected *model.Product
	Saved    bool
	Notice   string
}

// RedirectRoot sends / to the Ukrainian home page.
func (p *Pages) RedirectRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/uk/", http.StatusFound)
}

// Home renders the catalog page.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	locale := p.locale(r)
	dict := p.dicts.For(locale)

	products, err := p.products.List(r.Context())
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to load catalog")
		products = nil // degraded display, not a server error page
	}

	view := homeView{
		Locale:   locale,
		Dict:     dict,
		Products: products,
		Promo:    buildPromo(products),
	}

	p.render(w, "home", view)
}

// buildPromo derives the promotional block from the first product, the way
// the original catalog section did. Products without a three-tier schedule
// render no block.
func buildPromo(products []model.Product) *promoView {
	if len(products) == 0 {
		return nil
	}
	schedule := products[0].Price
	if schedule.Variant() != model.VariantThreeTier || schedule.From80 == nil {
		return nil
	}

	single := pricing.Calculate(schedule, 1)
	from8 := pricing.Calculate(schedule, 8)
	from80 := pricing.Calculate(schedule, 80)

	return &promoView{
		Single:     single.UnitPrice,
		From8:      from8.UnitPrice,
		From80:     from80.UnitPrice,
		Discount8:  pricing.DiscountPercent(schedule.Single, *schedule.From8),
		Discount80: pricing.DiscountPercent(schedule.Single, *schedule.From80),
	}
}

// ProductPage renders the detail page. The committed quantity travels in the
// qty query parameter and is re-normalised on every request; the price panel
// is recomputed synchronously from it.
func (p *Pages) ProductPage(w http.ResponseWriter, r *http.Request) {
	locale := p.locale(r)
	dict := p.dicts.For(locale)
	qty := quantity.Normalize(r.URL.Query().Get("qty"))

	product, err := p.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if !errors.Is(err, model.ErrProductNotFound) {
			p.logger.Error().Err(err).Msg("failed to load product")
		}
		w.WriteHeader(http.StatusNotFound)
		p.render(w, "product", productView{Locale: locale, Dict: dict, NotFound: true})
		return
	}

	prev := qty - 1
	if prev < 1 {
		prev = 1
	}
	view := productView{
		Locale:   locale,
		Dict:     dict,
		Product:  product,
		Quantity: qty,
		PrevQty:  prev,
		NextQty:  qty + 1,
		Quote:    pricing.Calculate(product.Price, qty),
	}
	if r.URL.Query().Get("notice") == "dispatch" {
		view.Notice = dict.T("product_page.dispatch_failed")
	}

	p.render(w, "product", view)
}

// Buy commits the submitted quantity, composes the order intent and sends
// the customer to the bot deep link. Failures bounce back to the product
// page with a non-fatal notice.
func (p *Pages) Buy(w http.ResponseWriter, r *http.Request) {
	locale := p.locale(r)
	productID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, p.productPath(locale, productID, 1), http.StatusSeeOther)
		return
	}
	qty := quantity.Normalize(r.PostFormValue("qty"))

	_, link, err := p.orders.ComposeIntent(r.Context(), productID, qty, string(locale))
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		p.logger.Warn().Err(err).Str("product_id", productID).Msg("order dispatch failed")
		http.Redirect(w, r, p.productPath(locale, productID, qty)+"&notice=dispatch", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, link, http.StatusSeeOther)
}

// Admin renders the board and, on POST, saves the edited product.
func (p *Pages) Admin(w http.ResponseWriter, r *http.Request) {
	locale := p.locale(r)
	dict := p.dicts.For(locale)

	if r.Method == http.MethodPost {
		p.saveAdminForm(w, r, locale)
		return
	}

	products, err := p.products.List(r.Context())
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to load catalog for admin board")
	}

	view := adminView{
		Locale:   locale,
		Dict:     dict,
		Products: products,
		Saved:    r.URL.Query().Get("saved") == "1",
	}

	selectedID := r.URL.Query().Get("id")
	for i := range products {
		if products[i].ID == selectedID || (selectedID == "" && i == 0) {
			view.Selected = &products[i]
			break
		}
	}

	p.render(w, "admin", view)
}

// saveAdminForm maps the posted fields onto a full product record and
// updates it. Empty tier fields clear the tier.
func (p *Pages) saveAdminForm(w http.ResponseWriter, r *http.Request, locale model.Locale) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	product := model.Product{
		ID: r.PostFormValue("id"),
		Name: model.LocalizedText{
			UK: r.PostFormValue("name_uk"),
			RU: r.PostFormValue("name_ru"),
		},
		Description: model.LocalizedText{
			UK: r.PostFormValue("description_uk"),
			RU: r.PostFormValue("description_ru"),
		},
	}
	product.IDNumber, _ = strconv.Atoi(r.PostFormValue("id_number"))
	product.Price.Single = parsePrice(r.PostFormValue("price_single"))
	product.Price.From6 = parseOptionalPrice(r.PostFormValue("price_from_6"))
	product.Price.From8 = parseOptionalPrice(r.PostFormValue("price_from_8"))
	product.Price.From80 = parseOptionalPrice(r.PostFormValue("price_from_80"))

	if err := p.products.Update(r.Context(), product); err != nil {
		p.logger.Warn().Err(err).Str("product_id", product.ID).Msg("admin save failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/%s/admin?id=%s&saved=1", locale, product.ID), http.StatusSeeOther)
}

func parsePrice(raw string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return v
}

func parseOptionalPrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (p *Pages) locale(r *http.Request) model.Locale {
	return model.NormalizeLocale(chi.URLParam(r, "locale"))
}

func (p *Pages) productPath(locale model.Locale, id string, qty int) string {
	return fmt.Sprintf("/%s/product/%s?qty=%d", locale, id, qty)
}

func (p *Pages) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil {
		p.logger.Error().Err(err).Str("template", name).Msg("failed to render page")
	}
}
