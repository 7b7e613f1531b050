package httphandler

import (
	"WooMasterKit/internal/admin"
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/internal/nonce"
	"WooMasterKit/internal/store"
	"WooMasterKit/internal/telegram"
	"WooMasterKit/internal/version"
	"WooMasterKit/pkg/logging"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

const (
	FormNonce      = "_wpnonce"
	FormLicenseKey = "woo_masterkit_license_key"

	QuerySuccess      = "bulk_price_change_success"
	QueryReport       = "report"
	QueryLicenseSaved = "license_saved"
	HeaderNonce       = "X-WP-Nonce"

	expiredMessage = "The link you followed has expired."
)

type Runner interface {
	Run(req *bulkprice.PriceChangeRequest) *bulkprice.Report
}

type Searcher interface {
	Search(term string) ([]store.SearchResult, error)
}

type LicenseStore interface {
	Save(key string) error
	Current() (string, error)
}

// Deps are the collaborators of the admin handlers. Notifier may be nil.
type Deps struct {
	Service  Runner
	Search   Searcher
	Reports  bulkprice.ReportStore
	Licenses LicenseStore
	Nonce    *nonce.Service
	Notifier telegram.Notifier
	// User is the admin the nonces are bound to.
	User     string
	BaseURL  string
	Settings admin.Settings
}

type Handler struct {
	Deps
}

func New(d Deps) *Handler {
	if d.Notifier == nil {
		d.Notifier = telegram.Nop()
	}
	d.BaseURL = strings.TrimSuffix(d.BaseURL, "/")
	return &Handler{Deps: d}
}

// Register adds every admin route to router.
func (h *Handler) Register(router *httprouter.Router) {
	router.GET("/", h.HandlerIndex)
	router.GET("/version", HandlerVersion)
	router.GET(admin.PagePrefix+":slug", h.HandlerPage)
	router.POST(admin.PagePrefix+admin.SlugBulkChangePrice, h.HandlerBulkChangePrice)
	router.POST(admin.PagePrefix+admin.SlugGoPro, h.HandlerLicense)
	router.GET(admin.SearchPath, h.HandlerSearchProducts)
}

func (h *Handler) HandlerIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.Redirect(w, r, h.BaseURL+admin.Find(admin.SlugHome).URL(), http.StatusFound)
}

func HandlerVersion(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	logger := logging.GetLogger()

	v := version.GetVersion()
	if _, err := fmt.Fprintf(w, "Version %s", v.String()); err != nil {
		logger.Errorf("failed to send response, error: %v", err)
	}
}

func (h *Handler) HandlerPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	logger := logging.GetLogger()
	logger.Debug("Start HandlerPage")
	defer logger.Debug("End HandlerPage")

	page := admin.Find(ps.ByName("slug"))
	if page == nil {
		http.NotFound(w, r)
		return
	}

	data := &admin.PageData{Page: page}
	query := r.URL.Query()

	switch page.Slug {
	case admin.SlugBulkChangePrice:
		data.Nonce = h.Nonce.Create(nonce.ActionBulkChangePrice, h.User)
		data.SearchNonce = h.Nonce.Create(nonce.ActionSearchProducts, h.User)
		data.Success = query.Get(QuerySuccess) == "1"
		if id := query.Get(QueryReport); data.Success && id != "" {
			report, err := h.Reports.Get(id)
			if err != nil {
				if errors.Cause(err) != bulkprice.ErrReportNotFound {
					logger.Errorf("failed Reports.Get(%s), error: %v", id, err)
				}
				data.ReportMissing = true
			}
			data.Report = report
		}
	case admin.SlugGoPro:
		data.LicenseNonce = h.Nonce.Create(nonce.ActionLicense, h.User)
		data.LicenseSaved = query.Get(QueryLicenseSaved) == "1"
		key, err := h.Licenses.Current()
		if err != nil {
			logger.Errorf("failed Licenses.Current(), error: %v", err)
		}
		data.LicenseKey = key
	case admin.SlugSettings:
		data.Settings = h.Settings
	}

	var buf bytes.Buffer
	if err := admin.Render(&buf, data); err != nil {
		logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Errorf("failed to send response, error: %v", err)
	}
}

// HandlerBulkChangePrice applies the submitted price change and redirects to
// the page that shows its report.
func (h *Handler) HandlerBulkChangePrice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := logging.GetLogger()
	logger.Info("Start HandlerBulkChangePrice")
	defer logger.Info("End HandlerBulkChangePrice")

	pageURL := h.BaseURL + admin.Find(admin.SlugBulkChangePrice).URL()

	if err := r.ParseForm(); err != nil {
		logger.Errorf("failed ParseForm(), error: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	logger.Debug("Form\n\t", r.PostForm)

	if !h.verify(w, r.PostForm.Get(FormNonce), nonce.ActionBulkChangePrice) {
		return
	}

	req, err := bulkprice.ParseRequest(r.PostForm)
	if err != nil {
		if errors.Cause(err) == bulkprice.ErrEmptyRequest {
			logger.Debug("Empty submission, nothing to do")
		} else {
			logger.Warnf("Rejected submission: %v", err)
		}
		http.Redirect(w, r, pageURL, http.StatusSeeOther)
		return
	}

	report := h.Service.Run(req)

	if err := h.Reports.Put(report); err != nil {
		logger.Errorf("failed Reports.Put(%s), error: %v", report.ID, err)
	}
	if err := h.Notifier.NotifyReport(report); err != nil {
		logger.Errorf("failed NotifyReport(%s), error: %v", report.ID, err)
	}

	q := url.Values{}
	q.Set(QuerySuccess, "1")
	q.Set(QueryReport, report.ID)
	http.Redirect(w, r, pageURL+"?"+q.Encode(), http.StatusSeeOther)
}

func (h *Handler) HandlerLicense(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := logging.GetLogger()
	logger.Info("Start HandlerLicense")
	defer logger.Info("End HandlerLicense")

	pageURL := h.BaseURL + admin.Find(admin.SlugGoPro).URL()

	if err := r.ParseForm(); err != nil {
		logger.Errorf("failed ParseForm(), error: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if !h.verify(w, r.PostForm.Get(FormNonce), nonce.ActionLicense) {
		return
	}

	key := strings.TrimSpace(r.PostForm.Get(FormLicenseKey))
	if key == "" {
		http.Redirect(w, r, pageURL, http.StatusSeeOther)
		return
	}

	if err := h.Licenses.Save(key); err != nil {
		logger.Errorf("failed Licenses.Save(), error: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, pageURL+"?"+QueryLicenseSaved+"=1", http.StatusSeeOther)
}

// HandlerSearchProducts answers the product picker. The nonce comes as the
// nonce query parameter or the X-WP-Nonce header.
func (h *Handler) HandlerSearchProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := logging.GetLogger()

	query := r.URL.Query()
	n := query.Get("nonce")
	if n == "" {
		n = r.Header.Get(HeaderNonce)
	}
	if _, err := h.Nonce.Verify(n, nonce.ActionSearchProducts, h.User); err != nil {
		logger.Warnf("HandlerSearchProducts: %v", err)
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "-1")
		return
	}

	results := []store.SearchResult{}
	if term := strings.TrimSpace(query.Get("q")); term != "" {
		found, err := h.Search.Search(term)
		if err != nil {
			logger.Errorf("failed Search(%q), error: %v", term, err)
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
		results = found
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		logger.Errorf("failed to send response, error: %v", err)
	}
}

// verify writes the 403 page and returns false when the nonce is not valid
// for action.
func (h *Handler) verify(w http.ResponseWriter, n, action string) bool {
	if _, err := h.Nonce.Verify(n, action, h.User); err != nil {
		logging.GetLogger().Warnf("Security check failed: %v", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		if err := admin.RenderError(w, expiredMessage); err != nil {
			logging.GetLogger().Error(err)
		}
		return false
	}
	return true
}
