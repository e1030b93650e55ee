package internal

import (
	"embed"
	"encoding/json"
	goerrors "errors"
	"html/template"
	"item-lab/domain"
	"item-lab/errors"
	"item-lab/services"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	sdkhttp "github.com/mama165/sdk-go/http"
	"github.com/samber/lo"
)

//go:embed templates/items.html
var templatesFS embed.FS

const (
	msgItemGone     = "item already gone"
	msgSomethingBad = "something broke"
)

// StatsProvider feeds the inspector page.
type StatsProvider func() map[string]any

// ItemView is the template and JSON shape of an item.
type ItemView struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type PageData struct {
	Items     []ItemView
	Flash     string
	FlashKind string
	MaxLength int
	Stats     map[string]any
}

type WebServer struct {
	itemService services.IItemService
	log         *slog.Logger
	stats       StatsProvider
	tmpl        *template.Template
}

func NewWebServer(itemService services.IItemService, log *slog.Logger, stats StatsProvider) *WebServer {
	return &WebServer{
		itemService: itemService,
		log:         log,
		stats:       stats,
		tmpl:        template.Must(template.ParseFS(templatesFS, "templates/items.html")),
	}
}

// Router exposes the list page, its form actions, the JSON API and the operational endpoints.
func (s *WebServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.page).Methods(http.MethodGet)
	r.HandleFunc("/items", s.addForm).Methods(http.MethodPost)
	r.HandleFunc("/items/{id:[0-9]+}/delete", s.deleteForm).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/items", sdkhttp.JSON(s.listJSON)).Methods(http.MethodGet)
	api.HandleFunc("/items", sdkhttp.JSON(s.addJSON)).Methods(http.MethodPost)
	api.HandleFunc("/items/{id:[0-9]+}", sdkhttp.JSON(s.deleteJSON)).Methods(http.MethodDelete)

	r.HandleFunc("/health", health).Methods(http.MethodGet)
	r.HandleFunc("/inspect", s.inspect).Methods(http.MethodGet)
	return r
}

func (s *WebServer) page(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		MaxLength: domain.MaxTextLength,
		Flash:     r.URL.Query().Get("flash"),
		FlashKind: r.URL.Query().Get("kind"),
	}
	items, err := s.itemService.GetItems(r.Context())
	if err != nil {
		data.Flash, data.FlashKind = msgSomethingBad, "server"
	}
	data.Items = toItemViews(items)
	s.render(w, "page", data)
}

// addForm and deleteForm answer with a redirect so a refresh never resubmits the form.
func (s *WebServer) addForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, err.Error(), "client")
		return
	}
	if err := s.itemService.AddItem(r.Context(), r.PostFormValue("text")); err != nil {
		msg, kind := flashFor(err)
		redirectWithFlash(w, r, msg, kind)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *WebServer) deleteForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		redirectWithFlash(w, r, "invalid id", "client")
		return
	}
	if err = s.itemService.DeleteItem(r.Context(), id); err != nil {
		msg, kind := flashFor(err)
		redirectWithFlash(w, r, msg, kind)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *WebServer) listJSON(_ http.ResponseWriter, r *http.Request) *sdkhttp.Response {
	items, err := s.itemService.GetItems(r.Context())
	if err != nil {
		return s.errorResponse(r, err)
	}
	return sdkhttp.OK(toItemViews(items))
}

type addItemBody struct {
	Text string `json:"text"`
}

func (s *WebServer) addJSON(_ http.ResponseWriter, r *http.Request) *sdkhttp.Response {
	var body addItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return sdkhttp.BadRequest("malformed JSON body")
	}
	if err := s.itemService.AddItem(r.Context(), body.Text); err != nil {
		return s.errorResponse(r, err)
	}
	return sdkhttp.Created(nil)
}

func (s *WebServer) deleteJSON(_ http.ResponseWriter, r *http.Request) *sdkhttp.Response {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return sdkhttp.BadRequest("invalid id")
	}
	if err = s.itemService.DeleteItem(r.Context(), id); err != nil {
		return s.errorResponse(r, err)
	}
	return sdkhttp.NoContent()
}

func (s *WebServer) inspect(w http.ResponseWriter, r *http.Request) {
	var data PageData
	if s.stats != nil {
		data.Stats = s.stats()
	}
	if data.Stats == nil {
		data.Stats = make(map[string]any)
	}
	items, err := s.itemService.GetItems(r.Context())
	if err != nil {
		data.Stats["Error"] = err.Error()
	}
	data.Items = toItemViews(items)
	s.render(w, "inspect", data)
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *WebServer) render(w http.ResponseWriter, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("Failed to render page", "template", name, "error", err)
	}
}

func toItemViews(items []domain.Item) []ItemView {
	return lo.Map(items, func(item domain.Item, _ int) ItemView {
		return ItemView{ID: item.ID, Text: item.Text, CreatedAt: domain.FormatTimestamp(item.CreatedAt)}
	})
}

// flashFor picks the message shown to the user: the reason for validation errors,
// a fixed wording otherwise so server details stay in the logs.
func flashFor(err error) (string, string) {
	var validationErr *errors.ValidationError
	switch {
	case goerrors.As(err, &validationErr):
		return validationErr.Reason, "client"
	case goerrors.Is(err, errors.ErrNotFound):
		return msgItemGone, "client"
	default:
		return msgSomethingBad, "server"
	}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, msg, kind string) {
	q := url.Values{"flash": {msg}, "kind": {kind}}
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// errorResponse hands client errors back as they are. Server faults are logged
// and answered with a fixed message.
func (s *WebServer) errorResponse(r *http.Request, err error) *sdkhttp.Response {
	var validationErr *errors.ValidationError
	switch {
	case goerrors.As(err, &validationErr):
		return sdkhttp.BadRequest(validationErr.Reason)
	case goerrors.Is(err, errors.ErrNotFound):
		return sdkhttp.NotFound(err.Error())
	}

	s.log.Error("JSON API request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	if goerrors.Is(err, errors.ErrConfiguration) || goerrors.Is(err, errors.ErrConnection) {
		return &sdkhttp.Response{
			StatusCode: http.StatusServiceUnavailable,
			Payload:    map[string]string{"message": "service unavailable", "details": msgSomethingBad},
		}
	}
	return sdkhttp.InternalError(msgSomethingBad)
}
