package api

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/alexivanou/meteo-widget/internal/service"
	"github.com/alexivanou/meteo-widget/internal/view"
	"go.uber.org/zap"
)

// UIHandler serves the HTML page and its form posts
type UIHandler struct {
	*Handler
	renderer *view.Renderer
}

// NewUIHandler creates the HTML handler on top of the JSON one
func NewUIHandler(h *Handler, renderer *view.Renderer) *UIHandler {
	return &UIHandler{Handler: h, renderer: renderer}
}

// Page handles GET /
func (u *UIHandler) Page(w http.ResponseWriter, r *http.Request) {
	page := view.Build(u.service.State(), u.iconBase, u.now())

	var buf bytes.Buffer
	if err := u.renderer.Render(&buf, page, r.URL.Query().Get("notice")); err != nil {
		u.logger.Error("Error rendering page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// SearchForm handles POST /ui/search: the search box submit and the
// "add to favorites" button share one form.
func (u *UIHandler) SearchForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	u.service.SetInput(r.PostForm.Get("text"))

	if r.PostForm.Get("action") == "favorite" {
		name, _, err := u.service.AddFavoriteFromInput(r.Context())
		if err != nil {
			notice := service.NoticeMessage(err, name)
			if notice == "" {
				u.logger.Error("Error adding favorite", zap.String("city", name), zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			redirectHome(w, r, notice)
			return
		}
		redirectHome(w, r, "")
		return
	}

	u.service.Submit(r.Context())
	redirectHome(w, r, "")
}

// LoadFavoriteForm handles POST /ui/favorites/load
func (u *UIHandler) LoadFavoriteForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	u.service.LoadFavorite(r.Context(), r.PostForm.Get("name"))
	redirectHome(w, r, "")
}

// RemoveFavoriteForm handles POST /ui/favorites/remove
func (u *UIHandler) RemoveFavoriteForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := r.PostForm.Get("name")
	if _, err := u.service.RemoveFavorite(r.Context(), name); err != nil {
		u.logger.Error("Error removing favorite", zap.String("city", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r, "")
}

// ToggleThemeForm handles POST /ui/theme
func (u *UIHandler) ToggleThemeForm(w http.ResponseWriter, r *http.Request) {
	u.service.ToggleTheme()
	redirectHome(w, r, "")
}

func redirectHome(w http.ResponseWriter, r *http.Request, notice string) {
	target := "/"
	if notice != "" {
		target += "?" + url.Values{"notice": {notice}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
