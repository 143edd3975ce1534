package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/routepath"
	"github.com/vango-dev/headless/pkg/ui/html"
)

// session returns the request's session, creating one and setting the
// cookie when the request carries none or an expired one.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, error) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if sess := s.sessions.Get(c.Value); sess != nil {
			return sess, nil
		}
	}
	sess, err := s.sessions.Create()
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, sessionCookie(sess.ID, s.config.SecureCookies))
	return sess, nil
}

// existingSession returns the request's session without creating one.
func (s *Server) existingSession(r *http.Request) *Session {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil
	}
	return s.sessions.Get(c.Value)
}

// handlePage renders the tab owning the requested path.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	result, err := routepath.CanonicalizePath(r.URL.Path)
	if err != nil {
		http.Error(w, "bad path", http.StatusBadRequest)
		return
	}
	if result.Changed {
		target := result.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	sess, err := s.session(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sess.dispatch.Lock()
	defer sess.dispatch.Unlock()

	c := sess.Controller()
	if _, ok := c.Resolve(result.Path); !ok {
		http.NotFound(w, r)
		return
	}
	sess.setLocation(result.Path)
	c.Sync(result.Path)

	kit := html.Kit{TabAction: s.config.TabAction, From: result.Path}
	body := c.Render(r.Context(), kit)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPage(w, s.page(body)); err != nil {
		s.logger.Error().Err(err).Str("path", result.Path).Msg("render failed")
	}
}

// handleTabChange performs a tab change posted by a page and redirects to
// the synthesized path. The form field "from" carries the page's path so
// shared params survive even when the session has moved on in another
// window.
func (s *Server) handleTabChange(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sess, err := s.session(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sess.dispatch.Lock()
	defer sess.dispatch.Unlock()

	c := sess.Controller()
	if from := r.PostForm.Get("from"); from != "" {
		path, err := routepath.CanonicalizeAndValidateNavPath(from)
		if err != nil {
			http.Error(w, "bad from path", http.StatusBadRequest)
			return
		}
		path, _ = routepath.SplitPathAndQuery(path)
		if c.Sync(path) {
			sess.setLocation(path)
		}
	}

	if err := c.Change(r.Context(), key); err != nil {
		s.changeFailed(w, r, err)
		return
	}
	http.Redirect(w, r, sess.Location(), http.StatusSeeOther)
}

// changeFailed maps a tab change error to a status.
func (s *Server) changeFailed(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, layout.ErrUnknownTab):
		http.Error(w, err.Error(), http.StatusNotFound)
	case herrors.Code(err) == "H002":
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.fail(w, r, err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
