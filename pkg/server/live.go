package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/headless/pkg/routepath"
)

// LiveRequest is a navigation sent by a live client.
type LiveRequest struct {
	// Tab is the target tab key.
	Tab string `json:"tab"`

	// Path, when set, is the client's current path. It re-synchronizes the
	// session before navigating.
	Path string `json:"path,omitempty"`

	// Params, when set, override shared params; the target navigator is
	// called with them directly. Without params the request is a plain tab
	// change.
	Params routepath.Params `json:"params,omitempty"`
}

// LiveResponse answers one LiveRequest.
type LiveResponse struct {
	Path  string `json:"path,omitempty"`
	Tab   string `json:"tab,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleLive upgrades to a websocket and answers navigation requests until
// the client disconnects. The session must already exist.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	sess := s.existingSession(r)
	if sess == nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := s.logger.With().Str("session", sess.ID).Logger()
	for {
		_ = conn.SetReadDeadline(time.Now().Add(s.config.LiveReadTimeout))

		var req LiveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				logger.Error().Err(err).Msg("read error")
			}
			return
		}
		sess.touch(time.Now())

		if err := conn.WriteJSON(s.live(r, sess, req)); err != nil {
			logger.Error().Err(err).Msg("write error")
			return
		}
	}
}

// live performs one live navigation.
func (s *Server) live(r *http.Request, sess *Session, req LiveRequest) LiveResponse {
	sess.dispatch.Lock()
	defer sess.dispatch.Unlock()

	c := sess.Controller()
	if req.Path != "" {
		path, err := routepath.CanonicalizeAndValidateNavPath(req.Path)
		if err != nil {
			return LiveResponse{Error: err.Error()}
		}
		path, _ = routepath.SplitPathAndQuery(path)
		if !c.Sync(path) {
			return LiveResponse{Error: "no tab owns " + path}
		}
		sess.setLocation(path)
	}

	var err error
	if req.Params != nil {
		err = c.Navigate(r.Context(), req.Tab, req.Params)
	} else {
		err = c.Change(r.Context(), req.Tab)
	}
	if err != nil {
		return LiveResponse{Error: err.Error()}
	}
	return LiveResponse{Path: sess.Location(), Tab: c.ActiveKey()}
}
