package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"quickdiff/internal/lang"
	"quickdiff/internal/patch"
	"quickdiff/internal/session"
	"quickdiff/internal/share"
)

type pairRequest struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Language string `json:"language"`
}

type shareRequest struct {
	pairRequest
	// Base is the page the link should open; ignored when the server has a configured base URL.
	Base string `json:"base"`
}

type shareResponse struct {
	Token    string         `json:"token"`
	URL      string         `json:"url"`
	Length   int            `json:"length"`
	SizeSafe bool           `json:"sizeSafe"`
	Envelope share.Envelope `json:"envelope"`
}

type languageItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Positions []int  `json:"positions,omitempty"`
}

func (a *api) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) demo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, share.FromState(session.Demo(), a.now()))
}

func (a *api) languages(w http.ResponseWriter, r *http.Request) {
	matches := lang.Search(r.URL.Query().Get("q"))
	out := make([]languageItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, languageItem{ID: m.ID, Name: m.Name, Positions: m.Positions})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *api) detect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Filename string `json:"filename"`
	}
	if err := a.decode(w, r, &req); err != nil {
		writeError(w, bodyStatus(err), err)
		return
	}
	id := lang.Plaintext
	if req.Filename != "" {
		id = lang.FromFilename(req.Filename)
	}
	if id == lang.Plaintext {
		id = lang.FromContent(req.Text)
	}
	writeJSON(w, http.StatusOK, map[string]string{"language": id, "name": lang.DisplayName(id)})
}

func (a *api) share(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := a.decode(w, r, &req); err != nil {
		writeError(w, bodyStatus(err), err)
		return
	}
	env := share.NewEnvelope(req.Left, req.Right, req.Language, a.now())
	sh, err := share.Build(env, a.linkBase(r, req.Base))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !sh.SizeSafe {
		a.log.WarnContext(r.Context(), "share link exceeds advisory size", "length", sh.Length(), "limit", share.URLSizeLimit)
	}
	writeJSON(w, http.StatusOK, shareResponse{
		Token:    sh.Token,
		URL:      sh.URL,
		Length:   sh.Length(),
		SizeSafe: sh.SizeSafe,
		Envelope: env,
	})
}

// openShare takes the token in a body because base64 tokens contain "/".
func (a *api) openShare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Link  string `json:"link"`
		Token string `json:"token"`
	}
	if err := a.decode(w, r, &req); err != nil {
		writeError(w, bodyStatus(err), err)
		return
	}
	var (
		env share.Envelope
		err error
	)
	if req.Token != "" {
		env, err = share.Decode(req.Token)
	} else {
		env, err = share.ParseFragment(req.Link)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (a *api) importFile(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.maxBody))
	if err != nil {
		writeError(w, bodyStatus(err), err)
		return
	}
	env, err := share.ParseFile(data)
	switch {
	case errors.Is(err, share.ErrMissingSides):
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (a *api) export(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if err := a.decode(w, r, &req); err != nil {
		writeError(w, bodyStatus(err), err)
		return
	}
	now := a.now()
	data, err := share.MarshalFile(share.NewEnvelope(req.Left, req.Right, req.Language, now))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	attachment(w, "application/json", share.ExportName(now))
	_, _ = w.Write(data)
}

func (a *api) patch(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if err := a.decode(w, r, &req); err != nil {
		writeError(w, bodyStatus(err), err)
		return
	}
	attachment(w, "text/plain; charset=utf-8", patch.FileName(a.now()))
	_, _ = io.WriteString(w, patch.Naive(req.Left, req.Right))
}

// linkBase is the configured base URL, the page the client named, or the
// scheme and host the request came in on.
func (a *api) linkBase(r *http.Request, requested string) string {
	if a.baseURL != "" {
		return a.baseURL
	}
	if requested != "" {
		return requested
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}

func (a *api) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, a.maxBody))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

// bodyStatus is 413 when the body hit the size cap, else 400.
func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func attachment(w http.ResponseWriter, contentType, name string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
