package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"go.uber.org/zap"

	"krushnagate.dev/portfolio/internal/components"
	"krushnagate.dev/portfolio/internal/contact"
	"krushnagate.dev/portfolio/internal/format"
	"krushnagate.dev/portfolio/internal/handlers"
	mw "krushnagate.dev/portfolio/internal/middleware"
	"krushnagate.dev/portfolio/internal/nav"
)

func (a *app) translator(lang string) components.Translator {
	return func(key, def string) string {
		return a.bundle.TOr(lang, key, def)
	}
}

func (a *app) navView(lang string, state nav.MenuState) nav.View {
	return nav.Build(a.bundle.TOr(lang, "brand.name", "Portfolio"), a.portfolio.Nav, state)
}

func (a *app) analytics() handlers.Analytics {
	return handlers.Analytics{
		GA4MeasurementID: a.cfg.Analytics.GA4MeasurementID,
		GTMContainerID:   a.cfg.Analytics.GTMContainerID,
		Debug:            a.cfg.Analytics.Debug,
	}
}

// renderPage writes the full document: the component tree inside the base layout.
func (a *app) renderPage(w io.Writer, lang string, nv nav.View, cv components.ContactView) error {
	t := a.translator(lang)
	var body bytes.Buffer
	err := components.Render(&body, components.View{
		Portfolio: a.portfolio,
		Nav:       nv,
		Contact:   cv,
		Now:       a.now(),
		T:         t,
	})
	if err != nil {
		return fmt.Errorf("render body: %w", err)
	}
	data := handlers.BuildHomeData(handlers.HomeInput{
		Portfolio:   a.portfolio,
		Lang:        lang,
		Brand:       t("brand.name", "Portfolio"),
		Description: t("site.description", ""),
		SiteURL:     a.cfg.Site.URL,
		Analytics:   a.analytics(),
	}, template.HTML(body.String()))
	return a.views.render(w, "base", data)
}

func (a *app) writePage(w http.ResponseWriter, r *http.Request, status int, nv nav.View, cv components.ContactView) {
	var buf bytes.Buffer
	if err := a.renderPage(&buf, mw.Lang(r), nv, cv); err != nil {
		mw.Log(r.Context()).Error("render page", zap.Error(err))
		http.Error(w, fmt.Sprintf("template error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeFragment(w http.ResponseWriter, r *http.Request, status int, node interface{ Render(io.Writer) error }) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		mw.Log(r.Context()).Error("render fragment", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// handleHome renders the page. ?menu=open is the script-free way to show the
// mobile menu; ?sent=1 follows a successful plain form post.
func (a *app) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	q := r.URL.Query()
	cv := components.ContactView{CSRFToken: mw.CSRFToken(r)}
	if q.Get("sent") == "1" {
		cv.StatusTone = components.ToneSuccess
		cv.StatusText = a.bundle.TOr(lang, "contact.sent", "Thanks! Your message has been received.")
	}
	a.writePage(w, r, http.StatusOK, a.navView(lang, nav.ParseMenuState(q.Get("menu"))), cv)
}

// handleNavFragment returns the navigation bar for the requested menu state.
// Plain requests are sent to the equivalent full page.
func (a *app) handleNavFragment(w http.ResponseWriter, r *http.Request) {
	state := nav.ParseMenuState(r.URL.Query().Get("menu"))
	if !mw.IsHTMX(r.Context()) {
		target := "/"
		if state.IsOpen() {
			target = "/?menu=" + state.String()
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	lang := mw.Lang(r)
	writeFragment(w, r, http.StatusOK, components.NavBar(a.navView(lang, state), a.translator(lang)))
}

// handleContact validates and stores a contact message. htmx posts get the
// form fragment back; plain posts are redirected after success.
func (a *app) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	lang := mw.Lang(r)
	t := a.translator(lang)
	logger := mw.Log(r.Context())

	in := contact.Parse(r.PostForm)
	cv := components.ContactView{CSRFToken: mw.CSRFToken(r), Values: in.Values()}

	sub, err := contact.Accept(in, mw.ClientIP(r), a.now())
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		cv.Errors = make(map[string]string, len(verr.Fields))
		for field, key := range verr.Fields {
			cv.Errors[field] = t(key, key)
		}
		cv.StatusTone = components.ToneError
		cv.StatusText = t("contact.invalid", "Please fix the highlighted fields.")
		logger.Info("contact message rejected", zap.Error(err))
		a.writeContact(w, r, http.StatusUnprocessableEntity, cv)
		return
	case err != nil:
		logger.Error("accept contact message", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	if err := a.outbox.Save(r.Context(), sub); err != nil {
		logger.Error("save contact message", zap.String("id", sub.ID), zap.Error(err))
		cv.StatusTone = components.ToneError
		cv.StatusText = t("contact.failed", "Your message could not be saved. Please try again later.")
		a.writeContact(w, r, http.StatusInternalServerError, cv)
		return
	}
	logger.Info("contact message accepted", zap.String("id", sub.ID))

	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/?sent=1#"+components.ContactFormID, http.StatusSeeOther)
		return
	}
	a.writeContact(w, r, http.StatusOK, components.ContactView{
		CSRFToken:  mw.CSRFToken(r),
		StatusTone: components.ToneSuccess,
		StatusText: fmt.Sprintf("%s (%s)",
			t("contact.sent", "Thanks! Your message has been received."),
			format.Date(sub.ReceivedAt, lang)),
	})
}

func (a *app) writeContact(w http.ResponseWriter, r *http.Request, status int, cv components.ContactView) {
	if mw.IsHTMX(r.Context()) {
		writeFragment(w, r, status, components.ContactForm(cv, a.translator(mw.Lang(r))))
		return
	}
	a.writePage(w, r, status, a.navView(mw.Lang(r), nav.MenuClosed), cv)
}
