package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"krushnagate.dev/portfolio/internal/contact"
	"krushnagate.dev/portfolio/internal/content"
)

// ContactFormID is the swap target for htmx submissions.
const ContactFormID = "contact-form"

// Status tones.
const (
	ToneSuccess = "success"
	ToneError   = "error"
)

// ContactView carries form state between renders.
type ContactView struct {
	Action    string
	CSRFToken string
	// Values refills fields after a failed submission.
	Values map[string]string
	// Errors maps field names to translated messages.
	Errors     map[string]string
	StatusTone string
	StatusText string
	// Inert renders the form without a submit target, for static copies
	// that have no server behind them.
	Inert bool
}

func ContactSection(cv ContactView, t Translator) g.Node {
	return Section(
		ID(content.SectionContact),
		Class("py-20 px-4 bg-primary/50"),
		Div(
			Class("max-w-7xl mx-auto"),
			H2(Class("section-title"), g.Text(t.get("contact.title", "Get In Touch"))),
			Div(Class("max-w-2xl mx-auto"), ContactForm(cv, t)),
		),
	)
}

// ContactForm renders the form alone; htmx swaps it after a submission.
func ContactForm(cv ContactView, t Translator) g.Node {
	nodes := []g.Node{ID(ContactFormID), Class("space-y-6")}
	nodes = append(nodes, submitTarget(cv)...)
	nodes = append(nodes,
		statusLine(cv),
		field(cv, contact.FieldName, t.get("contact.name", "Name"),
			Input(Type("text"), ID(contact.FieldName), Name(contact.FieldName), Value(cv.Values[contact.FieldName]), inputClass(cv, contact.FieldName), invalid(cv, contact.FieldName)),
		),
		field(cv, contact.FieldEmail, t.get("contact.email", "Email"),
			Input(Type("email"), ID(contact.FieldEmail), Name(contact.FieldEmail), Value(cv.Values[contact.FieldEmail]), inputClass(cv, contact.FieldEmail), invalid(cv, contact.FieldEmail)),
		),
		field(cv, contact.FieldMessage, t.get("contact.message", "Message"),
			Textarea(ID(contact.FieldMessage), Name(contact.FieldMessage), Rows("4"), inputClass(cv, contact.FieldMessage), invalid(cv, contact.FieldMessage), g.Text(cv.Values[contact.FieldMessage])),
		),
		g.If(cv.Inert, P(Class("text-sm text-tertiary"), g.Attr("data-inert", "true"), g.Text(t.get("contact.inert", "The contact form works on the live site only.")))),
		Button(Type("submit"), Class("btn-primary"), g.If(cv.Inert, Disabled()), g.Text(t.get("contact.send", "Send Message"))),
	)
	return Form(nodes...)
}

// submitTarget is the form's post wiring plus its CSRF field; inert forms get none.
func submitTarget(cv ContactView) []g.Node {
	if cv.Inert {
		return nil
	}
	action := cv.Action
	if action == "" {
		action = "/contact"
	}
	return []g.Node{
		Method("post"),
		Action(action),
		g.Attr("hx-post", action),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		Input(Type("hidden"), Name("csrf_token"), Value(cv.CSRFToken)),
	}
}

func field(cv ContactView, name, label string, control g.Node) g.Node {
	msg := cv.Errors[name]
	return Div(
		Label(For(name), Class("block text-tertiary mb-2"), g.Text(label)),
		control,
		g.If(msg != "", P(Class("field-error text-sm mt-1"), g.Attr("data-field-error", name), g.Text(msg))),
	)
}

func inputClass(cv ContactView, name string) g.Node {
	cls := "w-full bg-primary/50 border border-tertiary rounded-md px-4 py-2 focus:outline-none focus:border-secondary"
	if cv.Errors[name] != "" {
		cls += " has-error"
	}
	return Class(cls)
}

func invalid(cv ContactView, name string) g.Node {
	return g.If(cv.Errors[name] != "", Aria("invalid", "true"))
}

func statusLine(cv ContactView) g.Node {
	if cv.StatusText == "" {
		return nil
	}
	return Div(
		ID("contact-status"),
		Class("form-status form-status--"+cv.StatusTone),
		Role("status"),
		g.Attr("data-tone", cv.StatusTone),
		g.Text(cv.StatusText),
	)
}
