package mailer

import (
	"bytes"
	"html/template"
	"time"

	"github.com/openprocure/portal-go/config"
)

var (
	welcomeTmpl = template.Must(template.New("welcome").Parse(`
<p>Hello {{.CompanyName}},</p>
<p>Your supplier account has been created and is awaiting review.
You will receive another email once an administrator has processed your registration.</p>
<p><a href="{{.PortalURL}}">Open the procurement portal</a></p>`))

	approvedTmpl = template.Must(template.New("approved").Parse(`
<p>Hello {{.CompanyName}},</p>
<p>Your supplier account has been <strong>approved</strong>.
You can now view and answer qualification questionnaires matching your CPV codes.</p>
<p><a href="{{.PortalURL}}">Open the procurement portal</a></p>`))

	rejectedTmpl = template.Must(template.New("rejected").Parse(`
<p>Hello {{.CompanyName}},</p>
<p>Your supplier registration has been <strong>rejected</strong>.</p>
<p>Reason: {{.Reason}}</p>`))

	questionnaireTmpl = template.Must(template.New("questionnaire").Parse(`
<p>Hello {{.CompanyName}},</p>
<p>A qualification questionnaire matching your CPV codes is available:</p>
<p><strong>{{.Title}}</strong><br>Deadline: {{.Deadline.Format "2006-01-02"}}</p>
<p><a href="{{.PortalURL}}">Open the procurement portal</a></p>`))
)

type templateData struct {
	CompanyName string
	Title       string
	Deadline    time.Time
	Reason      string
	PortalURL   string
}

func render(tmpl *template.Template, data templateData) string {
	data.PortalURL = config.PortalBaseURL
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}

func WelcomeBody(companyName string) string {
	return render(welcomeTmpl, templateData{CompanyName: companyName})
}

func ApprovedBody(companyName string) string {
	return render(approvedTmpl, templateData{CompanyName: companyName})
}

func RejectedBody(companyName, reason string) string {
	return render(rejectedTmpl, templateData{CompanyName: companyName, Reason: reason})
}

func QuestionnaireBody(companyName, title string, deadline time.Time) string {
	return render(questionnaireTmpl, templateData{CompanyName: companyName, Title: title, Deadline: deadline})
}
