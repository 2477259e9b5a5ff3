// Package email builds the canned decline notices. The backend's mailer owns
// delivery and the outer HTML layout; this package only produces the body
// passed to sendMessageToReservation.
package email

import (
	"fmt"
	"sort"

	"github.com/CutieCat6778/reservation-frontdesk/internal/errs"
	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
)

type Template struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Templates returns the reason→template map for a reservation. Pure function
// of the name fields, which are interpolated into the salutation.
func Templates(r model.Reservation) map[string]Template {
	salutation := fmt.Sprintf("<p>Sehr geehrte/r <strong>%s</strong>,</p>", r.FullName())
	closing := "<p>Mit freundlichen Grüßen</p>"

	tmpl := func(title, line string) Template {
		return Template{
			Title: title,
			Body:  fmt.Sprintf("<h2>%s</h2>\n%s\n<p>%s</p>\n%s", title, salutation, line, closing),
		}
	}

	return map[string]Template{
		"before18after20": tmpl("Vor 18 Uhr und nach 20 Uhr",
			"leider können wir Ihre Reservierung nur vor 18 Uhr oder nach 20 Uhr anbieten."),
		"mondayClosed": tmpl("Montag geschlossen",
			"wir müssen Ihnen leider mitteilen, dass unser Restaurant montags geschlossen ist und wir Ihre Reservierung daher nicht annehmen können."),
		"from20": tmpl("Ab 20 Uhr",
			"wir können Ihre Reservierung leider erst ab 20 Uhr anbieten."),
		"from19": tmpl("Ab 19 Uhr",
			"wir können Ihre Reservierung leider erst ab 19 Uhr anbieten."),
		"from18": tmpl("Ab 18 Uhr",
			"wir können Ihre Reservierung leider erst ab 18 Uhr anbieten."),
		"from17": tmpl("Ab 17 Uhr",
			"wir können Ihre Reservierung leider erst ab 17 Uhr anbieten."),
		"notOpen": tmpl("Nicht geöffnet",
			"leider können wir Ihre Reservierung nicht annehmen, da unser Restaurant zu diesem Zeitpunkt nicht geöffnet ist."),
	}
}

// Keys lists the valid reason keys in stable order.
func Keys() []string {
	m := Templates(model.Reservation{})
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Compose assembles the final message for a selected reason: canned body,
// hyperlink to the guest-facing reservation page, fixed signature. A missing
// or unknown reason aborts the decline.
func Compose(r model.Reservation, reason, frontendURI string) (string, error) {
	if reason == "" {
		return "", errs.ErrReasonRequired
	}
	tmpl, ok := Templates(r)[reason]
	if !ok {
		return "", fmt.Errorf("%w: unknown reason %q", errs.ErrReasonRequired, reason)
	}
	return tmpl.Body + fmt.Sprintf(`<a
          href="%s/reservation?id=%s"
          target="_blank"
          rel="noopener noreferrer"
        >
          Link zur Reservierung
        </a>
        <br/>
        <div class="footer">
          Ihr Yoake Restaurant-Team
        </div>
        `, frontendURI, r.ID), nil
}
