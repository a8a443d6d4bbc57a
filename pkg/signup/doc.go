// Package signup validates the sign-up form and derives its dependent fields.
//
// The Engine is a pure function of (field, candidate, snapshot) to Outcome,
// backed by a country.Directory for phone lengths and city lists:
//
//	dir, err := country.New(ctx, country.Embedded())
//	if err != nil {
//		return err
//	}
//	engine, err := signup.NewEngine(dir)
//	if err != nil {
//		return err
//	}
//	out, err := engine.Validate(signup.Phone, "98765", snap)
//
// Sweep validates the whole form and Gate derives the submit gate from a
// snapshot alone. Form holds the UI-side state (snapshot, displayed errors,
// touched fields) and applies one of three recomputation strategies. Country
// changes clear a city the new country does not offer, and calling-code
// changes revalidate the phone number.
//
// Every outcome carries a translation key under "signup." rendered by
// Localize with the catalogs from NewTranslator; Summarize builds the
// labelled success summary.
package signup
