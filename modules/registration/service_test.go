package registration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/modules/registration"
	"github.com/dmitrymomot/signupkit/pkg/country"
	"github.com/dmitrymomot/signupkit/pkg/i18n"
	"github.com/dmitrymomot/signupkit/pkg/signup"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newServer(t *testing.T, opts ...registration.Option) *httptest.Server {
	t.Helper()

	dir, err := country.New(context.Background(), country.Inline())
	require.NoError(t, err)
	engine, err := signup.NewEngine(dir)
	require.NoError(t, err)
	tr, err := signup.NewTranslator(context.Background())
	require.NoError(t, err)

	opts = append([]registration.Option{registration.WithTranslator(tr)}, opts...)
	svc, err := registration.NewService(engine, opts...)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", i18n.Middleware(i18n.NewLangExtractor(tr.Languages()), "en")(
		registration.Router(registration.RouterOptions{Signup: svc}),
	)))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func validSnapshot() signup.Snapshot {
	return signup.Snapshot{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Username:    "ada_l",
		Email:       "ada@example.com",
		Password:    "Valid1@pass",
		CountryCode: "+91",
		Phone:       "9876543210",
		Country:     "India",
		City:        "Mumbai",
		PAN:         "ABCDE1234F",
		Aadhar:      "123456789012",
	}
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any, header ...string) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestNewService(t *testing.T) {
	t.Parallel()

	_, err := registration.NewService(nil)
	assert.ErrorIs(t, err, signup.ErrNilEngine)

	dir, err := country.New(context.Background(), country.Inline())
	require.NoError(t, err)
	engine, err := signup.NewEngine(dir)
	require.NoError(t, err)

	_, err = registration.NewService(engine, registration.WithDefaultCountryCode("+999"))
	assert.ErrorIs(t, err, signup.ErrUnknownCountryCode)
}

func TestCountries(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	status, env := do(t, srv, http.MethodGet, "/api/signup/countries", nil)
	require.Equal(t, http.StatusOK, status)

	var records []country.Record
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 3)
	assert.Equal(t, "India", records[0].Name)
	assert.Equal(t, "+91", records[0].Code)
	assert.EqualValues(t, 3, env.Meta["count"])
}

func TestCities(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	t.Run("known country", func(t *testing.T) {
		t.Parallel()
		status, env := do(t, srv, http.MethodGet, "/api/signup/countries/United%20States/cities", nil)
		require.Equal(t, http.StatusOK, status)

		var got registration.CitiesResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "United States", got.Country)
		assert.Equal(t, []string{"New York", "Los Angeles", "Chicago"}, got.Cities)
	})

	t.Run("unknown country", func(t *testing.T) {
		t.Parallel()
		status, env := do(t, srv, http.MethodGet, "/api/signup/countries/Atlantis/cities", nil)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_country", env.Error.Code)
	})
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty code", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t)
		status, env := do(t, srv, http.MethodGet, "/api/signup/defaults", nil)
		require.Equal(t, http.StatusOK, status)

		var got registration.DefaultsResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, signup.Snapshot{}, got.Snapshot)
		assert.Equal(t, "strict", got.Policy)
	})

	t.Run("pre-selected code", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t, registration.WithDefaultCountryCode("+44"))
		_, env := do(t, srv, http.MethodGet, "/api/signup/defaults", nil)

		var got registration.DefaultsResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "+44", got.Snapshot.CountryCode)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	decodeValidate := func(t *testing.T, env envelope) registration.ValidateResponse {
		t.Helper()
		var got struct {
			Field   string `json:"field"`
			Valid   bool   `json:"valid"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.NotEmpty(t, got.Kind)
		return registration.ValidateResponse{Field: signup.Field(got.Field), Valid: got.Valid, Message: got.Message}
	}

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()
		status, env := do(t, srv, http.MethodPost, "/api/signup/validate", registration.ValidateRequest{
			Field: "email", Value: "ada@example.com", Snapshot: validSnapshot(),
		})
		require.Equal(t, http.StatusOK, status)
		got := decodeValidate(t, env)
		assert.True(t, got.Valid)
		assert.Equal(t, signup.Email, got.Field)
		assert.Empty(t, got.Message)
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		status, env := do(t, srv, http.MethodPost, "/api/signup/validate", registration.ValidateRequest{
			Field: "firstName", Value: "  ", Snapshot: validSnapshot(),
		})
		require.Equal(t, http.StatusOK, status)
		got := decodeValidate(t, env)
		assert.False(t, got.Valid)
		assert.Equal(t, "This field is required", got.Message)
	})

	t.Run("phone depends on snapshot code", func(t *testing.T) {
		t.Parallel()
		snap := validSnapshot()
		snap.CountryCode = ""
		_, env := do(t, srv, http.MethodPost, "/api/signup/validate", registration.ValidateRequest{
			Field: "phone", Value: "9876543210", Snapshot: snap,
		})
		assert.Equal(t, "Please select a country code first", decodeValidate(t, env).Message)
	})

	t.Run("localized", func(t *testing.T) {
		t.Parallel()
		_, env := do(t, srv, http.MethodPost, "/api/signup/validate?lang=es", registration.ValidateRequest{
			Field: "email", Value: "", Snapshot: validSnapshot(),
		})
		assert.Equal(t, "Este campo es obligatorio", decodeValidate(t, env).Message)
	})

	t.Run("accept-language", func(t *testing.T) {
		t.Parallel()
		_, env := do(t, srv, http.MethodPost, "/api/signup/validate", registration.ValidateRequest{
			Field: "email", Value: "", Snapshot: validSnapshot(),
		}, "Accept-Language", "es-ES,es;q=0.9")
		assert.Equal(t, "Este campo es obligatorio", decodeValidate(t, env).Message)
	})

	for _, name := range []string{"nickname", "showPassword", ""} {
		t.Run("rejects field "+name, func(t *testing.T) {
			t.Parallel()
			status, env := do(t, srv, http.MethodPost, "/api/signup/validate", registration.ValidateRequest{
				Field: name, Value: "x", Snapshot: validSnapshot(),
			})
			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, "unknown_field", env.Error.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/signup/validate", strings.NewReader(`{"field":`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/signup/validate", strings.NewReader(`field=email`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})
}

func TestSweep(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	t.Run("valid snapshot", func(t *testing.T) {
		t.Parallel()
		status, env := do(t, srv, http.MethodPost, "/api/signup/sweep", registration.SnapshotRequest{Snapshot: validSnapshot()})
		require.Equal(t, http.StatusOK, status)

		var got registration.SweepResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.True(t, got.CanSubmit)
		assert.Len(t, got.Errors, len(signup.ValidatedFields()))
		assert.True(t, got.Errors.Valid())
	})

	t.Run("empty snapshot", func(t *testing.T) {
		t.Parallel()
		_, env := do(t, srv, http.MethodPost, "/api/signup/sweep", registration.SnapshotRequest{})

		var got registration.SweepResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.False(t, got.CanSubmit)
		assert.Len(t, got.Errors, len(signup.ValidatedFields()))
		for f, msg := range got.Errors {
			assert.Equal(t, "This field is required", msg, "field %s", f)
		}
	})
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		status, env := do(t, srv, http.MethodPost, "/api/signup/submit", registration.SnapshotRequest{Snapshot: validSnapshot()})
		require.Equal(t, http.StatusOK, status)

		var got registration.SubmitResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got.Summary, len(signup.AllFields()))
		assert.Equal(t, signup.Entry{Key: "firstName", Label: "First Name", Value: "Ada"}, got.Summary[0])
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		snap := validSnapshot()
		snap.City = "London"
		snap.Aadhar = "12345"

		status, env := do(t, srv, http.MethodPost, "/api/signup/submit", registration.SnapshotRequest{Snapshot: snap})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, map[string]string{
			"city":   "Please select a city in India",
			"aadhar": "Aadhar number must be exactly 12 digits",
		}, env.Error.Details)
	})
}

type recorder struct {
	mu          sync.Mutex
	outcomes    map[string]int
	submissions map[bool]int
}

func (r *recorder) ObserveOutcome(field, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcomes == nil {
		r.outcomes = map[string]int{}
	}
	r.outcomes[field+"/"+kind]++
}

func (r *recorder) ObserveSubmission(accepted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.submissions == nil {
		r.submissions = map[bool]int{}
	}
	r.submissions[accepted]++
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	srv := newServer(t, registration.WithRecorder(rec))

	do(t, srv, http.MethodPost, "/api/signup/validate", registration.ValidateRequest{
		Field: "email", Value: "nope", Snapshot: validSnapshot(),
	})
	do(t, srv, http.MethodPost, "/api/signup/submit", registration.SnapshotRequest{Snapshot: validSnapshot()})
	do(t, srv, http.MethodPost, "/api/signup/submit", registration.SnapshotRequest{})
	do(t, srv, http.MethodPost, "/api/signup/sweep", registration.SnapshotRequest{})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, 1, rec.outcomes["email/format_invalid"])
	assert.Equal(t, 1, rec.outcomes["email/required"])
	assert.Equal(t, 1, rec.outcomes["city/required"])
	assert.Equal(t, map[bool]int{true: 1, false: 1}, rec.submissions)
}
