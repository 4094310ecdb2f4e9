package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/opdbook/formkit/forms"
	"github.com/opdbook/formkit/pkg/validator"
)

// Service serves form validation and identifier availability.
type Service struct {
	logger *slog.Logger
	lookup Lookup
	policy validator.EmailPolicy
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLookup sets the identifier registry backing the availability endpoint.
func WithLookup(l Lookup) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.lookup = l
		}
	}
}

// WithEmailPolicy overrides the registration TLD allow-list.
func WithEmailPolicy(p validator.EmailPolicy) ServiceOption {
	return func(s *Service) {
		if len(p.AllowedTLDs) > 0 {
			s.policy = p
		}
	}
}

func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		lookup: NewMemoryDirectory().Lookup,
		policy: validator.DefaultEmailPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router mounts the validation and availability endpoints.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/validate", func(v chi.Router) {
		v.Post("/login", validateForm(s, func() *forms.LoginForm {
			return forms.NewLoginForm()
		}))
		v.Post("/registration", validateForm(s, func() *forms.RegistrationForm {
			f := forms.NewRegistrationForm()
			f.EmailPolicy = &s.policy
			return f
		}))
		v.Post("/profile", validateForm(s, func() *forms.ProfileForm {
			return forms.NewProfileForm()
		}))
		v.Post("/family-member", validateForm(s, func() *forms.FamilyMemberForm {
			return forms.NewFamilyMemberForm()
		}))
		v.Post("/password-change", validateForm(s, func() *forms.PasswordChangeForm {
			return forms.NewPasswordChangeForm()
		}))
	})

	r.Get("/api/auth/availability", s.handleAvailability)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// validateForm decodes a snapshot of form F and answers with the aggregator's
// verdict. Validation failures are a 200: the errors map is the payload, not
// an HTTP failure.
func validateForm[F forms.Form](s *Service, newForm func() F) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := newForm()
		if err := decodeJSON(r, form); err != nil {
			s.logger.DebugContext(r.Context(), "rejected form payload",
				slog.String("path", r.URL.Path), slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, form.Validate())
	}
}

type fieldStatus struct {
	Available bool `json:"available"`
}

type availabilityResponse struct {
	Email *fieldStatus `json:"email,omitempty"`
	Phone *fieldStatus `json:"phone,omitempty"`
}

func (s *Service) handleAvailability(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	phone := r.URL.Query().Get("phone")
	if email == "" && phone == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email or phone query parameter required"})
		return
	}

	var resp availabilityResponse
	for _, probe := range []struct {
		kind  string
		value string
		slot  **fieldStatus
	}{
		{"email", email, &resp.Email},
		{"phone", phone, &resp.Phone},
	} {
		if probe.value == "" {
			continue
		}
		taken, err := s.lookup(r.Context(), probe.kind, probe.value)
		if err != nil {
			s.logger.ErrorContext(r.Context(), "availability lookup failed",
				slog.String("kind", probe.kind), slog.Any("error", err))
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "availability lookup failed"})
			return
		}
		*probe.slot = &fieldStatus{Available: !taken}
	}

	writeJSON(w, http.StatusOK, resp)
}
