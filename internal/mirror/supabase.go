package mirror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/leads"
)

const defaultSupabaseTable = "Leads"

// SupabaseConfig controls the Supabase PostgREST mirror.
type SupabaseConfig struct {
	BaseURL   string
	AnonKey   string
	Table     string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// SupabaseMirror inserts a copy of each lead into a Supabase table over PostgREST.
type SupabaseMirror struct {
	restURL   string
	table     string
	anonKey   string
	timeout   time.Duration
	transport http.RoundTripper
	tracer    trace.Tracer
}

// supabaseRow mirrors the four submitted fields. The primary id is never sent.
type supabaseRow struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	BusinessName  *string `json:"business_name"`
	ContactNumber *string `json:"contact_number"`
}

// APIError is a failed insert. StatusCode is zero when no response arrived.
type APIError struct {
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("mirror: supabase insert: %v", e.Err)
	}
	return fmt.Sprintf("mirror: supabase status %d: %v", e.StatusCode, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewSupabaseMirror validates the configuration and builds the mirror.
func NewSupabaseMirror(cfg SupabaseConfig) (*SupabaseMirror, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("mirror: supabase url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("mirror: invalid supabase url: %w", err)
	}
	if strings.TrimSpace(cfg.AnonKey) == "" {
		return nil, errors.New("mirror: supabase key is required")
	}
	table := strings.TrimSpace(cfg.Table)
	if table == "" {
		table = defaultSupabaseTable
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &SupabaseMirror{
		restURL:   base + "/rest/v1",
		table:     table,
		anonKey:   cfg.AnonKey,
		timeout:   timeout,
		transport: transport,
		tracer:    otel.Tracer("aivora.internal.mirror"),
	}, nil
}

func (m *SupabaseMirror) Name() string { return "supabase" }

// Write inserts one row with return=minimal. Failures are returned as *APIError.
func (m *SupabaseMirror) Write(ctx context.Context, lead *leads.Lead) error {
	if lead == nil {
		return errors.New("mirror: lead required")
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ctx, span := m.tracer.Start(ctx, "mirror.supabase.insert", trace.WithAttributes(
		attribute.String("db.sql.table", m.table),
	))
	defer span.End()

	bound := &boundTransport{ctx: ctx, base: m.transport}
	client := postgrest.NewClient(m.restURL, "", nil).
		SetApiKey(m.anonKey).
		SetAuthToken(m.anonKey)
	client.Transport.Parent = bound

	row := supabaseRow{
		Name:          lead.Name,
		Email:         lead.Email,
		BusinessName:  lead.BusinessName,
		ContactNumber: lead.ContactNumber,
	}
	_, _, err := client.From(m.table).Insert([]supabaseRow{row}, false, "", "minimal", "").Execute()
	if bound.status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", bound.status))
	}
	if err != nil {
		apiErr := &APIError{StatusCode: bound.status, Err: err}
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, "insert failed")
		return apiErr
	}
	return nil
}

// boundTransport attaches the write's context to the request and records the
// response status. postgrest-go builds its requests without a context.
type boundTransport struct {
	ctx    context.Context
	base   http.RoundTripper
	status int
}

func (t *boundTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req.WithContext(t.ctx))
	if err != nil {
		return nil, err
	}
	t.status = resp.StatusCode
	return resp, nil
}
