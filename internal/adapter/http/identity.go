package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwt"

	"saathi-bazaar/internal/config/configs"
)

const (
	headerVendorID   = "X-Vendor-ID"
	headerVendorName = "X-Vendor-Name"
	headerVendorRole = "X-Vendor-Role"

	roleOperator = "operator"
)

var errUnauthenticated = errors.New("unauthenticated")

// Vendor is the caller identity attached to authenticated requests.
// Operator callers may open new campaigns.
type Vendor struct {
	ID       string
	Name     string
	Operator bool
}

type vendorKey struct{}

// VendorFrom returns the vendor stored by Identity.Middleware.
func VendorFrom(ctx context.Context) (Vendor, bool) {
	v, ok := ctx.Value(vendorKey{}).(Vendor)
	return v, ok
}

// Identity resolves the calling vendor. With a secret it verifies HS256
// bearer tokens and takes the vendor id from the subject claim and the
// display name from the "name" claim; a "role" claim of "operator" marks an
// operator. Without a secret it trusts the X-Vendor-ID, X-Vendor-Name and
// X-Vendor-Role headers.
type Identity struct {
	secret []byte
	issuer string
}

// NewIdentity builds the resolver from the auth config. An empty secret
// selects the trusted header mode.
func NewIdentity(cfg configs.Auth) *Identity {
	return &Identity{secret: []byte(cfg.Secret), issuer: cfg.Issuer}
}

// Trusted reports whether identity comes from unverified request headers.
func (i *Identity) Trusted() bool {
	return len(i.secret) == 0
}

// Middleware rejects requests without a resolvable vendor with 401.
func (i *Identity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, err := i.authenticate(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), vendorKey{}, v)))
	})
}

func (i *Identity) authenticate(r *http.Request) (Vendor, error) {
	if i.Trusted() {
		id := strings.TrimSpace(r.Header.Get(headerVendorID))
		if id == "" {
			return Vendor{}, errUnauthenticated
		}
		return Vendor{
			ID:       id,
			Name:     strings.TrimSpace(r.Header.Get(headerVendorName)),
			Operator: strings.EqualFold(strings.TrimSpace(r.Header.Get(headerVendorRole)), roleOperator),
		}, nil
	}

	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return Vendor{}, errUnauthenticated
	}
	tok, err := jwt.ParseString(strings.TrimSpace(raw), jwt.WithVerify(jwa.HS256, i.secret))
	if err != nil {
		return Vendor{}, errUnauthenticated
	}
	var opts []jwt.ValidateOption
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}
	if err = jwt.Validate(tok, opts...); err != nil {
		return Vendor{}, errUnauthenticated
	}
	if tok.Subject() == "" {
		return Vendor{}, errUnauthenticated
	}

	v := Vendor{ID: tok.Subject()}
	if name, ok := tok.Get("name"); ok {
		v.Name, _ = name.(string)
	}
	if role, ok := tok.Get("role"); ok {
		name, _ := role.(string)
		v.Operator = name == roleOperator
	}
	return v, nil
}

// RequireOperator lets only operator callers through and answers 403
// otherwise. It must run after Middleware.
func RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v, ok := VendorFrom(r.Context()); !ok || !v.Operator {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden", Message: "operator role required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
