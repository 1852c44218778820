package cors

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/crossguard/cors/internal/headers"
)

// A Config configures a [Middleware]. The zero value is valid and yields
// a permissive middleware: all origins allowed, standard methods,
// anonymous access only.
//
// # Origin
//
// Origin is the policy that gates cross-origin access; see [Policy] for
// the available forms. If unset, all origins are allowed.
//
// # Methods
//
// Methods is the ordered list of HTTP methods advertised in the
// Access-Control-Allow-Methods header. If nil, it defaults to
//
//	GET,HEAD,PUT,PATCH,POST,DELETE
//
// # AllowedHeaders
//
// AllowedHeaders is the list of request-header names advertised in the
// Access-Control-Allow-Headers header. If unset, the middleware instead
// echoes the value of the request's Access-Control-Request-Headers header
// (if any) verbatim, thereby reflecting the browser's stated intent
// without validating it.
//
// # ExposedHeaders
//
// ExposedHeaders is the list of response-header names advertised in the
// Access-Control-Expose-Headers header. If unset, that header is omitted.
//
// # Credentialed
//
// Credentialed, when set, marks responses as allowing [credentialed access]
// (e.g. with cookies) via the Access-Control-Allow-Credentials header.
//
// Note that this package does not reject the combination of Credentialed
// with a wildcard origin policy, even though browsers refuse to honor it;
// see the package documentation.
//
// # MaxAgeInSeconds
//
// MaxAgeInSeconds instructs browsers to cache preflight responses for at
// most that number of seconds, via the Access-Control-Max-Age header.
// The zero value omits the header, leaving browsers to their default.
// To disable caching of preflight responses altogether, specify -1.
//
// # PreflightContinue
//
// PreflightContinue, when set, prevents the middleware from terminating
// preflight requests itself: CORS headers are set, but the request is then
// handed to the wrapped handler, which becomes responsible for finishing
// the response. Most users should leave this unset.
//
// # PreflightSuccessStatus
//
// PreflightSuccessStatus is the status code of responses to preflight
// requests that the middleware terminates. If unset, it defaults to
// 204 (No Content). Some legacy user agents choke on 204;
// specify 200 to cater for them.
//
// # Logger
//
// Logger, when non-nil, receives one structured event per allow or deny
// decision made for a request that declared an origin, and one event per
// dynamic-predicate failure. A nil Logger disables diagnostics entirely.
//
// [credentialed access]: https://fetch.spec.whatwg.org/#concept-request-credentials-mode
type Config struct {
	// Precludes comparability and unkeyed struct literals.
	_ [0]func()

	Origin                 Policy
	Methods                []string
	AllowedHeaders         []string
	ExposedHeaders         []string
	Credentialed           bool
	MaxAgeInSeconds        int
	PreflightContinue      bool
	PreflightSuccessStatus int
	Logger                 *zerolog.Logger
}

// defaultMethods is the ordered default for Config.Methods.
var defaultMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
}

// internalConfig is the compiled, immutable form of a Config.
// All header values that do not depend on the request are pre-joined here,
// once, so that request handling only ever reads from it.
type internalConfig struct {
	origin            Policy
	wildcard          bool   // origin policy is exactly the wildcard policy
	acam              string // pre-joined allowed methods
	acah              string // pre-joined allowed headers; "" => echo ACRH
	aceh              string // pre-joined exposed headers; "" => omit
	acma              string // decimal max age; "" => omit
	credentialed      bool
	preflightContinue bool
	preflightStatus   int
	logger            *zerolog.Logger
}

func newInternalConfig(cfg *Config) *internalConfig {
	icfg := internalConfig{
		origin:            cfg.Origin,
		wildcard:          cfg.Origin.kind == policyWildcard,
		credentialed:      cfg.Credentialed,
		preflightContinue: cfg.PreflightContinue,
		preflightStatus:   cfg.PreflightSuccessStatus,
		logger:            cfg.Logger,
	}
	methods := cfg.Methods
	if methods == nil {
		methods = defaultMethods
	}
	icfg.acam = headers.Join(methods)
	if len(cfg.AllowedHeaders) > 0 {
		icfg.acah = headers.Join(cfg.AllowedHeaders)
	}
	if len(cfg.ExposedHeaders) > 0 {
		icfg.aceh = headers.Join(cfg.ExposedHeaders)
	}
	switch {
	case cfg.MaxAgeInSeconds > 0:
		icfg.acma = strconv.Itoa(cfg.MaxAgeInSeconds)
	case cfg.MaxAgeInSeconds < 0:
		// sentinel value for disabling preflight caching
		icfg.acma = "0"
	}
	if icfg.preflightStatus == 0 {
		icfg.preflightStatus = http.StatusNoContent
	}
	icfg.warnOnInvalidHeaderNames(cfg)
	return &icfg
}

// warnOnInvalidHeaderNames surfaces configured header names that cannot
// appear on the wire. Misconfiguration is never rejected, only reported;
// the resulting middleware behaves exactly as configured.
func (icfg *internalConfig) warnOnInvalidHeaderNames(cfg *Config) {
	if icfg.logger == nil {
		return
	}
	for _, name := range cfg.AllowedHeaders {
		if !headers.IsValid(name) {
			icfg.logger.Warn().Str("header", name).Msg("invalid allowed-header name in CORS configuration")
		}
	}
	for _, name := range cfg.ExposedHeaders {
		if !headers.IsValid(name) {
			icfg.logger.Warn().Str("header", name).Msg("invalid exposed-header name in CORS configuration")
		}
	}
}
