package cors

import (
	"net/http"
	"strings"

	"github.com/crossguard/cors/internal/headers"
)

// A Middleware is a CORS middleware.
// Call [New] to obtain one, then apply it to a [http.Handler] via its
// [*Middleware.Wrap] method, or drive it directly via its
// [*Middleware.Handle] method.
//
// A Middleware holds no per-request state: its configuration is compiled
// once by [New] and only ever read afterwards. Middleware are therefore
// safe for concurrent use by multiple goroutines.
type Middleware struct {
	icfg *internalConfig
}

// New creates a CORS middleware that behaves in accordance with cfg.
//
// New performs no validation of cfg; in particular, it accepts the
// browser-incompatible combination of a wildcard origin policy with
// credentialed access (see the package documentation).
// If a logger is configured, New reports configured header names that are
// not valid on the wire, but the resulting middleware still behaves
// exactly as configured.
//
// Mutating the fields of cfg after New has returned does not alter the
// middleware's behavior.
func New(cfg Config) *Middleware {
	return &Middleware{icfg: newInternalConfig(&cfg)}
}

// Wrap applies the CORS middleware to the specified handler.
// The resulting handler delegates to h except for preflight requests
// that m terminates itself; see [*Middleware.Handle].
func (m *Middleware) Wrap(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Handle(w, r) {
			return
		}
		h.ServeHTTP(w, r)
	})
}

// Handle makes the CORS decision for r and annotates w accordingly.
// It reports whether it fully handled the response, in which case the
// caller must not process r any further.
//
// If r's origin is denied by the configured policy, Handle leaves w
// untouched and returns false; the caller remains free to respond however
// it sees fit. A denial is a normal outcome, not an error, and a failing
// dynamic predicate only ever results in a denial.
//
// If r's origin is allowed, Handle sets the applicable CORS response
// headers. For a preflight (OPTIONS) request, it then terminates the
// response with the configured success status and an empty body and
// returns true, unless preflight pass-through is configured, in which
// case it returns false like it does for non-preflight requests.
//
// Handle only ever mutates w after the matching decision is conclusively
// an allowance; equivalent requests decided under the same configuration
// yield identical header sets.
func (m *Middleware) Handle(w http.ResponseWriter, r *http.Request) bool {
	icfg := m.icfg

	// Fetch-compliant browsers send at most one Origin header;
	// see https://fetch.spec.whatwg.org/#http-network-or-cache-fetch
	// (step 12).
	origin, originSgl, _ := headers.First(r.Header, headers.Origin)

	allowed, err := icfg.origin.match(r, origin)
	if err != nil {
		icfg.logPredicateFailure(origin, r.Method, err)
		return false
	}
	if !allowed {
		if origin != "" {
			icfg.logDecision(origin, r.Method, false)
		}
		return false
	}

	resHdrs := w.Header()
	if origin != "" {
		if icfg.wildcard {
			resHdrs.Set(headers.ACAO, headers.ValueWildcard)
		} else {
			// The allow-origin value now depends on the request, so caches
			// must be told to key on it;
			// see https://fetch.spec.whatwg.org/#cors-protocol-and-http-caches.
			//
			// Note that we must add rather than set a Vary header here,
			// because outer middleware may have already added/set a Vary
			// header, which we wouldn't want to clobber.
			resHdrs[headers.ACAO] = originSgl
			resHdrs.Add(headers.Vary, headers.Origin)
		}
	}
	resHdrs.Set(headers.ACAM, icfg.acam)
	if icfg.acah != "" {
		resHdrs.Set(headers.ACAH, icfg.acah)
	} else if acrh, found := r.Header[headers.ACRH]; found && len(acrh) > 0 {
		// We can simply reflect all the ACRH header lines as ACAH header
		// lines because the Fetch standard requires browsers to handle
		// multiple ACAH header lines;
		// see https://fetch.spec.whatwg.org/#cors-preflight-fetch-0.
		resHdrs[headers.ACAH] = acrh
		resHdrs.Add(headers.Vary, headers.ACRH)
	}
	if icfg.aceh != "" {
		resHdrs.Set(headers.ACEH, icfg.aceh)
	}
	if icfg.credentialed {
		resHdrs.Set(headers.ACAC, headers.ValueTrue)
	}
	if icfg.acma != "" {
		resHdrs.Set(headers.ACMA, icfg.acma)
	}
	if origin != "" {
		icfg.logDecision(origin, r.Method, true)
	}

	if !strings.EqualFold(r.Method, http.MethodOptions) {
		// an "actual" (i.e. non-preflight) request
		return false
	}
	if icfg.preflightContinue {
		// The wrapped handler is responsible for finishing the response.
		return false
	}
	w.WriteHeader(icfg.preflightStatus)
	return true
}

func (icfg *internalConfig) logDecision(origin, method string, allowed bool) {
	if icfg.logger == nil {
		return
	}
	if allowed {
		icfg.logger.Info().Str("origin", origin).Str("method", method).Msg("cross-origin request allowed")
		return
	}
	icfg.logger.Warn().Str("origin", origin).Str("method", method).Msg("cross-origin request blocked")
}

func (icfg *internalConfig) logPredicateFailure(origin, method string, err error) {
	if icfg.logger == nil {
		return
	}
	icfg.logger.Error().Err(err).Str("origin", origin).Str("method", method).Msg("origin predicate failed; request blocked")
}
