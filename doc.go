/*
Package cors provides [net/http] middleware for
[Cross-Origin Resource Sharing (CORS)].

A [Middleware] makes one access-control decision per request:
it matches the request's origin (if any) against the configured [Policy],
and either leaves the response untouched (denial) or annotates it with the
applicable CORS response headers (allowance).
Preflight ([OPTIONS]) requests from allowed origins are terminated by the
middleware itself with an empty body, unless configured otherwise.

Origin policies range from a simple wildcard or exact origin to patterns,
lists, and custom per-request predicates; see [Policy].
Denied requests receive no CORS headers at all and are otherwise passed
through unchanged: the browser, not the server, then blocks the
cross-origin read.

Some care is required for CORS middleware to work as intended:

  - Because [CORS-preflight requests] use [OPTIONS] as their method,
    you should not prevent OPTIONS requests from reaching your CORS
    middleware; otherwise, preflight requests will not get properly
    handled and browser-based clients will likely experience CORS-related
    errors.
  - Multiple CORS middleware should not be stacked.

One configuration hazard deserves mention: this package deliberately does
not reject the combination of a wildcard origin policy with credentialed
access, even though the CORS protocol forbids it and browsers refuse to
honor the resulting

	Access-Control-Allow-Origin: *
	Access-Control-Allow-Credentials: true

response-header pair. If you enable [Config.Credentialed], configure a
policy that echoes concrete origins (anything other than [AnyOrigin] and
the zero [Policy]).

[CORS-preflight requests]: https://developer.mozilla.org/en-US/docs/Glossary/Preflight_request
[Cross-Origin Resource Sharing (CORS)]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
[OPTIONS]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Methods/OPTIONS
*/
package cors
