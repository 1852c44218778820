package cors

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/crossguard/cors/internal/headers"
)

// An OriginPredicate decides, at request time, whether the specified
// [Web origin] is allowed. It receives the request itself so that the
// decision can take other request metadata into account, and it may block
// (e.g. on a network lookup), in which case it should honor cancellation
// via the request's context.
//
// A non-nil error counts as a denial; it never aborts request processing.
//
// [Web origin]: https://developer.mozilla.org/en-US/docs/Glossary/Origin
type OriginPredicate func(r *http.Request, origin string) (bool, error)

type policyKind uint8

const (
	policyWildcard policyKind = iota // also the zero value
	policyExact
	policyPattern
	policyList
	policyFunc
)

// A Policy describes which origins a [Middleware] permits.
// A Policy takes exactly one of the following forms:
//
//   - the wildcard policy ([AnyOrigin]), which allows all origins;
//   - an exact origin ([Origin]), compared byte for byte;
//   - a pattern ([OriginPattern]), matched against the serialized origin;
//   - a list of policies ([OriginList]), allowing what any element allows;
//   - a custom predicate ([OriginFunc]), evaluated per request.
//
// The zero value is the wildcard policy.
//
// Policies are immutable after construction and safe for concurrent use
// by multiple goroutines without synchronization.
type Policy struct {
	kind    policyKind
	exact   string
	pattern *regexp.Regexp
	list    []Policy
	fn      OriginPredicate
}

// AnyOrigin returns the wildcard policy, which allows all origins.
// Responses then carry a literal
//
//	Access-Control-Allow-Origin: *
//
// rather than an echo of the request's origin.
func AnyOrigin() Policy {
	return Policy{kind: policyWildcard}
}

// Origin returns a policy that allows exactly the specified origin.
// The comparison is byte for byte: no normalization of scheme, port,
// or trailing slash takes place. As a special case, the literal "*"
// allows all origins.
func Origin(origin string) Policy {
	return Policy{kind: policyExact, exact: origin}
}

// OriginPattern returns a policy that allows any origin matched by re.
// The pattern is applied to the origin exactly as declared by the request.
// Anchor your patterns; for instance, prefer
//
//	regexp.MustCompile(`^https://(?:[^.]+\.)*example\.com$`)
//
// over an unanchored pattern like `example\.com`, which a registrable
// domain such as example.com.attacker.test would also match.
func OriginPattern(re *regexp.Regexp) Policy {
	return Policy{kind: policyPattern, pattern: re}
}

// OriginList returns a policy that allows any origin allowed by at least
// one of the specified policies, typically a mix of [Origin] and
// [OriginPattern] elements. Evaluation stops at the first match.
// An empty list allows no origin.
func OriginList(policies ...Policy) Policy {
	return Policy{kind: policyList, list: policies}
}

// OriginFunc returns a policy that defers the decision to fn.
// Only a (true, nil) result counts as an allowance; a non-nil error is
// treated as a denial and surfaces solely through the configured logger.
func OriginFunc(fn OriginPredicate) Policy {
	return Policy{kind: policyFunc, fn: fn}
}

// match reports whether p allows the origin declared by r.
// origin is the value of r's Origin header; the empty string means that
// r declared no origin, which only the wildcard policy allows.
// match mutates neither r nor any shared state.
func (p Policy) match(r *http.Request, origin string) (bool, error) {
	if p.kind == policyWildcard {
		return true, nil
	}
	if origin == "" {
		// An unset origin cannot be matched against anything.
		return false, nil
	}
	switch p.kind {
	case policyExact:
		return p.exact == headers.ValueWildcard || p.exact == origin, nil
	case policyPattern:
		return p.pattern != nil && p.pattern.MatchString(origin), nil
	case policyList:
		for _, elem := range p.list {
			ok, err := elem.match(r, origin)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default: // policyFunc
		return p.callFn(r, origin)
	}
}

// callFn invokes the custom predicate, converting a panic into a denial;
// a faulty predicate must not take the whole request down with it.
func (p Policy) callFn(r *http.Request, origin string) (allowed bool, err error) {
	if p.fn == nil {
		return false, nil
	}
	defer func() {
		if v := recover(); v != nil {
			allowed = false
			err = fmt.Errorf("origin predicate panicked: %v", v)
		}
	}()
	return p.fn(r, origin)
}
