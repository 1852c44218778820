package cors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	icfg := newInternalConfig(&Config{})

	assert.True(t, icfg.wildcard)
	assert.Equal(t, "GET,HEAD,PUT,PATCH,POST,DELETE", icfg.acam)
	assert.Empty(t, icfg.acah)
	assert.Empty(t, icfg.aceh)
	assert.Empty(t, icfg.acma)
	assert.False(t, icfg.credentialed)
	assert.False(t, icfg.preflightContinue)
	assert.Equal(t, http.StatusNoContent, icfg.preflightStatus)
	assert.Nil(t, icfg.logger)
}

func TestNewInternalConfigWildcardFlag(t *testing.T) {
	cases := []struct {
		desc   string
		policy Policy
		want   bool
	}{
		{desc: "zero policy", policy: Policy{}, want: true},
		{desc: "explicit wildcard", policy: AnyOrigin(), want: true},
		{desc: "exact wildcard literal is not the wildcard policy", policy: Origin("*")},
		{desc: "exact origin", policy: Origin("https://a.test")},
		{desc: "list", policy: OriginList(Origin("https://a.test"))},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			icfg := newInternalConfig(&Config{Origin: c.policy})
			assert.Equal(t, c.want, icfg.wildcard)
		})
	}
}

func TestNewInternalConfigPreJoinsValues(t *testing.T) {
	icfg := newInternalConfig(&Config{
		Methods:        []string{http.MethodGet, "PURGE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"X-Request-Id"},
	})

	assert.Equal(t, "GET,PURGE", icfg.acam)
	assert.Equal(t, "Content-Type,Authorization", icfg.acah)
	assert.Equal(t, "X-Request-Id", icfg.aceh)
}

func TestNewInternalConfigMaxAge(t *testing.T) {
	cases := []struct {
		desc  string
		delta int
		want  string
	}{
		{desc: "unset omits the header", delta: 0, want: ""},
		{desc: "positive value in decimal", delta: 600, want: "600"},
		{desc: "negative value disables caching", delta: -1, want: "0"},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			icfg := newInternalConfig(&Config{MaxAgeInSeconds: c.delta})
			assert.Equal(t, c.want, icfg.acma)
		})
	}
}

func TestConfigMutationAfterNewHasNoEffect(t *testing.T) {
	methods := []string{http.MethodGet}
	cfg := Config{Methods: methods}
	icfg := newInternalConfig(&cfg)

	cfg.Methods = []string{http.MethodDelete}
	cfg.Credentialed = true

	assert.Equal(t, "GET", icfg.acam)
	assert.False(t, icfg.credentialed)
}
