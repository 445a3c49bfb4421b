package alps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentity(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want Apid
	}{
		{"unset", map[string]string{}, 0},
		{"empty", map[string]string{"ALPS_APP_ID": ""}, 0},
		{"plain", map[string]string{"ALPS_APP_ID": "123456"}, 123456},
		{"leading space", map[string]string{"ALPS_APP_ID": "  \t42"}, 42},
		{"trailing junk", map[string]string{"ALPS_APP_ID": "77abc"}, 77},
		{"not numeric", map[string]string{"ALPS_APP_ID": "abc"}, 0},
		{"negative", map[string]string{"ALPS_APP_ID": "-5"}, 0},
		{"max uint64", map[string]string{"ALPS_APP_ID": "18446744073709551615"}, Apid(^uint64(0))},
		{"overflow", map[string]string{"ALPS_APP_ID": "18446744073709551616"}, 0},
		{"zero", map[string]string{"ALPS_APP_ID": "0"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveIdentity(envMap(tc.env), ""))
		})
	}
}

func TestResolveIdentityCustomVariable(t *testing.T) {
	lookup := envMap(map[string]string{"ALPS_APP_ID": "1", "MY_APID": "99"})
	assert.Equal(t, Apid(99), ResolveIdentity(lookup, "MY_APID"))
	assert.Equal(t, Apid(1), ResolveIdentity(lookup, DefaultApidVar))
}

func TestResolveIdentityProcessEnv(t *testing.T) {
	t.Setenv("ALPS_APP_ID", "31337")
	assert.Equal(t, Apid(31337), ResolveIdentity(nil, ""))
}

func TestApidString(t *testing.T) {
	assert.Equal(t, "123456", Apid(123456).String())
}
