package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frostward/internal/config"
)

func testGuild() *config.Guild {
	return &config.Guild{
		Roles: config.Roles{
			AgeUnder19: "role-under19",
			Age19Plus:  "role-19plus",
			Pending:    "role-pending",
		},
		AllianceRoles: map[string]string{
			"BTK": "role-btk",
			"SUN": "role-sun",
		},
		Languages: []config.LanguageRole{
			{Name: "english", Code: "en", RoleID: "role-en"},
			{Name: "portuguese (brazil)", Code: "pt", RoleID: "role-pt-br"},
			{Name: "portuguese (portugal)", Code: "pt", RoleID: "role-pt-pt"},
			{Name: "german", Code: "de", RoleID: "role-de"},
		},
	}
}

func TestResolveAllianceMatching(t *testing.T) {
	r := NewResolver(testGuild())

	tests := []struct {
		name     string
		input    string
		wantRole string
		matched  bool
	}{
		{"exact", "BTK", "role-btk", true},
		{"lower case", "btk", "role-btk", true},
		{"mixed case with spaces", " Sun ", "role-sun", true},
		{"unknown alliance", "XYZ", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := r.Resolve(Application{Alliance: tt.input, AgeGroup: "19+"}, nil)
			assert.Equal(t, tt.matched, plan.AllianceMatched)
			if tt.matched {
				assert.Contains(t, plan.Add, tt.wantRole)
			} else {
				assert.NotContains(t, plan.Add, "role-btk")
				assert.NotContains(t, plan.Add, "role-sun")
			}
		})
	}
}

func TestResolveLanguageMatching(t *testing.T) {
	r := NewResolver(testGuild())

	tests := []struct {
		name     string
		input    string
		wantRole string
		matched  bool
	}{
		{"exact", "english", "role-en", true},
		{"case insensitive", "English", "role-en", true},
		{"prefix picks first configured variant", "portuguese", "role-pt-br", true},
		// The first-word prefix rule means even a fully qualified regional
		// name resolves to the first variant in table order.
		{"qualified variant still hits first entry", "portuguese (portugal)", "role-pt-br", true},
		{"unknown language", "klingon", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := r.Resolve(Application{Language: tt.input, AgeGroup: "19+"}, nil)
			assert.Equal(t, tt.matched, plan.LanguageMatched)
			if tt.matched {
				assert.Contains(t, plan.Add, tt.wantRole)
			}
		})
	}
}

func TestResolveAgeGroupIsTotal(t *testing.T) {
	r := NewResolver(testGuild())

	tests := []struct {
		input string
		want  string
	}{
		{"under 19", "role-under19"},
		{"UNDER 19", "role-under19"},
		{"19+", "role-19plus"},
		{"adult", "role-19plus"},
		{"", "role-19plus"},
	}

	for _, tt := range tests {
		plan := r.Resolve(Application{AgeGroup: tt.input}, nil)
		assert.Contains(t, plan.Add, tt.want, "input %q", tt.input)
	}
}

func TestResolvePendingRoleRemoval(t *testing.T) {
	r := NewResolver(testGuild())

	held := r.Resolve(Application{AgeGroup: "19+"}, []string{"role-pending", "role-other"})
	require.Equal(t, []string{"role-pending"}, held.Remove)

	notHeld := r.Resolve(Application{AgeGroup: "19+"}, []string{"role-other"})
	require.Empty(t, notHeld.Remove)
}

func TestResolveAddRemoveDisjoint(t *testing.T) {
	r := NewResolver(testGuild())

	plan := r.Resolve(Application{
		Alliance: "BTK",
		Language: "german",
		AgeGroup: "under 19",
	}, []string{"role-pending"})

	for _, added := range plan.Add {
		assert.NotContains(t, plan.Remove, added)
	}
	assert.ElementsMatch(t, []string{"role-btk", "role-de", "role-under19"}, plan.Add)
}
