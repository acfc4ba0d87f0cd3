package authz_test

import (
	"testing"

	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleCan(t *testing.T) {
	tests := []struct {
		name       string
		role       authz.Role
		capability authz.Capability
		want       bool
	}{
		{"employee can create own reports", authz.RoleEmployee, authz.CapCreateOwnReports, true},
		{"employee cannot view all reports", authz.RoleEmployee, authz.CapViewAllReports, false},
		{"employee cannot manage sites", authz.RoleEmployee, authz.CapManageSites, false},
		{"manager can view all reports", authz.RoleManager, authz.CapViewAllReports, true},
		{"manager can manage sites", authz.RoleManager, authz.CapManageSites, true},
		{"manager can export data", authz.RoleManager, authz.CapExportData, true},
		{"manager cannot manage employees", authz.RoleManager, authz.CapManageEmployees, false},
		{"admin can manage employees", authz.RoleAdmin, authz.CapManageEmployees, true},
		{"admin can manage settings", authz.RoleAdmin, authz.CapManageSettings, true},
		{"admin cannot view billing", authz.RoleAdmin, authz.CapViewBilling, false},
		{"admin cannot delete company", authz.RoleAdmin, authz.CapDeleteCompany, false},
		{"owner can view billing", authz.RoleOwner, authz.CapViewBilling, true},
		{"owner can delete company", authz.RoleOwner, authz.CapDeleteCompany, true},
		{"unknown role denies", authz.Role("superuser"), authz.CapCreateOwnReports, false},
		{"unknown capability denies", authz.RoleOwner, authz.Capability("launch_missiles"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Can(tt.capability))
		})
	}
}

// Every capability a role holds must also be held by every higher role.
func TestCapabilitiesAreNested(t *testing.T) {
	ordered := []authz.Role{authz.RoleEmployee, authz.RoleManager, authz.RoleAdmin, authz.RoleOwner}
	capabilities := []authz.Capability{
		authz.CapCreateOwnReports,
		authz.CapViewAllReports,
		authz.CapManageSites,
		authz.CapExportData,
		authz.CapManageEmployees,
		authz.CapManageSettings,
		authz.CapViewBilling,
		authz.CapDeleteCompany,
	}

	for i := 0; i < len(ordered)-1; i++ {
		lower, higher := ordered[i], ordered[i+1]
		for _, c := range capabilities {
			if lower.Can(c) {
				assert.True(t, higher.Can(c),
					"%s holds %s but %s does not", lower, c, higher)
			}
		}
	}
}

func TestParseRole(t *testing.T) {
	role, err := authz.ParseRole("manager")
	assert.NoError(t, err)
	assert.Equal(t, authz.RoleManager, role)

	_, err = authz.ParseRole("supervisor")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = authz.ParseRole("")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestInvitable(t *testing.T) {
	assert.True(t, authz.RoleAdmin.Invitable())
	assert.True(t, authz.RoleManager.Invitable())
	assert.True(t, authz.RoleEmployee.Invitable())
	assert.False(t, authz.RoleOwner.Invitable())
	assert.False(t, authz.Role("bogus").Invitable())
}
