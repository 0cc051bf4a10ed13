package session_test

import (
	"context"
	"testing"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		restore  bool
		login    *domain.Identity
		role     domain.Role
		decision session.Decision
		location string
	}{
		{"admin before restore", false, nil, domain.RoleAdmin, session.Pending, ""},
		{"employee before restore", false, nil, domain.RoleEmployee, session.Pending, ""},
		{"admin without session", true, nil, domain.RoleAdmin, session.Redirect, session.AdminLoginRoute},
		{"employee without session", true, nil, domain.RoleEmployee, session.Redirect, session.EmployeeLoginRoute},
		{"admin with session", true, &adminIdentity, domain.RoleAdmin, session.Allow, ""},
		{"employee with session", true, &employeeIdentity, domain.RoleEmployee, session.Allow, ""},
		{"employee session does not open admin views", true, &employeeIdentity, domain.RoleAdmin, session.Redirect, session.AdminLoginRoute},
		{"admin session does not open employee views", true, &adminIdentity, domain.RoleEmployee, session.Redirect, session.EmployeeLoginRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := session.NewHolder("client-1", session.NewMemoryStore())
			if tt.restore {
				h.Restore(context.Background())
			}
			if tt.login != nil {
				require.NoError(t, h.Login(context.Background(), *tt.login))
			}

			v := session.Authorize(h, tt.role)
			assert.Equal(t, tt.decision, v.Decision)
			assert.Equal(t, tt.location, v.Location)
			if tt.decision == session.Redirect {
				assert.True(t, v.Replace)
			}
			if tt.decision == session.Allow {
				assert.Equal(t, *tt.login, v.Identity)
			}
		})
	}
}

func TestAuthorizeNilHolderRedirects(t *testing.T) {
	v := session.Authorize(nil, domain.RoleAdmin)
	assert.Equal(t, session.Redirect, v.Decision)
	assert.Equal(t, "/login", v.Location)
}

func TestLoginRoute(t *testing.T) {
	assert.Equal(t, "/login", session.LoginRoute(domain.RoleAdmin))
	assert.Equal(t, "/employee/login", session.LoginRoute(domain.RoleEmployee))
}
