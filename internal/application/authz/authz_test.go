package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarvcafe/cafepos-api/internal/application/authz"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
)

func session(role, tier string) *authz.Session {
	return &authz.Session{UserID: "u1", Role: role, Tier: tier}
}

func TestCheckPlan_Membership(t *testing.T) {
	s := session(entity.RoleUser, entity.TierBasic)

	d := authz.CheckPlan(s, entity.TierBasic, entity.TierProfessional)
	assert.True(t, d.Authorized)
	assert.Same(t, s, d.Session)

	d = authz.CheckPlan(s, entity.TierProfessional)
	assert.False(t, d.Authorized)
	assert.Equal(t, authz.ReasonPlanInsufficient, d.Reason)
}

func TestCheckPlan_ProfessionalDoesNotImplyBasic(t *testing.T) {
	// Tiers are compared by set membership, not order.
	s := session(entity.RoleUser, entity.TierProfessional)

	d := authz.CheckPlan(s, entity.TierBasic)
	assert.False(t, d.Authorized)
	assert.Equal(t, authz.ReasonPlanInsufficient, d.Reason)
}

func TestCheckPlan_NilSession(t *testing.T) {
	d := authz.CheckPlan(nil, entity.TierBasic)
	assert.False(t, d.Authorized)
	assert.Equal(t, authz.ReasonNoSession, d.Reason)
}

func TestCheckAdmin(t *testing.T) {
	d := authz.CheckAdmin(session(entity.RoleAdmin, entity.TierBasic))
	assert.True(t, d.Authorized)

	d = authz.CheckAdmin(session(entity.RoleUser, entity.TierProfessional))
	assert.False(t, d.Authorized)
	assert.Equal(t, authz.ReasonAdminRequired, d.Reason)

	d = authz.CheckAdmin(nil)
	assert.False(t, d.Authorized)
	assert.Equal(t, authz.ReasonNoSession, d.Reason)
}

func TestCheckUser_ExcludesAdmin(t *testing.T) {
	d := authz.CheckUser(session(entity.RoleUser, entity.TierBasic))
	assert.True(t, d.Authorized)

	d = authz.CheckUser(session(entity.RoleAdmin, entity.TierBasic))
	assert.False(t, d.Authorized)
	assert.Equal(t, authz.ReasonAdminExcluded, d.Reason)

	d = authz.CheckUser(nil)
	assert.False(t, d.Authorized)
	assert.Equal(t, authz.ReasonNoSession, d.Reason)
}
