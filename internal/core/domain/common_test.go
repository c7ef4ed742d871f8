package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

func TestAccountRef_ResolveID(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		ref := domain.AccountRefByID("42")
		id, ok := ref.ResolveID()
		require.True(t, ok)
		assert.Equal(t, domain.EntityID("42"), id)
		assert.Nil(t, ref.Account())
	})

	t.Run("by persisted value", func(t *testing.T) {
		account := domain.NewAccount("Wallet", "", "In-Hand", domain.Checking, domain.RWF)
		account.ID = "7"
		ref := domain.AccountRefByValue(account)

		id, ok := ref.ResolveID()
		require.True(t, ok)
		assert.Equal(t, domain.EntityID("7"), id)
		assert.Same(t, account, ref.Account())
	})

	t.Run("unpersisted embedded account is unresolvable", func(t *testing.T) {
		account := domain.NewAccount("Wallet", "", "In-Hand", domain.Checking, domain.RWF)
		ref := domain.AccountRefByValue(account)

		_, ok := ref.ResolveID()
		assert.False(t, ok)
	})

	t.Run("zero reference is unresolvable", func(t *testing.T) {
		var ref domain.AccountRef
		_, ok := ref.ResolveID()
		assert.False(t, ok)
	})
}
