package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidPincode(t *testing.T) {
	assert.True(t, ValidPincode("411001"))
	assert.False(t, ValidPincode("011001"), "leading zero")
	assert.False(t, ValidPincode("41100"), "five digits")
	assert.False(t, ValidPincode("4110011"), "seven digits")
	assert.False(t, ValidPincode("41100a"))
}

func TestAddress_Validate(t *testing.T) {
	addr := &Address{AddressType: "Office", Street: "", City: "Pune", Pincode: "000000"}

	names := fieldNames(t, addr.Validate())
	assert.ElementsMatch(t, []string{"addressType", "street", "pincode"}, names)

	addr.AddressType = AddressTypeWork
	addr.Street = "FC Road"
	addr.Pincode = "411004"
	assert.NoError(t, addr.Validate())
}

func TestNormalizeEmail(t *testing.T) {
	blank := "   "
	assert.Nil(t, NormalizeEmail(nil))
	assert.Nil(t, NormalizeEmail(&blank))

	mixed := " Asha@Example.COM "
	got := NormalizeEmail(&mixed)
	if assert.NotNil(t, got) {
		assert.Equal(t, "asha@example.com", *got)
	}
}

func TestResetToken_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	token := NewResetToken(uuid.New(), "hash")
	token.CreatedAt = now
	token.ExpiresAt = now.Add(ResetTokenTTL)

	assert.False(t, token.IsExpired(now.Add(3599*time.Second)))
	assert.True(t, token.IsExpired(now.Add(3600*time.Second)))
}

func TestResetToken_Exhausted(t *testing.T) {
	token := NewResetToken(uuid.New(), "hash")
	assert.Zero(t, token.Attempts)
	assert.False(t, token.Exhausted())

	token.Attempts = MaxResetAttempts - 1
	assert.False(t, token.Exhausted())

	token.Attempts = MaxResetAttempts
	assert.True(t, token.Exhausted())
}

func TestMenuItem_Validate(t *testing.T) {
	item := &MenuItem{
		Name:     "Masala Dabeli",
		Price:    45,
		Category: "Dabeli",
		Modifiers: []ModifierGroup{{
			GroupName:     "Spice",
			SelectionType: "some",
			Options:       []ModifierOption{{Name: ""}},
		}},
	}

	names := fieldNames(t, item.Validate())
	assert.ElementsMatch(t, []string{"modifiers[0].selectionType", "modifiers[0].options[0].name"}, names)

	item.Modifiers[0].SelectionType = SelectionSingle
	item.Modifiers[0].Options[0].Name = "Extra hot"
	assert.NoError(t, item.Validate())
}
